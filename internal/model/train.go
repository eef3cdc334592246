package model

// Train is immutable reference data describing a service that runs a
// fixed route. Coaches and route stations hang off the train.
//
// Fields:
//
//	ID           – primary key identifier.
//	TrainName    – public name, e.g. "Padma Express".
//	TrainType    – express, local or intercity.
//	TotalCoaches – declared coach count.
type Train struct {
	ID           uint64 // trains.id
	TrainName    string // trains.train_name
	TrainType    string // trains.train_type
	TotalCoaches uint32 // trains.total_coaches
}

// Station is a named stop somewhere on the network.
type Station struct {
	ID          uint64 // stations.id
	StationName string // stations.station_name (unique)
	Location    string // stations.location
}
