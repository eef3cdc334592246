package model

// Route declares a train's endpoints and total distance. It is the
// fallback source for from/to stations when no per-stop rows exist.
type Route struct {
	ID                   uint64  // routes.id
	TrainID              uint64  // routes.train_id
	SourceStationID      uint64  // routes.source_station_id
	DestinationStationID uint64  // routes.destination_station_id
	DistanceKM           float64 // routes.distance_km
}

// RouteStation is one ordered waypoint of a train's route. Offsets are
// minutes relative to the train's nominal origin time. SequenceNumber
// may be null on legacy rows; ordering then falls back to row id, and
// rows without a sequence sort after rows that have one.
type RouteStation struct {
	ID                      uint64 // route_stations.id
	TrainID                 uint64 // route_stations.train_id
	StationID               uint64 // route_stations.station_id
	SequenceNumber          *uint32
	ArrivalOffsetMinutes    *int32 // nullable, minutes past origin
	DepartureOffsetMinutes  *int32 // nullable, minutes past origin
	HaltMinutes             uint32 // halt duration at this stop
}

// Schedule pins a train + route to concrete departure/arrival times.
type Schedule struct {
	ID            uint64 // schedules.id
	TrainID       uint64 // schedules.train_id
	RouteID       uint64 // schedules.route_id
	DepartureTime string // schedules.departure_time
	ArrivalTime   string // schedules.arrival_time
}
