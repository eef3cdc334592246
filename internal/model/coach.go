package model

// Coach belongs to exactly one train and carries a fare class tag.
// Coaches are created by administrative provisioning and are never
// mutated by the booking flow.
type Coach struct {
	ID          uint64 // coaches.id
	TrainID     uint64 // coaches.train_id
	CoachNumber string // coaches.coach_number, e.g. "KA-1"
	CoachType   string // coaches.coach_type (fare class, e.g. "Shovon")
	TotalSeats  uint32 // coaches.total_seats (declared capacity)
}

// Seat is a physical seat inside a coach, immutable once provisioned.
// A seat has no stored availability flag: whether it is free is derived
// by checking the booking ledger for a confirmed booking referencing it.
type Seat struct {
	ID         uint64 // seats.id
	CoachID    uint64 // seats.coach_id
	SeatNumber string // seats.seat_number, e.g. "A12"
	SeatClass  string // seats.seat_class
}
