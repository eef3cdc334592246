// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketBookedEvent is published after a booking transaction commits.
// It carries what downstream consumers need for logging or notification
// without a trip back to the primary database.
type TicketBookedEvent struct {
	BookingID   uint64   `json:"booking_id"`
	UserID      uint64   `json:"user_id"`
	TrainID     uint64   `json:"train_id"`
	TrainName   string   `json:"train_name"`
	CoachType   string   `json:"coach_type"`
	SeatNumbers []string `json:"seats"`
	TotalFare   float64  `json:"total_fare"`
	JourneyDate string   `json:"journey_date"`
	BookedAt    string   `json:"booked_at"`
}
