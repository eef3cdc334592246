package model

import "time"

// Booking statuses. A seat may be linked to at most one confirmed
// booking at any time; cancelled bookings release their seats.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records one user's purchase of a set of seats. It aggregates
// the BookingSeat rows created in the same transaction and is the
// source of truth for "is seat S taken".
type Booking struct {
	ID          uint64    // bookings.id
	UserID      uint64    // bookings.user_id
	ScheduleID  uint64    // bookings.schedule_id
	BookingDate time.Time // bookings.booking_date
	Status      string    // bookings.status (confirmed, cancelled)
}

// BookingSeat links one booking to one seat and carries the fare
// charged for that seat. Rows are created only inside the booking
// transaction and never updated afterwards.
type BookingSeat struct {
	ID        uint64  // booking_seats.id
	BookingID uint64  // booking_seats.booking_id
	SeatID    uint64  // booking_seats.seat_id
	Fare      float64 // booking_seats.fare
}

// Payment statuses.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// Payment records money received against a booking. A booking can have
// zero, one or several payments; the sum of payment amounts is the
// authoritative amount paid, falling back to the sum of seat fares when
// no payment rows exist.
type Payment struct {
	ID          uint64    // payments.id
	BookingID   uint64    // payments.booking_id
	Amount      float64   // payments.amount
	PaymentDate time.Time // payments.payment_date
	Status      string    // payments.status (paid, unpaid)
}
