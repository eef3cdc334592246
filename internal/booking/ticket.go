package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/repository"
)

// journeyLeadDays fixes the journey date relative to the booking date
// until per-departure scheduling is wired into the booking flow.
const journeyLeadDays = 7

// JourneyDate derives the travel date from when the booking was made.
func JourneyDate(booked time.Time) time.Time {
	return booked.AddDate(0, 0, journeyLeadDays)
}

// Ticket is the assembled view of one booking: the ledger row joined to
// its seats, train and payment state. It is what the ticket endpoints
// and the PDF renderer consume.
type Ticket struct {
	BookingID     uint64                        `json:"booking_id"`
	TrainID       uint64                        `json:"train_id"`
	TrainName     string                        `json:"train_name"`
	FromStation   string                        `json:"from_station"`
	ToStation     string                        `json:"to_station"`
	BookingDate   time.Time                     `json:"booking_date"`
	JourneyDate   time.Time                     `json:"journey_date"`
	Status        string                        `json:"status"`
	Seats         []repository.BookedSeatDetail `json:"seats"`
	TotalFare     float64                       `json:"total_fare"`
	AmountPaid    float64                       `json:"amount_paid"`
	PaymentStatus string                        `json:"payment_status"`
}

// Ticket loads and assembles one booking for the given user. A booking
// that does not exist and a booking owned by someone else both come
// back as ErrBookingNotFound.
func (s *Service) Ticket(ctx context.Context, userID, bookingID uint64) (Ticket, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return Ticket{}, ErrBookingNotFound
	}
	if err != nil {
		return Ticket{}, err
	}
	if b.UserID != userID {
		return Ticket{}, ErrBookingNotFound
	}
	return s.assembleTicket(ctx, b)
}

// MyTickets returns the user's bookings split into journeys still ahead
// and journeys already travelled, each list newest booking first.
func (s *Service) MyTickets(ctx context.Context, userID uint64) (upcoming, past []Ticket, err error) {
	list, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now().UTC()
	upcoming, past = []Ticket{}, []Ticket{}
	for _, b := range list {
		t, err := s.assembleTicket(ctx, b)
		if err != nil {
			return nil, nil, err
		}
		if t.JourneyDate.Before(now) {
			past = append(past, t)
		} else {
			upcoming = append(upcoming, t)
		}
	}
	return upcoming, past, nil
}

func (s *Service) assembleTicket(ctx context.Context, b model.Booking) (Ticket, error) {
	seats, err := s.bookings.SeatDetailsByBooking(ctx, b.ID)
	if err != nil {
		return Ticket{}, err
	}
	payments, err := s.payments.ListByBooking(ctx, b.ID)
	if err != nil {
		return Ticket{}, err
	}

	fareSum := 0.0
	for _, seat := range seats {
		fareSum += seat.Fare
	}
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	// No payment rows yet means the fare sum stands in as the total.
	total := fareSum
	status := model.PaymentStatusUnpaid
	if len(payments) > 0 {
		total = paid
		status = model.PaymentStatusPaid
	}

	t := Ticket{
		BookingID:     b.ID,
		BookingDate:   b.BookingDate,
		JourneyDate:   JourneyDate(b.BookingDate),
		Status:        b.Status,
		Seats:         seats,
		TotalFare:     total,
		AmountPaid:    paid,
		PaymentStatus: status,
	}
	if len(seats) > 0 {
		t.TrainID = seats[0].TrainID
		t.TrainName = seats[0].TrainName
		t.FromStation, t.ToStation = s.routeEndpoints(ctx, t.TrainID)
	}
	return t, nil
}

// unknownEndpoint stands in for a route endpoint that cannot be
// resolved from either route_stations or the routes table.
const unknownEndpoint = "Unknown"

// routeEndpoints resolves the first and last stop of a train's route.
// Stops are preferred; a train without stop rows falls back to its
// routes row; a train with neither reports both endpoints as Unknown
// rather than failing the whole ticket.
func (s *Service) routeEndpoints(ctx context.Context, trainID uint64) (from, to string) {
	stops, err := s.routes.ListStopsByTrain(ctx, trainID)
	if err == nil && len(stops) > 0 {
		SortStops(stops)
		return stops[0].StationName, stops[len(stops)-1].StationName
	}

	from, to = unknownEndpoint, unknownEndpoint
	route, err := s.routes.GetByTrain(ctx, trainID)
	if err != nil {
		return from, to
	}
	if src, err := s.stations.GetByID(ctx, route.SourceStationID); err == nil {
		from = src.StationName
	}
	if dst, err := s.stations.GetByID(ctx, route.DestinationStationID); err == nil {
		to = dst.StationName
	}
	return from, to
}
