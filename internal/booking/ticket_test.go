package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingRow(mock sqlmock.Sqlmock, id, userID uint64, booked time.Time, status string) *sqlmock.Rows {
	return mock.NewRows([]string{"id", "user_id", "schedule_id", "booking_date", "status"}).
		AddRow(id, userID, 0, booked, status)
}

func seatDetailRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows([]string{"seat_id", "seat_number", "coach_number", "coach_type", "fare", "id", "train_name"})
}

func expectEndpointStops(mock sqlmock.Sqlmock, trainID uint64) {
	mock.ExpectQuery("FROM route_stations rs").WithArgs(trainID).
		WillReturnRows(mock.NewRows([]string{
			"id", "train_id", "station_id", "sequence_number",
			"arrival_offset_minutes", "departure_offset_minutes", "halt_minutes", "station_name",
		}).
			AddRow(1, trainID, 1, 1, nil, 0, 0, "Dhaka").
			AddRow(2, trainID, 2, 2, 300, nil, 0, "Rajshahi"))
}

func TestTicketFallsBackToFareSum(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	booked := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(uint64(7)).
		WillReturnRows(bookingRow(mock, 7, 42, booked, "confirmed"))
	mock.ExpectQuery("FROM booking_seats bs").WithArgs(uint64(7)).
		WillReturnRows(seatDetailRows(mock).
			AddRow(12, "A2", "KA-1", "Shovon", 400.0, 5, "Padma Express").
			AddRow(13, "A3", "KA-1", "Shovon", 400.0, 5, "Padma Express"))
	mock.ExpectQuery("FROM payments").WithArgs(uint64(7)).
		WillReturnRows(mock.NewRows([]string{"id", "booking_id", "amount", "payment_date", "status"}))
	expectEndpointStops(mock, 5)

	ticket, err := svc.Ticket(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("ticket error: %v", err)
	}
	if ticket.TotalFare != 800 {
		t.Fatalf("total fare = %v, want 800 from seat fares", ticket.TotalFare)
	}
	if ticket.AmountPaid != 0 || ticket.PaymentStatus != "unpaid" {
		t.Fatalf("payment state = %v/%s, want 0/unpaid", ticket.AmountPaid, ticket.PaymentStatus)
	}
	if want := booked.AddDate(0, 0, 7); !ticket.JourneyDate.Equal(want) {
		t.Fatalf("journey date = %v, want %v", ticket.JourneyDate, want)
	}
	if ticket.TrainName != "Padma Express" || ticket.TrainID != 5 {
		t.Fatalf("train = %d %q", ticket.TrainID, ticket.TrainName)
	}
	if ticket.FromStation != "Dhaka" || ticket.ToStation != "Rajshahi" {
		t.Fatalf("endpoints = %q to %q", ticket.FromStation, ticket.ToStation)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketUsesPaymentSumWhenPresent(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	booked := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	paidAt := booked.Add(time.Hour)
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(uint64(7)).
		WillReturnRows(bookingRow(mock, 7, 42, booked, "confirmed"))
	mock.ExpectQuery("FROM booking_seats bs").WithArgs(uint64(7)).
		WillReturnRows(seatDetailRows(mock).
			AddRow(12, "A2", "KA-1", "Shovon", 400.0, 5, "Padma Express"))
	mock.ExpectQuery("FROM payments").WithArgs(uint64(7)).
		WillReturnRows(mock.NewRows([]string{"id", "booking_id", "amount", "payment_date", "status"}).
			AddRow(1, 7, 400.0, paidAt, "paid"))
	expectEndpointStops(mock, 5)

	ticket, err := svc.Ticket(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("ticket error: %v", err)
	}
	if ticket.TotalFare != 400 || ticket.AmountPaid != 400 {
		t.Fatalf("fare/paid = %v/%v, want 400/400", ticket.TotalFare, ticket.AmountPaid)
	}
	if ticket.PaymentStatus != "paid" {
		t.Fatalf("payment status = %s, want paid", ticket.PaymentStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketReportsUnknownEndpointsWithoutRouteData(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	booked := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(uint64(7)).
		WillReturnRows(bookingRow(mock, 7, 42, booked, "confirmed"))
	mock.ExpectQuery("FROM booking_seats bs").WithArgs(uint64(7)).
		WillReturnRows(seatDetailRows(mock).
			AddRow(12, "A2", "KA-1", "Shovon", 400.0, 5, "Padma Express"))
	mock.ExpectQuery("FROM payments").WithArgs(uint64(7)).
		WillReturnRows(mock.NewRows([]string{"id", "booking_id", "amount", "payment_date", "status"}))
	mock.ExpectQuery("FROM route_stations rs").WithArgs(uint64(5)).
		WillReturnRows(mock.NewRows([]string{
			"id", "train_id", "station_id", "sequence_number",
			"arrival_offset_minutes", "departure_offset_minutes", "halt_minutes", "station_name",
		}))
	mock.ExpectQuery("FROM routes").WithArgs(uint64(5)).
		WillReturnRows(mock.NewRows([]string{
			"id", "train_id", "source_station_id", "destination_station_id", "distance_km",
		}))

	ticket, err := svc.Ticket(context.Background(), 42, 7)
	if err != nil {
		t.Fatalf("ticket error: %v", err)
	}
	if ticket.FromStation != "Unknown" || ticket.ToStation != "Unknown" {
		t.Fatalf("endpoints = %q to %q, want Unknown placeholders", ticket.FromStation, ticket.ToStation)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketHidesOtherUsersBookings(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	booked := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(uint64(7)).
		WillReturnRows(bookingRow(mock, 7, 99, booked, "confirmed"))

	_, err := svc.Ticket(context.Background(), 42, 7)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound for foreign booking, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketMissingBooking(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(uint64(404)).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "schedule_id", "booking_date", "status"}))

	_, err := svc.Ticket(context.Background(), 42, 404)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestMyTicketsSplitsUpcomingAndPast(t *testing.T) {
	svc, mock, db := newTestService(t)
	defer db.Close()

	oldBooked := time.Now().UTC().AddDate(0, 0, -30)
	newBooked := time.Now().UTC().AddDate(0, 0, -1)

	mock.ExpectQuery("FROM bookings").WithArgs(uint64(42)).
		WillReturnRows(mock.NewRows([]string{"id", "user_id", "schedule_id", "booking_date", "status"}).
			AddRow(2, 42, 0, newBooked, "confirmed").
			AddRow(1, 42, 0, oldBooked, "confirmed"))

	for _, id := range []uint64{2, 1} {
		mock.ExpectQuery("FROM booking_seats bs").WithArgs(id).
			WillReturnRows(seatDetailRows(mock).
				AddRow(10+id, "A1", "KA-1", "Shovon", 400.0, 5, "Padma Express"))
		mock.ExpectQuery("FROM payments").WithArgs(id).
			WillReturnRows(mock.NewRows([]string{"id", "booking_id", "amount", "payment_date", "status"}))
		expectEndpointStops(mock, 5)
	}

	upcoming, past, err := svc.MyTickets(context.Background(), 42)
	if err != nil {
		t.Fatalf("my tickets error: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].BookingID != 2 {
		t.Fatalf("upcoming = %+v, want booking 2", upcoming)
	}
	if len(past) != 1 || past[0].BookingID != 1 {
		t.Fatalf("past = %+v, want booking 1", past)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
