package booking

import (
	"context"
	"database/sql"

	"github.com/railtikit/rail-booking/internal/config"
	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/repository"
)

// Service runs seat allocation and the booking transaction. It owns no
// state of its own; everything it knows comes from the repositories and
// the fare table handed to it at construction.
type Service struct {
	db       *sql.DB
	coaches  *repository.CoachRepo
	seats    *repository.SeatRepo
	bookings *repository.BookingRepo
	payments *repository.PaymentRepo
	routes   *repository.RouteRepo
	stations *repository.StationRepo
	fares    config.FareTable
}

// NewService wires a booking service over the given repositories.
func NewService(db *sql.DB, coaches *repository.CoachRepo, seats *repository.SeatRepo,
	bookings *repository.BookingRepo, payments *repository.PaymentRepo,
	routes *repository.RouteRepo, stations *repository.StationRepo, fares config.FareTable) *Service {
	return &Service{
		db:       db,
		coaches:  coaches,
		seats:    seats,
		bookings: bookings,
		payments: payments,
		routes:   routes,
		stations: stations,
		fares:    fares,
	}
}

// Result is a completed booking: the ledger row plus the seats that
// were granted and what they cost.
type Result struct {
	Booking     model.Booking
	Seats       []PlannedSeat
	FarePerSeat float64
	TotalFare   float64
}

// Snapshot builds the free-seat view of one train's coaches of the
// requested class. Coaches arrive in ascending id order, free seats
// within each coach likewise, which is exactly the order Plan consumes.
// A train with no coaches of the class yields ErrNoSuchCoachClass.
func (s *Service) Snapshot(ctx context.Context, trainID uint64, coachType string) ([]CoachInventory, error) {
	coaches, err := s.coaches.ListByTrainAndType(ctx, trainID, coachType)
	if err != nil {
		return nil, err
	}
	if len(coaches) == 0 {
		return nil, ErrNoSuchCoachClass
	}

	inventories := make([]CoachInventory, 0, len(coaches))
	for _, coach := range coaches {
		seats, err := s.seats.ListByCoach(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		occupied, err := s.bookings.OccupiedSeatIDsByCoach(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		free := make([]model.Seat, 0, len(seats))
		for _, seat := range seats {
			if _, taken := occupied[seat.ID]; !taken {
				free = append(free, seat)
			}
		}
		inventories = append(inventories, CoachInventory{Coach: coach, Free: free})
	}
	return inventories, nil
}

// Allocate plans seats without claiming them. Useful for previewing
// what Book would grant; the plan is not a reservation.
func (s *Service) Allocate(ctx context.Context, trainID uint64, coachType string, count int) ([]PlannedSeat, error) {
	inventories, err := s.Snapshot(ctx, trainID, coachType)
	if err != nil {
		return nil, err
	}
	return Plan(inventories, count)
}

// Book allocates count seats of the given class on a train and records
// the booking atomically. The flow is: plan against a snapshot, then
// inside one transaction lock the planned seat rows, re-check that none
// of them gained a confirmed booking since the snapshot, and only then
// write the booking and its seat rows. A re-check failure surfaces as
// InsufficientInventoryError; nothing is written in that case.
//
// totalAmount is split equally across the seats. A non-positive amount
// means "charge the table fare", count times the class price.
func (s *Service) Book(ctx context.Context, userID, trainID, scheduleID uint64, coachType string, count int, totalAmount float64) (Result, error) {
	inventories, err := s.Snapshot(ctx, trainID, coachType)
	if err != nil {
		return Result{}, err
	}
	plan, err := Plan(inventories, count)
	if err != nil {
		return Result{}, err
	}
	planFree := 0
	for _, inv := range inventories {
		planFree += len(inv.Free)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	seatIDs := SeatIDs(plan)
	if err := s.bookings.LockSeatsTx(ctx, tx, seatIDs); err != nil {
		return Result{}, err
	}
	taken, err := s.bookings.OccupiedAmongTx(ctx, tx, seatIDs)
	if err != nil {
		return Result{}, err
	}
	if len(taken) > 0 {
		// Another transaction claimed part of the plan between the
		// snapshot and our locks. Fail without writing; the caller can
		// retry against a fresh snapshot.
		return Result{}, &InsufficientInventoryError{
			Available: planFree - len(taken),
			Requested: count,
		}
	}

	booked := model.Booking{
		UserID:     userID,
		ScheduleID: scheduleID,
		Status:     model.BookingStatusConfirmed,
	}
	if err := s.bookings.CreateTx(ctx, tx, &booked); err != nil {
		return Result{}, err
	}

	if totalAmount <= 0 {
		totalAmount = s.fares.Price(coachType) * float64(count)
	}
	fare := totalAmount / float64(count)
	rows := make([]model.BookingSeat, len(plan))
	for i, p := range plan {
		rows[i] = model.BookingSeat{BookingID: booked.ID, SeatID: p.Seat.ID, Fare: fare}
	}
	if err := s.bookings.CreateSeatsBulkTx(ctx, tx, rows); err != nil {
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		return Result{}, err
	}
	committed = true

	return Result{
		Booking:     booked,
		Seats:       plan,
		FarePerSeat: fare,
		TotalFare:   totalAmount,
	}, nil
}
