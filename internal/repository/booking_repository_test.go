package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/railtikit/rail-booking/internal/model"
)

func TestCreateSeatsBulkTxSingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(uint64(9), uint64(11), 400.0, uint64(9), uint64(12), 400.0).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	repo := NewBookingRepo(db)
	seats := []model.BookingSeat{
		{BookingID: 9, SeatID: 11, Fare: 400},
		{BookingID: 9, SeatID: 12, Fare: 400},
	}
	if err := repo.CreateSeatsBulkTx(context.Background(), tx, seats); err != nil {
		t.Fatalf("bulk insert error: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLockSeatsTxSkipsEmptySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin error: %v", err)
	}
	repo := NewBookingRepo(db)
	if err := repo.LockSeatsTx(context.Background(), tx, nil); err != nil {
		t.Fatalf("empty lock should be a no-op, got %v", err)
	}
	_ = tx.Rollback()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceholders(t *testing.T) {
	cases := map[int]string{0: "", 1: "?", 3: "?,?,?"}
	for n, want := range cases {
		if got := placeholders(n); got != want {
			t.Errorf("placeholders(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestOccupiedSeatIDsByCoach(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking_seats").WithArgs(uint64(3)).
		WillReturnRows(mock.NewRows([]string{"seat_id"}).AddRow(31).AddRow(35))

	repo := NewBookingRepo(db)
	occupied, err := repo.OccupiedSeatIDsByCoach(context.Background(), 3)
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(occupied) != 2 {
		t.Fatalf("got %d occupied seats, want 2", len(occupied))
	}
	for _, id := range []uint64{31, 35} {
		if _, ok := occupied[id]; !ok {
			t.Errorf("seat %d missing from occupancy set", id)
		}
	}
}
