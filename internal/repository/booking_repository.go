package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/railtikit/rail-booking/internal/model"
)

// BookingRepo provides access to the booking ledger: the bookings table
// and its booking_seats join rows. The ledger is the source of truth
// for seat occupancy; a seat is taken exactly when a booking_seats row
// links it to a booking with status 'confirmed'. All mutating methods
// take an explicit *sql.Tx because ledger writes only happen inside the
// booking transaction; the caller commits or rolls back.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// OccupiedSeatIDsByCoach returns the ids of all seats in a coach that
// are referenced by a confirmed booking. This is the derived-occupancy
// query shared by allocation planning and the availability projection,
// so the two can never disagree about what "booked" means.
func (r *BookingRepo) OccupiedSeatIDsByCoach(ctx context.Context, coachID uint64) (map[uint64]struct{}, error) {
	const q = `SELECT bs.seat_id
	           FROM booking_seats bs
	           JOIN bookings b ON b.id = bs.booking_id
	           JOIN seats s ON s.id = bs.seat_id
	           WHERE s.coach_id = ? AND b.status = 'confirmed'`
	rows, err := r.db.QueryContext(ctx, q, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupied := map[uint64]struct{}{}
	for rows.Next() {
		var sid uint64
		if err := rows.Scan(&sid); err != nil {
			return nil, err
		}
		occupied[sid] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return occupied, nil
}

// LockSeatsTx takes exclusive row locks on the given seats, in ascending
// id order so concurrent bookers contending for overlapping seat sets
// acquire locks in the same order and cannot deadlock. The locks are the
// seat-level exclusive claim: between this call and commit, no other
// transaction can pass its own occupancy re-check for these seats.
func (r *BookingRepo) LockSeatsTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) error {
	if len(seatIDs) == 0 {
		return nil
	}
	q := `SELECT id FROM seats WHERE id IN (` + placeholders(len(seatIDs)) + `) ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, idArgs(seatIDs)...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return err
		}
	}
	return rows.Err()
}

// OccupiedAmongTx returns which of the candidate seats are already
// referenced by a confirmed booking, evaluated inside the transaction.
// Called after LockSeatsTx this is the commit-time re-validation of the
// allocation plan.
func (r *BookingRepo) OccupiedAmongTx(ctx context.Context, tx *sql.Tx, seatIDs []uint64) ([]uint64, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}
	q := `SELECT bs.seat_id
	      FROM booking_seats bs
	      JOIN bookings b ON b.id = bs.booking_id
	      WHERE b.status = 'confirmed' AND bs.seat_id IN (` + placeholders(len(seatIDs)) + `)`
	rows, err := tx.QueryContext(ctx, q, idArgs(seatIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var taken []uint64
	for rows.Next() {
		var sid uint64
		if err := rows.Scan(&sid); err != nil {
			return nil, err
		}
		taken = append(taken, sid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return taken, nil
}

// CreateTx inserts a new booking within the scope of an existing
// transaction. It populates the generated ID and booking date on the
// provided record. The caller must commit or rollback the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (user_id, schedule_id, status) VALUES (?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, b.UserID, b.ScheduleID, b.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Query back the row to pick up the DB-assigned booking date.
	const sel = `SELECT booking_date FROM bookings WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.BookingDate)
}

// CreateSeatsBulkTx inserts multiple booking_seats rows in a single
// statement. Each record must carry the parent booking ID and the fare
// charged for that seat. Passing an empty slice has no effect.
func (r *BookingRepo) CreateSeatsBulkTx(ctx context.Context, tx *sql.Tx, seats []model.BookingSeat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO booking_seats (booking_id, seat_id, fare) VALUES `
	args := make([]interface{}, 0, len(seats)*3)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, s.BookingID, s.SeatID, s.Fare)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByID loads a single booking row.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID uint64) (model.Booking, error) {
	const q = `SELECT id, user_id, schedule_id, booking_date, status
	           FROM bookings WHERE id = ? LIMIT 1`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, bookingID).Scan(
		&b.ID, &b.UserID, &b.ScheduleID, &b.BookingDate, &b.Status)
	return b, err
}

// ListByUser returns all bookings of a user, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT id, user_id, schedule_id, booking_date, status
	           FROM bookings
	           WHERE user_id = ?
	           ORDER BY booking_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ScheduleID, &b.BookingDate, &b.Status); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// BookedSeatDetail is one seat of a booking joined to its coach and
// train reference data, as needed for tickets and history views.
type BookedSeatDetail struct {
	SeatID      uint64
	SeatNumber  string
	CoachNumber string
	CoachType   string
	Fare        float64
	TrainID     uint64
	TrainName   string
}

// SeatDetailsByBooking returns the seats of a booking joined to coach
// and train data, in the order the seats were attached.
func (r *BookingRepo) SeatDetailsByBooking(ctx context.Context, bookingID uint64) ([]BookedSeatDetail, error) {
	const q = `SELECT bs.seat_id, s.seat_number, c.coach_number, c.coach_type, bs.fare,
	                  t.id, t.train_name
	           FROM booking_seats bs
	           JOIN seats s ON s.id = bs.seat_id
	           JOIN coaches c ON c.id = s.coach_id
	           JOIN trains t ON t.id = c.train_id
	           WHERE bs.booking_id = ?
	           ORDER BY bs.id`
	rows, err := r.db.QueryContext(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []BookedSeatDetail{}
	for rows.Next() {
		var d BookedSeatDetail
		if err := rows.Scan(&d.SeatID, &d.SeatNumber, &d.CoachNumber, &d.CoachType,
			&d.Fare, &d.TrainID, &d.TrainName); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// placeholders returns "?,?,..." with n slots.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func idArgs(ids []uint64) []interface{} {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}
