package repository // repository defines data access for seats

import (
	"context"
	"database/sql"

	"github.com/railtikit/rail-booking/internal/model"
)

// SeatRepo provides read access to the seat inventory. Seats are
// reference data: the booking flow only ever reads them, availability
// being derived from the booking ledger.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByCoach retrieves all seats of a coach in provisioning order
// (ascending id). Allocation picks free seats in exactly this order.
func (r *SeatRepo) ListByCoach(ctx context.Context, coachID uint64) ([]model.Seat, error) {
	const q = `SELECT id, coach_id, seat_number, seat_class
	           FROM seats
	           WHERE coach_id = ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Seat{}
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.CoachID, &s.SeatNumber, &s.SeatClass); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByCoach returns the number of provisioned seats in a coach.
// The coaches.total_seats column is only a declared capacity; the seat
// rows are authoritative.
func (r *SeatRepo) CountByCoach(ctx context.Context, coachID uint64) (uint32, error) {
	var n uint32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM seats WHERE coach_id = ?`, coachID).Scan(&n)
	return n, err
}
