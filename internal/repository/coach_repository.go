package repository // repository defines data access for coaches

import (
	"context"
	"database/sql"

	"github.com/railtikit/rail-booking/internal/model"
)

// CoachRepo provides methods to work with coaches in the database.
type CoachRepo struct {
	db *sql.DB
}

// NewCoachRepo constructs a CoachRepo with the given DB handle.
func NewCoachRepo(db *sql.DB) *CoachRepo {
	return &CoachRepo{db: db}
}

// ListByTrain retrieves all coaches of a train ordered by id.
func (r *CoachRepo) ListByTrain(ctx context.Context, trainID uint64) ([]model.Coach, error) {
	const q = `SELECT id, train_id, coach_number, coach_type, total_seats
	           FROM coaches
	           WHERE train_id = ?
	           ORDER BY id`
	return r.list(ctx, q, trainID)
}

// ListByTrainAndType retrieves the coaches of a train matching the
// requested fare class, ordered by id. Allocation iterates coaches in
// this order, so the ordering must stay stable. An empty slice means
// the class is not offered on this train; that is a caller-visible
// condition, not an error.
func (r *CoachRepo) ListByTrainAndType(ctx context.Context, trainID uint64, coachType string) ([]model.Coach, error) {
	const q = `SELECT id, train_id, coach_number, coach_type, total_seats
	           FROM coaches
	           WHERE train_id = ? AND coach_type = ?
	           ORDER BY id`
	return r.list(ctx, q, trainID, coachType)
}

func (r *CoachRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Coach, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Coach{}
	for rows.Next() {
		var c model.Coach
		if err := rows.Scan(&c.ID, &c.TrainID, &c.CoachNumber, &c.CoachType, &c.TotalSeats); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
