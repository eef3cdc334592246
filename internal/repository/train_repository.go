package repository // repository defines data access for trains

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/railtikit/rail-booking/internal/model"
)

// ErrTrainNotFound is returned when a train lookup yields no rows.
var ErrTrainNotFound = errors.New("train not found")

// TrainRepo provides methods to work with trains in the database.
type TrainRepo struct {
	db *sql.DB
}

// NewTrainRepo constructs a TrainRepo with the given DB handle.
func NewTrainRepo(db *sql.DB) *TrainRepo {
	return &TrainRepo{db: db}
}

// GetByID retrieves a train by its id.
func (r *TrainRepo) GetByID(ctx context.Context, id uint64) (*model.Train, error) {
	const q = `SELECT id, train_name, train_type, total_coaches FROM trains WHERE id = ? LIMIT 1`
	var t model.Train
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&t.ID, &t.TrainName, &t.TrainType, &t.TotalCoaches)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByName retrieves a train by its exact public name.
func (r *TrainRepo) GetByName(ctx context.Context, name string) (*model.Train, error) {
	const q = `SELECT id, train_name, train_type, total_coaches FROM trains WHERE train_name = ? LIMIT 1`
	var t model.Train
	err := r.db.QueryRowContext(ctx, q, strings.TrimSpace(name)).
		Scan(&t.ID, &t.TrainName, &t.TrainType, &t.TotalCoaches)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindServingBothStations returns trains whose route contains both the
// origin and the destination station, ordered by id. Used by train
// search; an empty result simply means no service connects the pair.
func (r *TrainRepo) FindServingBothStations(ctx context.Context, fromStationID, toStationID uint64) ([]model.Train, error) {
	const q = `SELECT t.id, t.train_name, t.train_type, t.total_coaches
	           FROM trains t
	           WHERE EXISTS (SELECT 1 FROM route_stations rs
	                         WHERE rs.train_id = t.id AND rs.station_id = ?)
	             AND EXISTS (SELECT 1 FROM route_stations rs
	                         WHERE rs.train_id = t.id AND rs.station_id = ?)
	           ORDER BY t.id`
	rows, err := r.db.QueryContext(ctx, q, fromStationID, toStationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Train
	for rows.Next() {
		var t model.Train
		if err := rows.Scan(&t.ID, &t.TrainName, &t.TrainType, &t.TotalCoaches); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
