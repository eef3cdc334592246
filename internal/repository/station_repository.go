package repository // repository defines data access for stations

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/railtikit/rail-booking/internal/model"
)

// ErrStationNotFound is returned when a station lookup yields no rows.
var ErrStationNotFound = errors.New("station not found")

// StationRepo provides methods to work with stations in the database.
type StationRepo struct {
	db *sql.DB
}

// NewStationRepo constructs a StationRepo with the given DB handle.
func NewStationRepo(db *sql.DB) *StationRepo {
	return &StationRepo{db: db}
}

// ListAll returns every station ordered by name.
func (r *StationRepo) ListAll(ctx context.Context) ([]model.Station, error) {
	const q = `SELECT id, station_name, location FROM stations ORDER BY station_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Station
	for rows.Next() {
		var s model.Station
		if err := rows.Scan(&s.ID, &s.StationName, &s.Location); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByName retrieves a station by its exact name.
func (r *StationRepo) GetByName(ctx context.Context, name string) (*model.Station, error) {
	const q = `SELECT id, station_name, location FROM stations WHERE station_name = ? LIMIT 1`
	var s model.Station
	err := r.db.QueryRowContext(ctx, q, strings.TrimSpace(name)).
		Scan(&s.ID, &s.StationName, &s.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetByID retrieves a station by its id.
func (r *StationRepo) GetByID(ctx context.Context, id uint64) (*model.Station, error) {
	const q = `SELECT id, station_name, location FROM stations WHERE id = ? LIMIT 1`
	var s model.Station
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.StationName, &s.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}
