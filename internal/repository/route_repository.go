package repository // repository defines data access for routes and their stops

import (
	"context"
	"database/sql"
	"errors"

	"github.com/railtikit/rail-booking/internal/model"
)

// ErrRouteNotFound is returned when a train has no routes row.
var ErrRouteNotFound = errors.New("route not found")

// RouteStop pairs a route_stations row with the resolved station name.
// Rows come back in insertion order (ascending id); callers that need
// timetable order sort by sequence number with nulls last.
type RouteStop struct {
	model.RouteStation
	StationName string
}

// RouteRepo provides read access to routes and route_stations.
type RouteRepo struct {
	db *sql.DB
}

// NewRouteRepo constructs a RouteRepo with the given DB handle.
func NewRouteRepo(db *sql.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

// ListStopsByTrain returns every waypoint of a train's route joined to
// its station name, ordered by row id. Legacy rows may carry a NULL
// sequence_number; ordering by sequence is the caller's concern so the
// null-handling rule lives in one place (booking.SortStops).
func (r *RouteRepo) ListStopsByTrain(ctx context.Context, trainID uint64) ([]RouteStop, error) {
	const q = `SELECT rs.id, rs.train_id, rs.station_id, rs.sequence_number,
	                  rs.arrival_offset_minutes, rs.departure_offset_minutes,
	                  COALESCE(rs.halt_minutes, 0),
	                  s.station_name
	           FROM route_stations rs
	           JOIN stations s ON s.id = rs.station_id
	           WHERE rs.train_id = ?
	           ORDER BY rs.id`
	rows, err := r.db.QueryContext(ctx, q, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []RouteStop{}
	for rows.Next() {
		var (
			stop RouteStop
			seq  sql.NullInt32
			arr  sql.NullInt32
			dep  sql.NullInt32
		)
		if err := rows.Scan(
			&stop.ID, &stop.TrainID, &stop.StationID, &seq,
			&arr, &dep, &stop.HaltMinutes, &stop.StationName,
		); err != nil {
			return nil, err
		}
		if seq.Valid {
			v := uint32(seq.Int32)
			stop.SequenceNumber = &v
		}
		if arr.Valid {
			v := arr.Int32
			stop.ArrivalOffsetMinutes = &v
		}
		if dep.Valid {
			v := dep.Int32
			stop.DepartureOffsetMinutes = &v
		}
		result = append(result, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByTrain returns the declared route row for a train. Used as the
// endpoint fallback when no route_stations rows exist.
func (r *RouteRepo) GetByTrain(ctx context.Context, trainID uint64) (*model.Route, error) {
	const q = `SELECT id, train_id, source_station_id, destination_station_id,
	                  COALESCE(distance_km, 0)
	           FROM routes
	           WHERE train_id = ?
	           ORDER BY id
	           LIMIT 1`
	var rt model.Route
	err := r.db.QueryRowContext(ctx, q, trainID).Scan(
		&rt.ID, &rt.TrainID, &rt.SourceStationID, &rt.DestinationStationID, &rt.DistanceKM)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}
	return &rt, nil
}
