package booking

import (
	"sort"

	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/repository"
)

// CoachInventory is a point-in-time view of one coach of the requested
// class: the coach itself plus its currently free seats in ascending id
// order. Snapshots are assembled from the derived occupancy query and
// are immutable once built.
type CoachInventory struct {
	Coach model.Coach
	Free  []model.Seat
}

// PlannedSeat pairs a chosen seat with the coach it sits in, so callers
// can render coach numbers without another lookup.
type PlannedSeat struct {
	Seat  model.Seat
	Coach model.Coach
}

// Plan chooses exactly requested seats from the snapshot, greedily:
// coaches in the order given (ascending id), seats within a coach in
// ascending id order, spilling into the next coach only when the
// current one is exhausted. Planning is a pure function of the
// snapshot, so equal snapshots always yield the same seats. If the
// snapshot holds fewer free seats than requested, no partial plan is
// made and an InsufficientInventoryError reports the shortfall.
func Plan(inventories []CoachInventory, requested int) ([]PlannedSeat, error) {
	free := 0
	for _, inv := range inventories {
		free += len(inv.Free)
	}
	if free < requested {
		return nil, &InsufficientInventoryError{Available: free, Requested: requested}
	}

	plan := make([]PlannedSeat, 0, requested)
	for _, inv := range inventories {
		for _, seat := range inv.Free {
			if len(plan) == requested {
				return plan, nil
			}
			plan = append(plan, PlannedSeat{Seat: seat, Coach: inv.Coach})
		}
	}
	return plan, nil
}

// SeatIDs extracts the seat ids of a plan in plan order.
func SeatIDs(plan []PlannedSeat) []uint64 {
	ids := make([]uint64, len(plan))
	for i, p := range plan {
		ids[i] = p.Seat.ID
	}
	return ids
}

// SortStops orders route stops for presentation: stops with a sequence
// number first in ascending sequence order, stops without one after
// them. The sort is stable, so stops sharing a sequence number (or all
// lacking one) keep their stored order.
func SortStops(stops []repository.RouteStop) {
	sort.SliceStable(stops, func(i, j int) bool {
		si, sj := stops[i].SequenceNumber, stops[j].SequenceNumber
		switch {
		case si == nil && sj == nil:
			return false
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si < *sj
		}
	})
}
