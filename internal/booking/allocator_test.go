package booking

import (
	"errors"
	"reflect"
	"testing"

	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/repository"
)

func seat(id, coachID uint64, number string) model.Seat {
	return model.Seat{ID: id, CoachID: coachID, SeatNumber: number}
}

func TestPlanFillsCoachBeforeSpilling(t *testing.T) {
	inv := []CoachInventory{
		{
			Coach: model.Coach{ID: 1, CoachNumber: "KA-1", CoachType: "Shovon"},
			Free:  []model.Seat{seat(11, 1, "A1"), seat(12, 1, "A2")},
		},
		{
			Coach: model.Coach{ID: 2, CoachNumber: "KA-2", CoachType: "Shovon"},
			Free:  []model.Seat{seat(21, 2, "A1"), seat(22, 2, "A2")},
		},
	}

	plan, err := Plan(inv, 3)
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	got := SeatIDs(plan)
	want := []uint64{11, 12, 21}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seat ids = %v, want %v", got, want)
	}
	if plan[2].Coach.CoachNumber != "KA-2" {
		t.Fatalf("third seat coach = %s, want KA-2", plan[2].Coach.CoachNumber)
	}
}

func TestPlanDeterministicForEqualSnapshots(t *testing.T) {
	build := func() []CoachInventory {
		return []CoachInventory{
			{Coach: model.Coach{ID: 1}, Free: []model.Seat{seat(5, 1, "A5"), seat(9, 1, "A9")}},
			{Coach: model.Coach{ID: 3}, Free: []model.Seat{seat(31, 3, "B1")}},
		}
	}
	first, err := Plan(build(), 2)
	if err != nil {
		t.Fatalf("first plan error: %v", err)
	}
	second, err := Plan(build(), 2)
	if err != nil {
		t.Fatalf("second plan error: %v", err)
	}
	if !reflect.DeepEqual(SeatIDs(first), SeatIDs(second)) {
		t.Fatalf("plans differ: %v vs %v", SeatIDs(first), SeatIDs(second))
	}
}

func TestPlanLastTwoSeatsThenShortfall(t *testing.T) {
	// 60-seat coach with 58 already booked leaves two free seats.
	inv := []CoachInventory{
		{Coach: model.Coach{ID: 7, CoachType: "Shovon"}, Free: []model.Seat{seat(759, 7, "C59"), seat(760, 7, "C60")}},
	}

	plan, err := Plan(inv, 2)
	if err != nil {
		t.Fatalf("plan for remaining seats failed: %v", err)
	}
	if got := SeatIDs(plan); !reflect.DeepEqual(got, []uint64{759, 760}) {
		t.Fatalf("seat ids = %v, want [759 760]", got)
	}

	_, err = Plan(inv, 3)
	var insufficient *InsufficientInventoryError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientInventoryError, got %v", err)
	}
	if insufficient.Available != 2 || insufficient.Requested != 3 {
		t.Fatalf("shortfall = %+v, want Available=2 Requested=3", insufficient)
	}
}

func TestPlanNothingFree(t *testing.T) {
	inv := []CoachInventory{{Coach: model.Coach{ID: 1}, Free: nil}}
	_, err := Plan(inv, 1)
	var insufficient *InsufficientInventoryError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientInventoryError, got %v", err)
	}
	if insufficient.Available != 0 {
		t.Fatalf("available = %d, want 0", insufficient.Available)
	}
}

func stop(id uint64, name string, seq *uint32) repository.RouteStop {
	return repository.RouteStop{
		RouteStation: model.RouteStation{ID: id, SequenceNumber: seq},
		StationName:  name,
	}
}

func seqPtr(n uint32) *uint32 { return &n }

func TestSortStopsSequencedFirstNullsLast(t *testing.T) {
	stops := []repository.RouteStop{
		stop(1, "Z", nil),
		stop(2, "Y", seqPtr(2)),
		stop(3, "X", seqPtr(1)),
	}
	SortStops(stops)

	var names []string
	for _, s := range stops {
		names = append(names, s.StationName)
	}
	if !reflect.DeepEqual(names, []string{"X", "Y", "Z"}) {
		t.Fatalf("order = %v, want [X Y Z]", names)
	}
}

func TestSortStopsStableForUnsequencedRows(t *testing.T) {
	stops := []repository.RouteStop{
		stop(10, "A", nil),
		stop(11, "B", nil),
		stop(12, "C", seqPtr(1)),
		stop(13, "D", nil),
	}
	SortStops(stops)

	var names []string
	for _, s := range stops {
		names = append(names, s.StationName)
	}
	if !reflect.DeepEqual(names, []string{"C", "A", "B", "D"}) {
		t.Fatalf("order = %v, want [C A B D]", names)
	}
}
