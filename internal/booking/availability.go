package booking

import "context"

// CoachTypeAvailability is the public occupancy view for one fare
// class of a train, aggregated across its coaches. Counts are derived
// from the booking ledger at read time, so a response may be stale the
// moment it is sent; the booking transaction is the only authority on
// whether a seat can actually be claimed.
type CoachTypeAvailability struct {
	CoachType      string  `json:"coach_type"`
	Coaches        uint32  `json:"coaches"`
	TotalSeats     uint32  `json:"total_seats"`
	BookedSeats    uint32  `json:"booked_seats"`
	AvailableSeats uint32  `json:"available_seats"`
	FarePerSeat    float64 `json:"price"`
}

// Availability projects current occupancy for every fare class of a
// train, classes in the order their first coach appears. Total seats
// come from the provisioned seat rows, not the coaches' declared
// capacity, so the two never drift apart in responses.
func (s *Service) Availability(ctx context.Context, trainID uint64) ([]CoachTypeAvailability, error) {
	coaches, err := s.coaches.ListByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	byType := map[string]int{}
	result := []CoachTypeAvailability{}
	for _, coach := range coaches {
		total, err := s.seats.CountByCoach(ctx, coach.ID)
		if err != nil {
			return nil, err
		}
		occupied, err := s.bookings.OccupiedSeatIDsByCoach(ctx, coach.ID)
		if err != nil {
			return nil, err
		}

		idx, seen := byType[coach.CoachType]
		if !seen {
			idx = len(result)
			byType[coach.CoachType] = idx
			result = append(result, CoachTypeAvailability{
				CoachType:   coach.CoachType,
				FarePerSeat: s.fares.Price(coach.CoachType),
			})
		}
		result[idx].Coaches++
		result[idx].TotalSeats += total
		result[idx].BookedSeats += uint32(len(occupied))
	}
	for i := range result {
		if result[i].TotalSeats > result[i].BookedSeats {
			result[i].AvailableSeats = result[i].TotalSeats - result[i].BookedSeats
		}
	}
	return result, nil
}
