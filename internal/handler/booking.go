package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/queue"
	queuepub "github.com/railtikit/rail-booking/internal/service"
)

// BookingHandler drives the seat-booking flow.
type BookingHandler struct {
	Booking      *booking.Service
	PublishEvent func(ctx context.Context, ev queue.TicketBookedEvent) error
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{Booking: svc, PublishEvent: queuepub.PublishTicketBooked}
}

type bookReq struct {
	TrainID     uint64  `json:"train_id"`
	ScheduleID  uint64  `json:"schedule_id"`
	CoachType   string  `json:"coach_type"`
	TicketCount int     `json:"ticket_count"`
	TotalAmount float64 `json:"total_amount"`
}

type bookedSeatResp struct {
	SeatID      uint64  `json:"seat_id"`
	SeatNumber  string  `json:"seat_number"`
	CoachNumber string  `json:"coach_number"`
	Fare        float64 `json:"fare"`
}

type bookResp struct {
	BookingID   uint64           `json:"booking_id"`
	Status      string           `json:"status"`
	BookingDate time.Time        `json:"booking_date"`
	CoachType   string           `json:"coach_type"`
	Seats       []bookedSeatResp `json:"seats"`
	TotalFare   float64          `json:"total_fare"`
}

// Book allocates and claims seats for the authenticated user. Class
// not offered maps to 404, not enough free seats to 400 with the
// observed availability, everything else to 500.
func (h *BookingHandler) Book(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TrainID == 0 || req.CoachType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "train_id/coach_type required"})
	}
	if req.TicketCount < 1 || req.TicketCount > 10 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_count must be between 1 and 10"})
	}
	if req.TotalAmount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "total_amount must not be negative"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	result, err := h.Booking.Book(ctx, uid, req.TrainID, req.ScheduleID, req.CoachType, req.TicketCount, req.TotalAmount)
	if err != nil {
		var insufficient *booking.InsufficientInventoryError
		switch {
		case errors.Is(err, booking.ErrNoSuchCoachClass):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "coach class not offered on this train"})
		case errors.As(err, &insufficient):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":     "not enough seats available",
				"requested": insufficient.Requested,
				"available": insufficient.Available,
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}

	seats := make([]bookedSeatResp, len(result.Seats))
	seatNumbers := make([]string, len(result.Seats))
	for i, s := range result.Seats {
		seats[i] = bookedSeatResp{
			SeatID:      s.Seat.ID,
			SeatNumber:  s.Seat.SeatNumber,
			CoachNumber: s.Coach.CoachNumber,
			Fare:        result.FarePerSeat,
		}
		seatNumbers[i] = s.Coach.CoachNumber + "/" + s.Seat.SeatNumber
	}

	// The booking is already committed; a broker outage must not fail
	// the request.
	go func(ev queue.TicketBookedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		if err := h.PublishEvent(pubCtx, ev); err != nil {
			log.Printf("booking: publish ticket.booked failed: %v", err)
		}
	}(queue.TicketBookedEvent{
		BookingID:   result.Booking.ID,
		UserID:      uid,
		TrainID:     req.TrainID,
		CoachType:   req.CoachType,
		SeatNumbers: seatNumbers,
		TotalFare:   result.TotalFare,
		JourneyDate: booking.JourneyDate(result.Booking.BookingDate).Format("2006-01-02"),
		BookedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, bookResp{
		BookingID:   result.Booking.ID,
		Status:      result.Booking.Status,
		BookingDate: result.Booking.BookingDate,
		CoachType:   req.CoachType,
		Seats:       seats,
		TotalFare:   result.TotalFare,
	})
}
