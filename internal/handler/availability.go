package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/repository"
)

// AvailabilityHandler exposes per-class occupancy for a train.
type AvailabilityHandler struct {
	Trains  *repository.TrainRepo
	Booking *booking.Service
}

func NewAvailabilityHandler(t *repository.TrainRepo, svc *booking.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Trains: t, Booking: svc}
}

// CoachAvailability returns the live seat counts and fare for every
// coach class of a train. Figures are advisory; the booking transaction
// has the final say.
func (h *AvailabilityHandler) CoachAvailability(c echo.Context) error {
	trainID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || trainID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Trains.GetByID(ctx, trainID); err != nil {
		if err == repository.ErrTrainNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	classes, err := h.Booking.Availability(ctx, trainID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"train_id": trainID, "availability": classes})
}
