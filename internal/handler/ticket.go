package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/repository"
)

// TicketHandler serves assembled tickets for the authenticated user.
type TicketHandler struct {
	Booking *booking.Service
	Users   *repository.UserRepo
}

func NewTicketHandler(svc *booking.Service, users *repository.UserRepo) *TicketHandler {
	return &TicketHandler{Booking: svc, Users: users}
}

// GetTicket returns one ticket. Someone else's booking id is a plain
// 404, indistinguishable from an id that never existed.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ticket, err := h.Booking.Ticket(ctx, uid, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, ticket)
}

// TicketPDF renders the e-ticket as a downloadable PDF.
func (h *TicketHandler) TicketPDF(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ticket, err := h.Booking.Ticket(ctx, uid, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	passenger := "Passenger"
	if u, err := h.Users.GetByID(ctx, uid); err == nil {
		passenger = u.Name
	}
	pdf, filename, err := booking.RenderTicketPDF(ticket, passenger)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// MyTickets lists the user's tickets split into upcoming and past
// journeys.
func (h *TicketHandler) MyTickets(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	upcoming, past, err := h.Booking.MyTickets(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"upcoming_trips": upcoming, "past_trips": past})
}
