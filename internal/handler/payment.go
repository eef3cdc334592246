package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/repository"
)

// PaymentHandler records payments against the caller's own bookings.
type PaymentHandler struct {
	Booking  *booking.Service
	Payments *repository.PaymentRepo
}

func NewPaymentHandler(svc *booking.Service, payments *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{Booking: svc, Payments: payments}
}

type paymentReq struct {
	BookingID uint64  `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

type paymentResp struct {
	PaymentID   uint64  `json:"payment_id"`
	BookingID   uint64  `json:"booking_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date"`
}

// Pay records a payment. A zero amount means "pay the full fare" and
// is filled from the booking's seat fares. Paying someone else's
// booking is a 404 like any other missing booking.
func (h *PaymentHandler) Pay(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id required"})
	}
	if req.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must not be negative"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ticket, err := h.Booking.Ticket(ctx, uid, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if ticket.Status != model.BookingStatusConfirmed {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking is not payable"})
	}

	amount := req.Amount
	if amount == 0 {
		for _, seat := range ticket.Seats {
			amount += seat.Fare
		}
	}

	p := model.Payment{BookingID: req.BookingID, Amount: amount, Status: model.PaymentStatusPaid}
	if err := h.Payments.Create(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment failed"})
	}

	return c.JSON(http.StatusCreated, paymentResp{
		PaymentID:   p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		Status:      p.Status,
		PaymentDate: p.PaymentDate.Format("2006-01-02 15:04:05"),
	})
}
