package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/config"
	"github.com/railtikit/rail-booking/internal/queue"
	"github.com/railtikit/rail-booking/internal/repository"
)

func newBookingTestHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := booking.NewService(db,
		repository.NewCoachRepo(db),
		repository.NewSeatRepo(db),
		repository.NewBookingRepo(db),
		repository.NewPaymentRepo(db),
		repository.NewRouteRepo(db),
		repository.NewStationRepo(db),
		config.FareTable{"Shovon": 400})
	h := NewBookingHandler(svc)
	h.PublishEvent = func(ctx context.Context, ev queue.TicketBookedEvent) error { return nil }
	return h, mock, db
}

func bookRequest(body string, asUser bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if asUser {
		c.Set("user_id", float64(42))
	}
	return c, rec
}

func TestBookRequiresAuthentication(t *testing.T) {
	h, _, db := newBookingTestHandler(t)
	defer db.Close()

	c, rec := bookRequest(`{"train_id":5,"coach_type":"Shovon","ticket_count":1}`, false)
	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestBookValidatesTicketCount(t *testing.T) {
	h, _, db := newBookingTestHandler(t)
	defer db.Close()

	for _, body := range []string{
		`{"train_id":5,"coach_type":"Shovon","ticket_count":0}`,
		`{"train_id":5,"coach_type":"Shovon","ticket_count":11}`,
		`{"train_id":5,"coach_type":"Shovon","ticket_count":-2}`,
	} {
		c, rec := bookRequest(body, true)
		if err := h.Book(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d for %s, want 400", rec.Code, body)
		}
	}
}

func TestBookMapsUnknownClassTo404(t *testing.T) {
	h, mock, db := newBookingTestHandler(t)
	defer db.Close()

	mock.ExpectQuery("FROM coaches").WithArgs(uint64(5), "Sleeper").
		WillReturnRows(mock.NewRows([]string{"id", "train_id", "coach_number", "coach_type", "total_seats"}))

	c, rec := bookRequest(`{"train_id":5,"coach_type":"Sleeper","ticket_count":1}`, true)
	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBookMapsShortfallTo400WithCounts(t *testing.T) {
	h, mock, db := newBookingTestHandler(t)
	defer db.Close()

	mock.ExpectQuery("FROM coaches").WithArgs(uint64(5), "Shovon").
		WillReturnRows(mock.NewRows([]string{"id", "train_id", "coach_number", "coach_type", "total_seats"}).
			AddRow(1, 5, "KA-1", "Shovon", 2))
	mock.ExpectQuery("FROM seats").WithArgs(uint64(1)).
		WillReturnRows(mock.NewRows([]string{"id", "coach_id", "seat_number", "seat_class"}).
			AddRow(11, 1, "A1", "").
			AddRow(12, 1, "A2", ""))
	mock.ExpectQuery("FROM booking_seats").WithArgs(uint64(1)).
		WillReturnRows(mock.NewRows([]string{"seat_id"}).AddRow(11))

	c, rec := bookRequest(`{"train_id":5,"coach_type":"Shovon","ticket_count":2}`, true)
	if err := h.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["available"] != float64(1) || body["requested"] != float64(2) {
		t.Fatalf("body = %v, want available=1 requested=2", body)
	}
}
