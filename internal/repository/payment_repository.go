package repository

import (
	"context"
	"database/sql"

	"github.com/railtikit/rail-booking/internal/model"
)

// PaymentRepo manages payment rows attached to bookings.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a new PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create records a payment against a booking and fills in the generated
// ID and payment date.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	const q = `INSERT INTO payments (booking_id, amount, status) VALUES (?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, p.BookingID, p.Amount, p.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	const sel = `SELECT payment_date FROM payments WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, p.ID).Scan(&p.PaymentDate)
}

// ListByBooking returns all payments recorded for a booking, oldest
// first. An empty slice means nothing has been paid yet.
func (r *PaymentRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]model.Payment, error) {
	const q = `SELECT id, booking_id, amount, payment_date, status
	           FROM payments WHERE booking_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.PaymentDate, &p.Status); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
