package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/railtikit/rail-booking/internal/model"
	"github.com/railtikit/rail-booking/internal/utils"
)

// UserRepo provides access to the users table and the account deletion
// cascade across bookings, booking_seats and payments.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// ErrEmailExists is returned when registration or a profile update would
// reuse an email already attached to a different account.
var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID. The password is hashed with
// bcrypt before it touches the database.
func (r *UserRepo) Create(ctx context.Context, name, email, phone, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, password_hash, role) VALUES (?,?,?,?,?)",
		name, email, phone, hash, role)
	if err != nil {
		// MySQL duplicate-key error code appears in the message.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,phone,password_hash,role,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,phone,password_hash,role,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UpdateProfile changes name, email and phone for a user. It returns
// ErrEmailExists when the new email belongs to another account.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, email, phone string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	var takenBy uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE email=? LIMIT 1", email).Scan(&takenBy)
	switch {
	case err == nil && takenBy != id:
		return ErrEmailExists
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, email=?, phone=?, updated_at=NOW() WHERE id=?",
		name, email, phone, id)
	return err
}

// DeleteCascadeTx removes a user and everything the account owns:
// payments and booking_seats for each of the user's bookings, then the
// bookings themselves, any refresh tokens, and finally the user row.
// Runs inside the caller's transaction so a failure leaves the account
// untouched.
func (r *UserRepo) DeleteCascadeTx(ctx context.Context, tx *sql.Tx, userID uint64) error {
	const delPayments = `DELETE p FROM payments p
	                     JOIN bookings b ON b.id = p.booking_id
	                     WHERE b.user_id = ?`
	if _, err := tx.ExecContext(ctx, delPayments, userID); err != nil {
		return err
	}
	const delSeats = `DELETE bs FROM booking_seats bs
	                  JOIN bookings b ON b.id = bs.booking_id
	                  WHERE b.user_id = ?`
	if _, err := tx.ExecContext(ctx, delSeats, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE user_id = ?`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}
