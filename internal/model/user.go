package model

import "time"

// User is an account holder on the booking platform. The password is
// stored only as a bcrypt hash. Role distinguishes regular customers
// from administrative accounts.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email (unique)
	Phone        string    // users.phone (unique)
	PasswordHash string    // users.password_hash
	Role         string    // users.role (customer, admin)
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
