package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements creates the rail schema. Statements are ordered so
// foreign keys always reference tables created earlier; all are
// idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(120) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'user',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS stations (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		station_name VARCHAR(120) NOT NULL UNIQUE,
		location VARCHAR(255) NOT NULL DEFAULT ''
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS trains (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		train_name VARCHAR(120) NOT NULL,
		train_type VARCHAR(32) NOT NULL DEFAULT 'express',
		total_coaches INT UNSIGNED NOT NULL DEFAULT 0
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS coaches (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		train_id BIGINT UNSIGNED NOT NULL,
		coach_number VARCHAR(16) NOT NULL,
		coach_type VARCHAR(32) NOT NULL,
		total_seats INT UNSIGNED NOT NULL DEFAULT 0,
		FOREIGN KEY (train_id) REFERENCES trains(id),
		INDEX idx_coaches_train_type (train_id, coach_type)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS seats (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		coach_id BIGINT UNSIGNED NOT NULL,
		seat_number VARCHAR(16) NOT NULL,
		seat_class VARCHAR(32) NOT NULL DEFAULT '',
		FOREIGN KEY (coach_id) REFERENCES coaches(id),
		UNIQUE KEY uq_seats_coach_number (coach_id, seat_number)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS routes (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		train_id BIGINT UNSIGNED NOT NULL,
		source_station_id BIGINT UNSIGNED NOT NULL,
		destination_station_id BIGINT UNSIGNED NOT NULL,
		distance_km DOUBLE NOT NULL DEFAULT 0,
		FOREIGN KEY (train_id) REFERENCES trains(id),
		FOREIGN KEY (source_station_id) REFERENCES stations(id),
		FOREIGN KEY (destination_station_id) REFERENCES stations(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS route_stations (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		train_id BIGINT UNSIGNED NOT NULL,
		station_id BIGINT UNSIGNED NOT NULL,
		sequence_number INT UNSIGNED NULL,
		arrival_offset_minutes INT NULL,
		departure_offset_minutes INT NULL,
		halt_minutes INT UNSIGNED NOT NULL DEFAULT 0,
		FOREIGN KEY (train_id) REFERENCES trains(id),
		FOREIGN KEY (station_id) REFERENCES stations(id),
		INDEX idx_route_stations_train (train_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		train_id BIGINT UNSIGNED NOT NULL,
		route_id BIGINT UNSIGNED NOT NULL,
		departure_time VARCHAR(8) NOT NULL DEFAULT '',
		arrival_time VARCHAR(8) NOT NULL DEFAULT '',
		FOREIGN KEY (train_id) REFERENCES trains(id),
		FOREIGN KEY (route_id) REFERENCES routes(id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		schedule_id BIGINT UNSIGNED NOT NULL DEFAULT 0,
		booking_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(16) NOT NULL DEFAULT 'confirmed',
		FOREIGN KEY (user_id) REFERENCES users(id),
		INDEX idx_bookings_user (user_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS booking_seats (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		booking_id BIGINT UNSIGNED NOT NULL,
		seat_id BIGINT UNSIGNED NOT NULL,
		fare DECIMAL(10,2) NOT NULL DEFAULT 0,
		FOREIGN KEY (booking_id) REFERENCES bookings(id),
		FOREIGN KEY (seat_id) REFERENCES seats(id),
		INDEX idx_booking_seats_seat (seat_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS payments (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		booking_id BIGINT UNSIGNED NOT NULL,
		amount DECIMAL(10,2) NOT NULL DEFAULT 0,
		payment_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(16) NOT NULL DEFAULT 'paid',
		FOREIGN KEY (booking_id) REFERENCES bookings(id),
		INDEX idx_payments_booking (booking_id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates any missing tables. Safe to run on every start;
// existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
