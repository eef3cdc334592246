package database

import (
	"strings"
	"testing"
)

func tableDDL(t *testing.T, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, marker) {
			return stmt
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", table)
	return ""
}

func TestRefreshTokensTableMatchesTokenRepoColumns(t *testing.T) {
	ddl := tableDDL(t, "refresh_tokens")
	for _, col := range []string{"user_id", "token_hash", "expires_at", "revoked_at DATETIME NULL"} {
		if !strings.Contains(ddl, col) {
			t.Errorf("refresh_tokens DDL is missing %q:\n%s", col, ddl)
		}
	}
}

func TestBookingTablesDeclareLedgerColumns(t *testing.T) {
	bookings := tableDDL(t, "bookings")
	for _, col := range []string{"user_id", "schedule_id", "booking_date", "status"} {
		if !strings.Contains(bookings, col) {
			t.Errorf("bookings DDL is missing %q:\n%s", col, bookings)
		}
	}
	seats := tableDDL(t, "booking_seats")
	for _, col := range []string{"booking_id", "seat_id", "fare"} {
		if !strings.Contains(seats, col) {
			t.Errorf("booking_seats DDL is missing %q:\n%s", col, seats)
		}
	}
}
