package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTokenRepoTest(t *testing.T) (*TokenRepo, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return NewTokenRepo(db), mock, func() { db.Close() }
}

func refreshRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows([]string{"user_id", "expires_at", "revoked_at"})
}

func TestValidateRefreshAcceptsActiveToken(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	future := time.Now().UTC().Add(time.Hour)
	mock.ExpectQuery("FROM refresh_tokens").WithArgs("hash-1").
		WillReturnRows(refreshRows(mock).AddRow(42, future, nil))

	uid, err := repo.ValidateRefresh(context.Background(), "hash-1")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if uid != 42 {
		t.Fatalf("user id = %d, want 42", uid)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidateRefreshRejectsRevokedToken(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	future := time.Now().UTC().Add(time.Hour)
	revoked := time.Now().UTC().Add(-time.Minute)
	mock.ExpectQuery("FROM refresh_tokens").WithArgs("hash-1").
		WillReturnRows(refreshRows(mock).AddRow(42, future, revoked))

	if _, err := repo.ValidateRefresh(context.Background(), "hash-1"); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("expected ErrRefreshInvalid for revoked token, got %v", err)
	}
}

func TestValidateRefreshRejectsExpiredToken(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	past := time.Now().UTC().Add(-time.Hour)
	mock.ExpectQuery("FROM refresh_tokens").WithArgs("hash-1").
		WillReturnRows(refreshRows(mock).AddRow(42, past, nil))

	if _, err := repo.ValidateRefresh(context.Background(), "hash-1"); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("expected ErrRefreshInvalid for expired token, got %v", err)
	}
}

func TestValidateRefreshRejectsUnknownHash(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	mock.ExpectQuery("FROM refresh_tokens").WithArgs("nope").
		WillReturnRows(refreshRows(mock))

	if _, err := repo.ValidateRefresh(context.Background(), "nope"); !errors.Is(err, ErrRefreshInvalid) {
		t.Fatalf("expected ErrRefreshInvalid for unknown hash, got %v", err)
	}
}

func TestRevokeByHashStampsRevokedAt(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").WithArgs("hash-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RevokeByHash(context.Background(), "hash-1"); err != nil {
		t.Fatalf("revoke error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRevokeAllForUserTouchesOnlyActiveRows(t *testing.T) {
	repo, mock, done := newTokenRepoTest(t)
	defer done()

	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at").WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.RevokeAllForUser(context.Background(), uint64(42)); err != nil {
		t.Fatalf("revoke all error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
