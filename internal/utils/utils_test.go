package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestClockFromOffset(t *testing.T) {
	cases := []struct {
		offset int32
		want   string
	}{
		{0, "08:00"},
		{30, "08:30"},
		{125, "10:05"},
		{16 * 60, "00:00"},
		{17*60 + 45, "01:45"},
	}
	for _, tc := range cases {
		if got := ClockFromOffset(tc.offset); got != tc.want {
			t.Errorf("ClockFromOffset(%d) = %s, want %s", tc.offset, got, tc.want)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenCarriesClaims(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "user", 15)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse error: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if claims["role"] != "user" {
		t.Errorf("role = %v, want user", claims["role"])
	}
}

func TestRefreshTokenHashStable(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96 hex chars", len(rt.Raw))
	}
	if HashRefreshRaw(rt.Raw) != HashRefreshRaw(rt.Raw) {
		t.Fatal("hash is not deterministic")
	}
	other, _ := NewRefreshToken(7)
	if HashRefreshRaw(rt.Raw) == HashRefreshRaw(other.Raw) {
		t.Fatal("distinct tokens share a hash")
	}
}
