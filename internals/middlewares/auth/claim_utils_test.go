package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestValidateTokenExpiry(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		leeway  time.Duration
		wantErr error
	}{
		{
			"masih berlaku",
			jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())},
			0,
			nil,
		},
		{
			"sudah lewat",
			jwt.MapClaims{"exp": float64(time.Now().Add(-time.Hour).Unix())},
			0,
			errTokenExpired,
		},
		{
			"lewat tapi masih dalam leeway",
			jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())},
			30 * time.Second,
			nil,
		},
		{
			"tanpa klaim exp",
			jwt.MapClaims{},
			0,
			errNoExpiry,
		},
		{
			"exp bukan angka",
			jwt.MapClaims{"exp": "besok"},
			0,
			errNoExpiry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTokenExpiry(tt.claims, tt.leeway)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	t.Run("klaim id diutamakan", func(t *testing.T) {
		got, err := extractUserID(jwt.MapClaims{"id": id.String(), "sub": uuid.NewString()})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got != id {
			t.Errorf("got %s, want %s", got, id)
		}
	})

	t.Run("fallback ke sub", func(t *testing.T) {
		got, err := extractUserID(jwt.MapClaims{"sub": id.String()})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got != id {
			t.Errorf("got %s, want %s", got, id)
		}
	})

	t.Run("fallback ke user_id", func(t *testing.T) {
		got, err := extractUserID(jwt.MapClaims{"user_id": id.String()})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got != id {
			t.Errorf("got %s, want %s", got, id)
		}
	})

	t.Run("uuid rusak", func(t *testing.T) {
		if _, err := extractUserID(jwt.MapClaims{"id": "bukan-uuid"}); !errors.Is(err, errInvalidUserID) {
			t.Errorf("err = %v, want errInvalidUserID", err)
		}
	})

	t.Run("tanpa klaim identitas", func(t *testing.T) {
		if _, err := extractUserID(jwt.MapClaims{}); !errors.Is(err, errInvalidUserID) {
			t.Errorf("err = %v, want errInvalidUserID", err)
		}
	})
}
