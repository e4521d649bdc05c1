package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreditPoolColumn(t *testing.T) {
	tests := []struct {
		pool CreditPool
		want string
	}{
		{CreditPoolPrivate, "private_credits"},
		{CreditPoolPublic, "public_credits"},
		{CreditPool("other"), ""},
		{CreditPool(""), ""},
	}

	for _, tt := range tests {
		if got := tt.pool.Column(); got != tt.want {
			t.Errorf("Column(%q) = %q, want %q", tt.pool, got, tt.want)
		}
	}
}

func TestCreditPoolValid(t *testing.T) {
	if !CreditPoolPrivate.Valid() || !CreditPoolPublic.Valid() {
		t.Error("private & public harus valid")
	}
	if CreditPool("gold").Valid() || CreditPool("").Valid() {
		t.Error("pool tidak dikenal harus invalid")
	}
}

// validasi input ditolak sebelum menyentuh database
func TestAddCreditsInputValidation(t *testing.T) {
	if _, err := AddCredits(nil, uuid.New(), CreditPool("gold"), 1); !errors.Is(err, ErrUnknownCreditPool) {
		t.Errorf("pool tidak dikenal: err = %v, want ErrUnknownCreditPool", err)
	}
	if _, err := AddCredits(nil, uuid.New(), CreditPoolPrivate, -1); !errors.Is(err, ErrNegativeCreditDelta) {
		t.Errorf("delta negatif: err = %v, want ErrNegativeCreditDelta", err)
	}
}

func TestDeductCreditAtomicInputValidation(t *testing.T) {
	if _, err := DeductCreditAtomic(nil, uuid.New(), CreditPool("")); !errors.Is(err, ErrUnknownCreditPool) {
		t.Errorf("pool kosong: err = %v, want ErrUnknownCreditPool", err)
	}
}
