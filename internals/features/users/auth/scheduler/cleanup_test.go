package scheduler

import (
	"os"
	"testing"
)

func TestBlacklistTTLDays(t *testing.T) {
	tests := []struct {
		name   string
		envVal string
		want   int
	}{
		{"default 7 hari kalau env kosong", "", 7},
		{"env valid dipakai", "30", 30},
		{"env bukan angka jatuh ke default", "tiga", 7},
		{"env nol jatuh ke default", "0", 7},
		{"env negatif jatuh ke default", "-5", 7},
	}

	prev, had := os.LookupEnv("TOKEN_BLACKLIST_TTL_DAYS")
	defer func() {
		if had {
			os.Setenv("TOKEN_BLACKLIST_TTL_DAYS", prev)
		} else {
			os.Unsetenv("TOKEN_BLACKLIST_TTL_DAYS")
		}
	}()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal == "" {
				os.Unsetenv("TOKEN_BLACKLIST_TTL_DAYS")
			} else {
				os.Setenv("TOKEN_BLACKLIST_TTL_DAYS", tt.envVal)
			}

			if got := blacklistTTLDays(); got != tt.want {
				t.Errorf("blacklistTTLDays() = %d, want %d", got, tt.want)
			}
		})
	}
}
