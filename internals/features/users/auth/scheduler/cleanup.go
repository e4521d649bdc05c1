package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"tahfizhku_backend/internals/features/users/auth/model"
)

const cleanupInterval = 24 * time.Hour

// blacklistTTLDays membaca TOKEN_BLACKLIST_TTL_DAYS (default 7 hari)
func blacklistTTLDays() int {
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 7
}

// StartTokenCleanupScheduler menyapu access token ter-blacklist dan refresh
// token kadaluarsa/tercabut yang sudah lewat TTL, sekali per 24 jam.
func StartTokenCleanupScheduler(db *gorm.DB) {
	ttl := time.Duration(blacklistTTLDays()) * 24 * time.Hour
	go func() {
		for {
			sweepStaleTokens(db, time.Now().Add(-ttl))
			time.Sleep(cleanupInterval)
		}
	}()
}

func sweepStaleTokens(db *gorm.DB, cutoff time.Time) {
	log.Println("[CLEANUP] Menyapu token lama...")

	// blacklist pakai soft delete untuk operasi normal; sweep ini
	// membersihkan barisnya beneran supaya tabel tidak membengkak
	res := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&model.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus blacklist: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d entri blacklist dihapus", res.RowsAffected)
	}

	res = db.
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&model.RefreshToken{})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d refresh token lama dihapus", res.RowsAffected)
	}
}
