// file: internals/features/users/user/service/credit_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tahfizhku_backend/internals/features/users/user/model"
)

// CreditPool: pool kredit yang dipakai siswa (mengikuti tipe grup).
type CreditPool string

const (
	CreditPoolPrivate CreditPool = "private"
	CreditPoolPublic  CreditPool = "public"
)

var (
	ErrUnknownCreditPool   = errors.New("pool kredit tidak dikenal")
	ErrNegativeCreditDelta = errors.New("delta kredit tidak boleh negatif")
	ErrInsufficientCredits = errors.New("kredit tidak mencukupi")
	ErrUserNotFound        = errors.New("user tidak ditemukan")
)

// Column mengembalikan nama kolom saldo untuk pool ini.
func (p CreditPool) Column() string {
	switch p {
	case CreditPoolPrivate:
		return "private_credits"
	case CreditPoolPublic:
		return "public_credits"
	}
	return ""
}

// Valid memeriksa apakah pool dikenal.
func (p CreditPool) Valid() bool {
	return p == CreditPoolPrivate || p == CreditPoolPublic
}

// CreditBalance: snapshot saldo kedua pool.
type CreditBalance struct {
	Private int `json:"private"`
	Public  int `json:"public"`
}

// AddCredits menambah saldo pool user (grant admin). Delta harus >= 0.
func AddCredits(db *gorm.DB, userID uuid.UUID, pool CreditPool, delta int) (*CreditBalance, error) {
	if !pool.Valid() {
		return nil, ErrUnknownCreditPool
	}
	if delta < 0 {
		return nil, ErrNegativeCreditDelta
	}

	col := pool.Column()
	var bal CreditBalance
	res := db.Raw(
		`UPDATE users SET `+col+` = `+col+` + ?, updated_at = NOW()
		 WHERE id = ? AND deleted_at IS NULL
		 RETURNING private_credits AS private, public_credits AS public`,
		delta, userID,
	).Scan(&bal)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return &bal, nil
}

// DeductCreditAtomic memotong 1 kredit dari pool secara bersyarat:
// UPDATE ... WHERE saldo >= 1. RowsAffected == 0 berarti saldo habis
// (atau user hilang) — tidak ada window check-then-act.
func DeductCreditAtomic(tx *gorm.DB, userID uuid.UUID, pool CreditPool) (*CreditBalance, error) {
	if !pool.Valid() {
		return nil, ErrUnknownCreditPool
	}

	col := pool.Column()
	var bal CreditBalance
	res := tx.Raw(
		`UPDATE users SET `+col+` = `+col+` - 1, updated_at = NOW()
		 WHERE id = ? AND `+col+` >= 1 AND deleted_at IS NULL
		 RETURNING private_credits AS private, public_credits AS public`,
		userID,
	).Scan(&bal)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientCredits
	}
	return &bal, nil
}

// BalanceOf membaca saldo kedua pool milik user.
func BalanceOf(db *gorm.DB, userID uuid.UUID) (*CreditBalance, error) {
	var u userModel.UserModel
	if err := db.Select("private_credits", "public_credits").
		First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &CreditBalance{Private: u.PrivateCredits, Public: u.PublicCredits}, nil
}
