package service

import (
	"context"
	"crypto/hmac"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfizhku_backend/internals/configs"
	authModel "tahfizhku_backend/internals/features/users/auth/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
)

var (
	ErrEmailTaken          = errors.New("email sudah terdaftar")
	ErrInvalidCredentials  = errors.New("email atau password salah")
	ErrUserInactive        = errors.New("akun dinonaktifkan")
	ErrInvalidGoogleToken  = errors.New("google id_token tidak valid")
	ErrRefreshTokenInvalid = errors.New("refresh token tidak valid")
	ErrRefreshTokenExpired = errors.New("refresh token sudah kadaluarsa")
	ErrRefreshTokenRevoked = errors.New("refresh token sudah dicabut")
	ErrOldPasswordMismatch = errors.New("password lama salah")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

/* =========================
   REGISTER & LOGIN
   ========================= */

// Register membuat user student baru. Email unik (case-insensitive, sudah
// dinormalkan di DTO).
func (s *AuthService) Register(ctx context.Context, user *userModel.UserModel) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hashed, err := HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.SetDefaultValues()

	return s.DB.WithContext(ctx).Create(user).Error
}

// Login memverifikasi kredensial lalu menerbitkan access + refresh token.
func (s *AuthService) Login(ctx context.Context, email, password, userAgent, ip string) (*userModel.UserModel, *TokenPair, error) {
	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !ComparePassword(user.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrUserInactive
	}

	pair, err := s.issueTokens(ctx, &user, userAgent, ip)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

// GoogleLogin memverifikasi id_token Google lalu login / auto-register.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken, userAgent, ip string) (*userModel.UserModel, *TokenPair, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, nil, ErrInvalidGoogleToken
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, nil, ErrInvalidGoogleToken
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = s.DB.WithContext(ctx).
		Where("google_id = ? OR email = ?", googleID, email).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// auto-register sebagai student terverifikasi (email dijamin Google)
		user = userModel.UserModel{
			UserName:   claimSet.Name,
			Email:      email,
			Password:   uuid.NewString(), // placeholder, tidak bisa dipakai login password
			Role:       userModel.RoleStudent,
			GoogleID:   &googleID,
			IsVerified: true,
			IsActive:   true,
		}
		hashed, herr := HashPassword(user.Password)
		if herr != nil {
			return nil, nil, herr
		}
		user.Password = hashed
		if cerr := s.DB.WithContext(ctx).Create(&user).Error; cerr != nil {
			return nil, nil, cerr
		}
	case err != nil:
		return nil, nil, err
	default:
		if !user.IsActive {
			return nil, nil, ErrUserInactive
		}
		if user.GoogleID == nil {
			// tautkan akun lama dengan google id
			if uerr := s.DB.WithContext(ctx).Model(&user).
				Update("google_id", googleID).Error; uerr != nil {
				return nil, nil, uerr
			}
			user.GoogleID = &googleID
		}
	}

	pair, err := s.issueTokens(ctx, &user, userAgent, ip)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

/* =========================
   REFRESH & LOGOUT
   ========================= */

// Refresh melakukan rotasi: token lama dicabut, token baru diterbitkan.
// Reuse token yang sudah dicabut = indikasi pencurian → semua sesi user dicabut.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, userAgent, ip string) (*userModel.UserModel, *TokenPair, error) {
	hash := ComputeRefreshHash(refreshToken)

	var stored authModel.RefreshToken
	if err := s.DB.WithContext(ctx).First(&stored, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRefreshTokenInvalid
		}
		return nil, nil, err
	}

	if !hmac.Equal(stored.TokenHash, hash) {
		return nil, nil, ErrRefreshTokenInvalid
	}
	if stored.RevokedAt != nil {
		// token lama dipakai ulang — cabut semua refresh token user ini
		now := time.Now()
		s.DB.WithContext(ctx).Model(&authModel.RefreshToken{}).
			Where("user_id = ? AND revoked_at IS NULL", stored.UserID).
			Update("revoked_at", now)
		return nil, nil, ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, nil, ErrRefreshTokenExpired
	}

	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, nil, ErrRefreshTokenInvalid
	}
	if !user.IsActive {
		return nil, nil, ErrUserInactive
	}

	var pair *TokenPair
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&stored).Update("revoked_at", now).Error; err != nil {
			return err
		}
		p, err := s.issueTokensTx(tx, &user, userAgent, ip)
		if err != nil {
			return err
		}
		pair = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

// Logout memasukkan access token ke blacklist dan mencabut refresh token aktif.
func (s *AuthService) Logout(ctx context.Context, accessToken string, accessExp time.Time, refreshToken string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := authModel.TokenBlacklist{
			Token:     accessToken,
			ExpiredAt: accessExp,
		}
		if err := tx.Where("token = ?", accessToken).
			FirstOrCreate(&entry).Error; err != nil {
			return err
		}

		if refreshToken != "" {
			hash := ComputeRefreshHash(refreshToken)
			now := time.Now()
			if err := tx.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", hash).
				Update("revoked_at", now).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ChangePassword mengganti password setelah verifikasi password lama,
// lalu mencabut semua refresh token (sesi lain wajib login ulang).
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if !ComparePassword(user.Password, oldPassword) {
		return ErrOldPasswordMismatch
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", hashed).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&authModel.RefreshToken{}).
			Where("user_id = ? AND revoked_at IS NULL", userID).
			Update("revoked_at", now).Error
	})
}

/* =========================
   Internal
   ========================= */

func (s *AuthService) issueTokens(ctx context.Context, user *userModel.UserModel, userAgent, ip string) (*TokenPair, error) {
	return s.issueTokensTx(s.DB.WithContext(ctx), user, userAgent, ip)
}

func (s *AuthService) issueTokensTx(tx *gorm.DB, user *userModel.UserModel, userAgent, ip string) (*TokenPair, error) {
	access, exp, err := GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	record := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(refresh),
		ExpiresAt: time.Now().Add(RefreshTokenTTL),
	}
	if userAgent != "" {
		record.UserAgent = &userAgent
	}
	if ip != "" {
		record.IP = &ip
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    exp,
	}, nil
}
