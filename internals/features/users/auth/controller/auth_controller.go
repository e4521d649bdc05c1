package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"tahfizhku_backend/internals/configs"
	authDTO "tahfizhku_backend/internals/features/users/auth/dto"
	authService "tahfizhku_backend/internals/features/users/auth/service"
	userDTO "tahfizhku_backend/internals/features/users/user/dto"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	helper "tahfizhku_backend/internals/helpers"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB       *gorm.DB
	Service  *authService.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Service:  authService.NewAuthService(db),
		Validate: validator.New(),
	}
}

/* =========================
   POST /api/auth/register
   ========================= */

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	user := req.ToModel()
	if err := ctrl.Service.Register(c.Context(), user); err != nil {
		if errors.Is(err, authService.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromModel(user))
}

/* =========================
   POST /api/auth/login
   ========================= */

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	user, pair, err := ctrl.Service.Login(c.Context(), req.Email, req.Password, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, authService.ErrUserInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
		}
	}

	setAuthCookies(c, pair)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":   userDTO.FromModel(user),
		"tokens": pair,
	})
}

/* =========================
   POST /api/auth/login-google
   ========================= */

func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	user, pair, err := ctrl.Service.GoogleLogin(c.Context(), req.IDToken, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidGoogleToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, authService.ErrUserInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login dengan Google")
		}
	}

	setAuthCookies(c, pair)
	return helper.JsonOK(c, "Login Google berhasil", fiber.Map{
		"user":   userDTO.FromModel(user),
		"tokens": pair,
	})
}

/* =========================
   POST /api/auth/refresh-token
   ========================= */

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	_ = c.BodyParser(&req) // body opsional, fallback ke cookie

	token := strings.TrimSpace(req.RefreshToken)
	if token == "" {
		token = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	user, pair, err := ctrl.Service.Refresh(c.Context(), token, c.Get(fiber.HeaderUserAgent), c.IP())
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrRefreshTokenInvalid),
			errors.Is(err, authService.ErrRefreshTokenExpired),
			errors.Is(err, authService.ErrRefreshTokenRevoked):
			clearAuthCookies(c)
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, authService.ErrUserInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal refresh token")
		}
	}

	setAuthCookies(c, pair)
	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"user":   userDTO.FromModel(user),
		"tokens": pair,
	})
}

/* =========================
   POST /api/auth/logout
   ========================= */

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token := bearerOrCookieToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	// exp dibaca dari klaim supaya blacklist tahu kapan entry boleh dibersihkan
	exp := time.Now().Add(authService.AccessTokenTTL)
	parsed, _ := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}, jwt.WithoutClaimsValidation())
	if parsed != nil {
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["exp"].(float64); ok {
				exp = time.Unix(int64(v), 0)
			}
		}
	}

	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if err := ctrl.Service.Logout(c.Context(), token, exp, refresh); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* =========================
   GET /api/auth/me
   ========================= */

func (ctrl *AuthController) GetMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "OK", userDTO.FromModel(&user))
}

/* =========================
   POST /api/auth/change-password
   ========================= */

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if err := ctrl.Service.ChangePassword(c.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, authService.ErrOldPasswordMismatch) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Password berhasil diganti, silakan login ulang", nil)
}

/* =========================
   Cookie helpers
   ========================= */

func bearerOrCookieToken(c *fiber.Ctx) string {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		if tok := strings.TrimSpace(authz[7:]); tok != "" {
			return tok
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func setAuthCookies(c *fiber.Ctx, pair *authService.TokenPair) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		Expires:  pair.ExpiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Expires:  time.Now().Add(authService.RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/api/auth"})
}
