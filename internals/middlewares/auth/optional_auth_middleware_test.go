package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"tahfizhku_backend/internals/configs"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("gagal sign token: %v", err)
	}
	return signed
}

// Endpoint publik dengan optional auth harus tetap bisa diakses tanpa token,
// dan locals user_id harus terisi kalau request membawa bearer token valid.
func TestOptionalAuthMiddleware(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "rahasia-unit-test"
	defer func() { configs.JWTSecret = prev }()

	userID := uuid.New()
	validToken := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"id":        userID.String(),
		"user_name": "budi",
		"role":      "student",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(15 * time.Minute).Unix(),
	})
	expiredToken := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(-1 * time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		authHeader string
		wantUserID string
	}{
		{"tanpa token tetap lolos sebagai anonim", "", ""},
		{"token valid mengisi user_id", "Bearer " + validToken, userID.String()},
		{"token rusak diabaikan", "Bearer bukan.token.jwt", ""},
		{"token kadaluarsa diabaikan", "Bearer " + expiredToken, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()

			var gotUserID string
			app.Post("/register", OptionalAuthMiddleware(), func(c *fiber.Ctx) error {
				if v, ok := c.Locals(helperAuth.LocUserID).(string); ok {
					gotUserID = v
				}
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(fiber.MethodPost, "/register", nil)
			if tt.authHeader != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, harusnya request selalu diteruskan", resp.StatusCode)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("user_id di locals = %q, want %q", gotUserID, tt.wantUserID)
			}
		})
	}
}
