// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

var (
	errNoToken       = errors.New("token tidak ditemukan")
	errTokenExpired  = errors.New("token sudah kadaluarsa")
	errNoExpiry      = errors.New("token tanpa klaim exp")
	errInvalidUserID = errors.New("user_id tidak valid")
)

// extractBearerToken mengambil token dari header Authorization (atau cookie access_token)
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		if tok := strings.TrimSpace(authz[7:]); tok != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errNoToken
}

// validateTokenExpiry memeriksa klaim exp dengan toleransi clock skew
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errNoExpiry
	}

	var exp time.Time
	switch v := expRaw.(type) {
	case float64:
		exp = time.Unix(int64(v), 0)
	case int64:
		exp = time.Unix(v, 0)
	default:
		return errNoExpiry
	}

	if time.Now().After(exp.Add(leeway)) {
		return errTokenExpired
	}
	return nil
}

// extractUserID mengambil klaim id/sub/user_id (urutan preferensi)
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub", "user_id"} {
		if s, ok := claims[key].(string); ok && strings.TrimSpace(s) != "" {
			id, err := uuid.Parse(strings.TrimSpace(s))
			if err != nil {
				return uuid.Nil, errInvalidUserID
			}
			return id, nil
		}
	}
	return uuid.Nil, errInvalidUserID
}

// storeBasicClaimsToLocals menyimpan role & user_name ke locals request
func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals(helperAuth.LocUserRole, strings.ToLower(strings.TrimSpace(role)))
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals(helperAuth.LocUserName, name)
	}
}
