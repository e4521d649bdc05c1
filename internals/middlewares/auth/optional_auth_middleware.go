// internals/middlewares/auth/optional_auth_middleware.go
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"tahfizhku_backend/internals/configs"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

// OptionalAuthMiddleware mengisi locals dari token kalau request membawanya.
// Dipakai endpoint publik yang perilakunya berbeda untuk user login
// (misal pendaftaran kursus yang otomatis tertaut ke akun). Request tanpa
// token, atau dengan token rusak/kadaluarsa, tetap lanjut sebagai anonim.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return c.Next()
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}

		c.Locals(helperAuth.LocUserID, userID.String())
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
