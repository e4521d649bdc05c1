// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals yang dihydrate oleh AuthMiddleware
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// GetUserIDFromToken mengambil user_id dari locals (hasil AuthMiddleware).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(LocUserID)
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: token tidak valid")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid dalam token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak dikenali")
	}
}

// GetRoleFromToken mengambil role dari locals.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRoleFromToken(c) == RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return GetRoleFromToken(c) == RoleStudent }

func IsAdminOrTeacher(c *fiber.Ctx) bool {
	r := GetRoleFromToken(c)
	return r == RoleAdmin || r == RoleTeacher
}
