// file: internals/helpers/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals yang dihydrate middleware AuthJWT.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocRole     = "role"
)

// GetUserIDFromLocals mengambil identitas petugas dari context (hasil AuthJWT).
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

func GetUserNameFromLocals(c *fiber.Ctx) string {
	s, _ := c.Locals(LocUserName).(string)
	return s
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRole).(string)
	return s
}

// ParseUUIDParam: helper umum parse :id path param.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
