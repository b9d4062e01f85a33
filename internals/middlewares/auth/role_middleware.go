package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "pesantrenku_backend/internals/helpers"
)

// OnlyRoles: guard role sederhana di atas AuthJWT.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": forbiddenMessage,
		})
	}
}
