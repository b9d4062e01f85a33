// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	userController "pesantrenku_backend/internals/features/users/controller"
	"pesantrenku_backend/internals/middlewares"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &userController.AuthController{DB: db}

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Get("/me",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		ctrl.Me,
	)
}
