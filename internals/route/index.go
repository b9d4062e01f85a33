// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
	routeDetails "pesantrenku_backend/internals/route/details"

	"pesantrenku_backend/internals/helpers/cache"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, reportCache *cache.Cache) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// webhook Midtrans: tanpa JWT, diverifikasi signature
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.WebhookRoutes(public, db)

	// ===================== PRIVATE (SEMUA PETUGAS) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== ADMIN (ADMIN + BENDAHARA) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Santri routes...")
	routeDetails.SantriUserRoutes(private, db)
	routeDetails.SantriAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceUserRoutes(private, db)
	routeDetails.FinanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report routes...")
	routeDetails.ReportAdminRoutes(admin, db, reportCache)
}
