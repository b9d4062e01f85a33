// file: internals/route/details/santri_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	santriController "pesantrenku_backend/internals/features/santri/controller"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// Semua petugas boleh mencari & melihat santri (alur kasir);
// mutasi data master santri khusus admin/bendahara.
func SantriUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &santriController.SantriController{DB: db}

	grp := r.Group("/santri")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
}

func SantriAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &santriController.SantriController{DB: db}

	grp := r.Group("/santri",
		authMiddleware.OnlyRoles(constants.RoleErrorFinance("data santri"), constants.FinanceRoles...),
	)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
