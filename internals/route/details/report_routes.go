// file: internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	reportController "pesantrenku_backend/internals/features/finance/reports/controller"
	"pesantrenku_backend/internals/helpers/cache"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB, reportCache *cache.Cache) {
	ctrl := reportController.NewReportController(db, reportCache)

	grp := r.Group("/laporan",
		authMiddleware.OnlyRoles(constants.RoleErrorFinance("laporan keuangan"), constants.FinanceRoles...),
	)
	grp.Get("/arus-kas", ctrl.ArusKas)
	grp.Get("/pemasukan", ctrl.Pemasukan)
	grp.Get("/tunggakan", ctrl.Tunggakan)
}
