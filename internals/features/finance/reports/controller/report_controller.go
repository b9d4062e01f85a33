// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/reports/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/cache"
)

// Laporan dihitung dari agregat DB dan dicache pendek di Redis;
// angka boleh telat maksimal cacheTTL dari transaksi terakhir.
const cacheTTL = 5 * time.Minute

type ReportController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

func NewReportController(db *gorm.DB, c *cache.Cache) *ReportController {
	return &ReportController{DB: db, Cache: c}
}

// cacheKey: path + query apa adanya, cukup unik per kombinasi filter.
func cacheKey(c *fiber.Ctx) string {
	return "laporan:" + c.Path() + "?" + string(c.Request().URI().QueryString())
}

// parsePeriode: default bulan berjalan bila dari/sampai kosong.
func parsePeriode(c *fiber.Ctx) (service.Periode, error) {
	now := time.Now()
	p := service.Periode{
		Dari:   time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		Sampai: now,
	}
	if v := strings.TrimSpace(c.Query("dari")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fiber.NewError(fiber.StatusBadRequest, "dari harus YYYY-MM-DD")
		}
		p.Dari = t
	}
	if v := strings.TrimSpace(c.Query("sampai")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return p, fiber.NewError(fiber.StatusBadRequest, "sampai harus YYYY-MM-DD")
		}
		p.Sampai = t
	}
	if p.Sampai.Before(p.Dari) {
		return p, fiber.NewError(fiber.StatusBadRequest, "sampai tidak boleh sebelum dari")
	}
	return p, nil
}

/* =========================================================
   GET /api/a/laporan/arus-kas?dari=&sampai=
========================================================= */

func (ctrl *ReportController) ArusKas(c *fiber.Ctx) error {
	p, err := parsePeriode(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := cache.GetOrSet(ctrl.Cache, c.Context(), cacheKey(c), cacheTTL,
		func() (service.LaporanArusKas, error) {
			return service.ArusKas(c.Context(), ctrl.DB, p)
		})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan arus kas")
	}
	return helper.JsonOK(c, "OK", data)
}

/* =========================================================
   GET /api/a/laporan/pemasukan?dari=&sampai=
========================================================= */

func (ctrl *ReportController) Pemasukan(c *fiber.Ctx) error {
	p, err := parsePeriode(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	data, err := cache.GetOrSet(ctrl.Cache, c.Context(), cacheKey(c), cacheTTL,
		func() (service.LaporanPemasukan, error) {
			return service.Pemasukan(c.Context(), ctrl.DB, p)
		})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan pemasukan")
	}
	return helper.JsonOK(c, "OK", data)
}

/* =========================================================
   GET /api/a/laporan/tunggakan?kelas=
========================================================= */

func (ctrl *ReportController) Tunggakan(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	jenisKode := strings.TrimSpace(c.Query("jenis"))

	data, err := cache.GetOrSet(ctrl.Cache, c.Context(), cacheKey(c), cacheTTL,
		func() (service.LaporanTunggakan, error) {
			return service.Tunggakan(c.Context(), ctrl.DB, kelas, jenisKode)
		})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan tunggakan")
	}
	return helper.JsonOK(c, "OK", data)
}
