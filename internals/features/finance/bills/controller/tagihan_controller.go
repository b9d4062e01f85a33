// file: internals/features/finance/bills/controller/tagihan_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	kindModel "pesantrenku_backend/internals/features/finance/billing_kinds/model"
	"pesantrenku_backend/internals/features/finance/bills/dto"
	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type TagihanController struct {
	DB *gorm.DB
}

func buildTagihanOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at":  "tagihan_created_at",
		"jatuh_tempo": "tagihan_jatuh_tempo",
		"nominal":     "tagihan_nominal_idr",
		"sisa":        "tagihan_sisa_idr",
		"status":      "tagihan_status",
	}
	col, ok := allowed[strings.ToLower(p.SortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.ToLower(p.SortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}

// -----------------------------------------
// List (GET /tagihan)
// Query filters (opsional):
// - santri_id, jenis_id, status, bulan, tahun
// - due: today|week|overdue  (tab jatuh-tempo di admin web)
// - q: nama/NIS santri
// - sort_by (created_at|jatuh_tempo|nominal|sisa|status), order, page, per_page
// -----------------------------------------
func (h *TagihanController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "jatuh_tempo", "asc", helper.DefaultOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&tagihanModel.Tagihan{}).
		Where("tagihan_deleted_at IS NULL")

	if v := c.Query("santri_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("tagihan_santri_id = ?", id)
		}
	}
	if v := c.Query("jenis_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("tagihan_jenis_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		// belum_bayar|sebagian|lunas
		q = q.Where("tagihan_status = ?", v)
	}
	if v := c.QueryInt("bulan"); v >= 1 && v <= 12 {
		q = q.Where("tagihan_bulan = ?", v)
	}
	if v := c.QueryInt("tahun"); v > 0 {
		q = q.Where("tagihan_tahun = ?", v)
	}

	// tab jatuh tempo
	today := time.Now().Truncate(24 * time.Hour)
	switch strings.ToLower(c.Query("due")) {
	case "today":
		q = q.Where("tagihan_jatuh_tempo = ? AND tagihan_sisa_idr > 0", today)
	case "week":
		q = q.Where("tagihan_jatuh_tempo BETWEEN ? AND ? AND tagihan_sisa_idr > 0", today, today.AddDate(0, 0, 7))
	case "overdue":
		q = q.Where("tagihan_jatuh_tempo < ? AND tagihan_sisa_idr > 0", today)
	}

	// search nama/NIS santri (join)
	joined := false
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Joins("JOIN santri ON santri.santri_id = tagihan.tagihan_santri_id").
			Where("santri.santri_nama ILIKE ? OR santri.santri_nis LIKE ?", "%"+v+"%", v+"%")
		joined = true
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []tagihanModel.Tagihan
	sel := q.Order(buildTagihanOrderClause(p)).Limit(p.Limit()).Offset(p.Offset())
	if joined {
		sel = sel.Select("tagihan.*")
	}
	if err := sel.Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToTagihanResponses(list), p.Meta(total))
}

// -----------------------------------------
// Detail (GET /tagihan/:id) — termasuk riwayat pembayaran
// -----------------------------------------
func (h *TagihanController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m tagihanModel.Tagihan
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// riwayat pembayaran (immutable rows) — tanpa import model pembayaran
	type riwayatRow struct {
		PembayaranID         uuid.UUID `gorm:"column:pembayaran_id" json:"pembayaran_id"`
		PembayaranJumlahIDR  int       `gorm:"column:pembayaran_jumlah_idr" json:"pembayaran_jumlah_idr"`
		PembayaranMetode     string    `gorm:"column:pembayaran_metode" json:"pembayaran_metode"`
		PembayaranCreatedAt  time.Time `gorm:"column:pembayaran_created_at" json:"pembayaran_created_at"`
		PembayaranKwitansiID uuid.UUID `gorm:"column:pembayaran_kwitansi_id" json:"pembayaran_kwitansi_id"`
	}
	var riwayat []riwayatRow
	if err := h.DB.WithContext(c.UserContext()).
		Table("pembayaran").
		Select("pembayaran_id, pembayaran_jumlah_idr, pembayaran_metode, pembayaran_created_at, pembayaran_kwitansi_id").
		Where("pembayaran_tagihan_id = ?", id).
		Order("pembayaran_created_at ASC").
		Find(&riwayat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"tagihan": dto.ToTagihanResponse(m),
		"riwayat": riwayat,
	})
}

// -----------------------------------------
// Generate (POST /tagihan/generate)
// Satu tagihan per santri aktif (atau subset santri_ids) untuk
// (jenis, bulan, tahun). Nominal disnapshot dari jenis saat ini.
// Pasangan yang sudah ada dilewati lewat ON CONFLICT DO NOTHING.
// -----------------------------------------
func (h *TagihanController) Generate(c *fiber.Ctx) error {
	var in dto.TagihanGenerateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var jenis kindModel.JenisTagihan
	if err := h.DB.WithContext(c.UserContext()).
		First(&jenis, "jenis_tagihan_id = ? AND jenis_tagihan_is_active = TRUE", in.JenisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "jenis tagihan tidak ditemukan / nonaktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// ambil target santri
	sq := h.DB.WithContext(c.UserContext()).Model(&santriModel.Santri{}).
		Where("santri_is_active = TRUE")
	if len(in.SantriIDs) > 0 {
		sq = sq.Where("santri_id IN ?", in.SantriIDs)
	}
	var santriIDs []uuid.UUID
	if err := sq.Pluck("santri_id", &santriIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(santriIDs) == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "tidak ada santri target")
	}

	rows := make([]tagihanModel.Tagihan, 0, len(santriIDs))
	for _, sid := range santriIDs {
		rows = append(rows, tagihanModel.Tagihan{
			TagihanSantriID:          sid,
			TagihanJenisID:           jenis.JenisTagihanID,
			TagihanJenisKodeSnapshot: jenis.JenisTagihanKode,
			TagihanJenisNamaSnapshot: jenis.JenisTagihanNama,
			TagihanBulan:             in.Bulan,
			TagihanTahun:             in.Tahun,
			TagihanNominalIDR:        jenis.JenisTagihanNominalIDR,
			TagihanSisaIDR:           jenis.JenisTagihanNominalIDR,
			TagihanJatuhTempo:        in.JatuhTempo,
			TagihanStatus:            tagihanModel.TagihanStatusBelumBayar,
		})
	}

	res := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	dibuat := int(res.RowsAffected)
	return helper.JsonCreated(c, "tagihan digenerate", dto.TagihanGenerateResult{
		Dibuat:   dibuat,
		Dilewati: len(rows) - dibuat,
	})
}
