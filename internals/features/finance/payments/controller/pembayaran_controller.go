// file: internals/features/finance/payments/controller/pembayaran_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/payments/dto"
	"pesantrenku_backend/internals/features/finance/payments/model"
	"pesantrenku_backend/internals/features/finance/payments/service"
	helper "pesantrenku_backend/internals/helpers"
)

type PembayaranController struct {
	DB *gorm.DB
}

func NewPembayaranController(db *gorm.DB) *PembayaranController {
	return &PembayaranController{DB: db}
}

/* =========================================================
   POST /api/u/pembayaran — rekonsiliasi tagihan terpilih
   Header X-Idempotency-Key opsional; key yang sama
   mengembalikan kwitansi yang sama (replay, bukan dobel).
========================================================= */

func (ctrl *PembayaranController) Bayar(c *fiber.Ctx) error {
	var body dto.BayarTagihanDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	petugasID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res, err := service.Reconcile(c.Context(), ctrl.DB, service.ReconcileInput{
		SantriID:       body.SantriID,
		TagihanIDs:     body.TagihanIDs,
		JumlahBayarIDR: body.JumlahBayarIDR,
		Metode:         body.Metode,
		Mode:           body.Mode,
		KembalianKe:    body.KembalianKe,
		IdempotencyKey: strings.TrimSpace(c.Get("X-Idempotency-Key")),
		PetugasID:      petugasID,
		PetugasNama:    helper.GetUserNameFromLocals(c),
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	resp := dto.ToBayarTagihanResponse(res)
	if res.Replayed {
		return helper.JsonOK(c, "Pembayaran sudah pernah diproses", resp)
	}
	return helper.JsonCreated(c, "Pembayaran berhasil", resp)
}

/* =========================================================
   GET /api/u/kwitansi — daftar kwitansi
   Filter: santri_id, metode, petugas_id, dari/sampai (YYYY-MM-DD)
========================================================= */

func (ctrl *PembayaranController) ListKwitansi(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.Kwitansi{})

	if v := strings.TrimSpace(c.Query("santri_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("kwitansi_santri_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("petugas_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "petugas_id tidak valid")
		}
		q = q.Where("kwitansi_petugas_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("metode")); v != "" {
		q = q.Where("kwitansi_metode = ?", v)
	}
	if v := strings.TrimSpace(c.Query("dari")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "dari harus YYYY-MM-DD")
		}
		q = q.Where("kwitansi_created_at >= ?", t)
	}
	if v := strings.TrimSpace(c.Query("sampai")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "sampai harus YYYY-MM-DD")
		}
		q = q.Where("kwitansi_created_at < ?", t.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kwitansi")
	}

	var rows []model.Kwitansi
	if err := q.
		Order("kwitansi_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kwitansi")
	}

	resp := make([]dto.KwitansiResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToKwitansiResponse(&rows[i], false))
	}
	return helper.JsonList(c, "", resp, p.Meta(total))
}

/* =========================================================
   GET /api/u/kwitansi/:id — detail + snapshot beku
   Menerima UUID atau nomor kwitansi (KW-...).
========================================================= */

func (ctrl *PembayaranController) DetailKwitansi(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var kw model.Kwitansi
	var err error
	if id, perr := uuid.Parse(raw); perr == nil {
		err = ctrl.DB.First(&kw, "kwitansi_id = ?", id).Error
	} else {
		err = ctrl.DB.First(&kw, "kwitansi_nomor = ?", raw).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kwitansi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kwitansi")
	}

	return helper.JsonOK(c, "OK", dto.ToKwitansiResponse(&kw, true))
}

/* =========================================================
   GET /api/u/santri/:id/pembayaran — riwayat pembayaran santri
========================================================= */

func (ctrl *PembayaranController) RiwayatSantri(c *fiber.Ctx) error {
	santriID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.Pembayaran{}).
		Where("pembayaran_santri_id = ?", santriID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var rows []model.Pembayaran
	if err := q.
		Order("pembayaran_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	return helper.JsonList(c, "", rows, p.Meta(total))
}
