// file: internals/features/finance/cashbook/controller/mutasi_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/features/finance/cashbook/dto"
	"pesantrenku_backend/internals/features/finance/cashbook/model"
	helper "pesantrenku_backend/internals/helpers"
)

/* =========================================================
   Mutasi buku kas.
   Entri manual (operasional, gaji, dll) boleh CRUD;
   entri otomatis (ref kwitansi/top-up) hanya boleh dibaca —
   edit/hapus ditolak 409 supaya jejak setoran tetap utuh.
========================================================= */

type MutasiController struct {
	DB *gorm.DB
}

func NewMutasiController(db *gorm.DB) *MutasiController {
	return &MutasiController{DB: db}
}

/* =========================================================
   GET /api/a/buku-kas/:id/mutasi
   Filter: arah, kategori, dari/sampai (YYYY-MM-DD)
========================================================= */

func (ctrl *MutasiController) List(c *fiber.Ctx) error {
	kasID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku kas tidak valid")
	}
	p := helper.ParseFiber(c, "tanggal", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.BukuKasTransaksi{}).
		Where("buku_kas_transaksi_buku_kas_id = ?", kasID)

	if v := strings.TrimSpace(c.Query("arah")); v != "" {
		q = q.Where("buku_kas_transaksi_arah = ?", v)
	}
	if v := strings.TrimSpace(c.Query("kategori")); v != "" {
		q = q.Where("buku_kas_transaksi_kategori = ?", v)
	}
	if v := strings.TrimSpace(c.Query("dari")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "dari harus YYYY-MM-DD")
		}
		q = q.Where("buku_kas_transaksi_tanggal >= ?", t)
	}
	if v := strings.TrimSpace(c.Query("sampai")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "sampai harus YYYY-MM-DD")
		}
		q = q.Where("buku_kas_transaksi_tanggal <= ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mutasi")
	}

	var rows []model.BukuKasTransaksi
	if err := q.
		Order("buku_kas_transaksi_tanggal DESC, buku_kas_transaksi_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mutasi")
	}

	return helper.JsonList(c, "", dto.ToMutasiResponses(rows), p.Meta(total))
}

/* =========================================================
   POST /api/a/mutasi — entri manual
========================================================= */

func (ctrl *MutasiController) Create(c *fiber.Ctx) error {
	var body dto.MutasiCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	tanggal, _ := time.Parse("2006-01-02", body.Tanggal)

	petugasID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	petugasNama := helper.GetUserNameFromLocals(c)

	m := model.BukuKasTransaksi{
		BukuKasTransaksiBukuKasID:   body.BukuKasID,
		BukuKasTransaksiArah:        model.MutasiArah(body.Arah),
		BukuKasTransaksiJumlahIDR:   body.JumlahIDR,
		BukuKasTransaksiKategori:    body.Kategori,
		BukuKasTransaksiKeterangan:  body.Keterangan,
		BukuKasTransaksiTanggal:     tanggal,
		BukuKasTransaksiPetugasID:   &petugasID,
		BukuKasTransaksiPetugasNama: &petugasNama,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var kas model.BukuKas
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&kas, "buku_kas_id = ?", body.BukuKasID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "buku kas tidak ditemukan")
			}
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&model.BukuKas{}).
			Where("buku_kas_id = ?", kas.BukuKasID).
			Update("buku_kas_saldo_idr", gorm.Expr("buku_kas_saldo_idr + ?", m.Delta())).Error
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonCreated(c, "Mutasi dicatat", dto.ToMutasiResponse(&m))
}

/* =========================================================
   PATCH /api/a/mutasi/:id — hanya entri manual, hanya
   field non-nominal (kategori, keterangan, tanggal).
   Ubah nominal = hapus lalu catat ulang.
========================================================= */

func (ctrl *MutasiController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mutasi tidak valid")
	}

	var body dto.MutasiUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m model.BukuKasTransaksi
	if err := ctrl.DB.First(&m, "buku_kas_transaksi_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mutasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mutasi")
	}
	if m.IsOtomatis() {
		return helper.JsonError(c, fiber.StatusConflict, "Mutasi otomatis tidak bisa diubah")
	}

	if body.Kategori != nil {
		m.BukuKasTransaksiKategori = *body.Kategori
	}
	if body.Keterangan != nil {
		m.BukuKasTransaksiKeterangan = body.Keterangan
	}
	if body.Tanggal != nil {
		t, _ := time.Parse("2006-01-02", *body.Tanggal)
		m.BukuKasTransaksiTanggal = t
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mutasi")
	}
	return helper.JsonUpdated(c, "Mutasi diperbarui", dto.ToMutasiResponse(&m))
}

/* =========================================================
   DELETE /api/a/mutasi/:id — hanya entri manual;
   saldo dikoreksi balik dalam transaksi yang sama.
========================================================= */

func (ctrl *MutasiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mutasi tidak valid")
	}

	var m model.BukuKasTransaksi
	if err := ctrl.DB.First(&m, "buku_kas_transaksi_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mutasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mutasi")
	}
	if m.IsOtomatis() {
		return helper.JsonError(c, fiber.StatusConflict, "Mutasi otomatis tidak bisa dihapus")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var kas model.BukuKas
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&kas, "buku_kas_id = ?", m.BukuKasTransaksiBukuKasID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return tx.Model(&model.BukuKas{}).
			Where("buku_kas_id = ?", kas.BukuKasID).
			Update("buku_kas_saldo_idr", gorm.Expr("buku_kas_saldo_idr - ?", m.Delta())).Error
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonDeleted(c, "Mutasi dihapus", fiber.Map{"mutasi_id": id})
}
