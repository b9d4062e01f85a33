// file: internals/features/finance/cashbook/controller/buku_kas_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/cashbook/dto"
	"pesantrenku_backend/internals/features/finance/cashbook/model"
	helper "pesantrenku_backend/internals/helpers"
)

type BukuKasController struct {
	DB *gorm.DB
}

func NewBukuKasController(db *gorm.DB) *BukuKasController {
	return &BukuKasController{DB: db}
}

/* =========================================================
   GET /api/a/buku-kas — semua akun + saldo
========================================================= */

func (ctrl *BukuKasController) List(c *fiber.Ctx) error {
	var rows []model.BukuKas
	if err := ctrl.DB.
		Order("buku_kas_tipe ASC, buku_kas_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku kas")
	}
	return helper.JsonOK(c, "OK", dto.ToBukuKasResponses(rows))
}

/* =========================================================
   POST /api/a/buku-kas
========================================================= */

func (ctrl *BukuKasController) Create(c *fiber.Ctx) error {
	var body dto.BukuKasCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if body.Tipe == string(model.BukuKasTipeBank) && body.RekeningID == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "buku kas bank wajib punya rekening_id")
	}

	m := model.BukuKas{
		BukuKasNama:       body.Nama,
		BukuKasTipe:       model.BukuKasTipe(body.Tipe),
		BukuKasIsDefault:  body.IsDefault,
		BukuKasRekeningID: body.RekeningID,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// hanya satu default per tipe
		if m.BukuKasIsDefault {
			if err := tx.Model(&model.BukuKas{}).
				Where("buku_kas_tipe = ? AND buku_kas_is_default = TRUE", m.BukuKasTipe).
				Update("buku_kas_is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat buku kas")
	}

	return helper.JsonCreated(c, "Buku kas dibuat", dto.ToBukuKasResponse(&m))
}

/* =========================================================
   PATCH /api/a/buku-kas/:id
========================================================= */

func (ctrl *BukuKasController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku kas tidak valid")
	}

	var body dto.BukuKasUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m model.BukuKas
	if err := ctrl.DB.First(&m, "buku_kas_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku kas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku kas")
	}

	if body.Nama != nil {
		m.BukuKasNama = *body.Nama
	}
	if body.RekeningID != nil {
		m.BukuKasRekeningID = body.RekeningID
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if body.IsDefault != nil && *body.IsDefault && !m.BukuKasIsDefault {
			if err := tx.Model(&model.BukuKas{}).
				Where("buku_kas_tipe = ? AND buku_kas_is_default = TRUE", m.BukuKasTipe).
				Update("buku_kas_is_default", false).Error; err != nil {
				return err
			}
			m.BukuKasIsDefault = true
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui buku kas")
	}

	return helper.JsonUpdated(c, "Buku kas diperbarui", dto.ToBukuKasResponse(&m))
}

/* =========================================================
   DELETE /api/a/buku-kas/:id — hanya akun kosong
========================================================= */

func (ctrl *BukuKasController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID buku kas tidak valid")
	}

	var m model.BukuKas
	if err := ctrl.DB.First(&m, "buku_kas_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku kas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku kas")
	}

	var n int64
	if err := ctrl.DB.Model(&model.BukuKasTransaksi{}).
		Where("buku_kas_transaksi_buku_kas_id = ?", id).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mutasi")
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Buku kas masih punya mutasi, tidak bisa dihapus")
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus buku kas")
	}
	return helper.JsonDeleted(c, "Buku kas dihapus", fiber.Map{"buku_kas_id": id})
}
