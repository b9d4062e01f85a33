// file: internals/features/finance/cashbook/controller/rekening_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/cashbook/dto"
	"pesantrenku_backend/internals/features/finance/cashbook/model"
	helper "pesantrenku_backend/internals/helpers"
)

type RekeningController struct {
	DB *gorm.DB
}

func NewRekeningController(db *gorm.DB) *RekeningController {
	return &RekeningController{DB: db}
}

// List: ?all=true ikut menampilkan rekening nonaktif (admin).
func (ctrl *RekeningController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.RekeningBank{})
	if c.Query("all") != "true" {
		q = q.Where("rekening_bank_is_active = TRUE")
	}

	var rows []model.RekeningBank
	if err := q.Order("rekening_bank_nama_bank ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekening")
	}
	return helper.JsonOK(c, "OK", dto.ToRekeningResponses(rows))
}

func (ctrl *RekeningController) Create(c *fiber.Ctx) error {
	var body dto.RekeningCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := model.RekeningBank{
		RekeningBankNamaBank: body.NamaBank,
		RekeningBankNomor:    body.Nomor,
		RekeningBankAtasNama: body.AtasNama,
		RekeningBankIsActive: true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor rekening sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rekening")
	}
	return helper.JsonCreated(c, "Rekening dibuat", dto.ToRekeningResponse(&m))
}

func (ctrl *RekeningController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rekening tidak valid")
	}

	var body dto.RekeningUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m model.RekeningBank
	if err := ctrl.DB.First(&m, "rekening_bank_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Rekening tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekening")
	}

	// nomor rekening tidak bisa diganti, buat baris baru kalau berubah
	if body.NamaBank != nil {
		m.RekeningBankNamaBank = *body.NamaBank
	}
	if body.AtasNama != nil {
		m.RekeningBankAtasNama = *body.AtasNama
	}
	if body.IsActive != nil {
		m.RekeningBankIsActive = *body.IsActive
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui rekening")
	}
	return helper.JsonUpdated(c, "Rekening diperbarui", dto.ToRekeningResponse(&m))
}
