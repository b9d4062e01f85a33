// file: internals/features/finance/billing_kinds/controller/jenis_tagihan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/finance/billing_kinds/dto"
	kindModel "pesantrenku_backend/internals/features/finance/billing_kinds/model"
	helper "pesantrenku_backend/internals/helpers"
)

type JenisTagihanController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /jenis-tagihan)
// -----------------------------------------
func (h *JenisTagihanController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&kindModel.JenisTagihan{})
	if v := c.Query("is_active"); v != "" {
		q = q.Where("jenis_tagihan_is_active = ?", strings.EqualFold(v, "true"))
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + v + "%"
		q = q.Where("jenis_tagihan_nama ILIKE ? OR jenis_tagihan_kode ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []kindModel.JenisTagihan
	if err := q.
		Order("jenis_tagihan_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.ToJenisTagihanResponses(list), p.Meta(total))
}

// -----------------------------------------
// Create (POST /jenis-tagihan)
// -----------------------------------------
func (h *JenisTagihanController) Create(c *fiber.Ctx) error {
	var in dto.JenisTagihanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.JenisTagihanKode = strings.ToUpper(strings.TrimSpace(in.JenisTagihanKode))
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := dto.JenisTagihanCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "kode jenis tagihan sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "jenis tagihan dibuat", dto.ToJenisTagihanResponse(m))
}

// -----------------------------------------
// Update (PATCH /jenis-tagihan/:id)
// Catatan: mengubah nominal TIDAK menyentuh tagihan yang sudah digenerate
// (nominal tagihan adalah snapshot).
// -----------------------------------------
func (h *JenisTagihanController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.JenisTagihanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m kindModel.JenisTagihan
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "jenis_tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "jenis tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyJenisTagihanUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "jenis tagihan diperbarui", dto.ToJenisTagihanResponse(m))
}

// -----------------------------------------
// Delete (DELETE /jenis-tagihan/:id) — soft delete
// -----------------------------------------
func (h *JenisTagihanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m kindModel.JenisTagihan
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "jenis_tagihan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "jenis tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "jenis tagihan dihapus", dto.ToJenisTagihanResponse(m))
}
