// file: internals/features/santri/controller/santri_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/dto"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type SantriController struct {
	DB *gorm.DB
}

func buildSantriOrderClause(p helper.Params) string {
	allowed := map[string]string{
		"created_at": "santri_created_at",
		"nama":       "santri_nama",
		"nis":        "santri_nis",
		"kelas":      "santri_kelas",
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
// List (GET /santri)
// Query filters (opsional):
// - q          : search-as-you-type nama/NIS (prefix NIS, ILIKE nama)
// - kelas, angkatan, is_active
// - sort_by (created_at|nama|nis|kelas), order (asc|desc)
// - page, per_page
// -----------------------------------------
func (h *SantriController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "nama", "asc", helper.DefaultOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&santriModel.Santri{})

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + v + "%"
		q = q.Where("santri_nama ILIKE ? OR santri_nis LIKE ?", like, v+"%")
	}
	if v := strings.TrimSpace(c.Query("kelas")); v != "" {
		q = q.Where("santri_kelas = ?", v)
	}
	if v := c.QueryInt("angkatan"); v > 0 {
		q = q.Where("santri_angkatan = ?", v)
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("santri_is_active = ?", strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []santriModel.Santri
	if err := q.
		Order(buildSantriOrderClause(p)).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToSantriResponses(list), p.Meta(total))
}

// -----------------------------------------
// Detail (GET /santri/:id)
// -----------------------------------------
func (h *SantriController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m santriModel.Santri
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "santri_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToSantriResponse(m))
}

// -----------------------------------------
// Create (POST /santri)
// -----------------------------------------
func (h *SantriController) Create(c *fiber.Ctx) error {
	var in dto.SantriCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := dto.SantriCreateDTOToModel(in)
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "santri dibuat", dto.ToSantriResponse(m))
}

// -----------------------------------------
// Update (PATCH /santri/:id)
// -----------------------------------------
func (h *SantriController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.SantriUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var m santriModel.Santri
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "santri_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplySantriUpdate(&m, in)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "santri diperbarui", dto.ToSantriResponse(m))
}

// -----------------------------------------
// Delete (DELETE /santri/:id) — soft delete
// -----------------------------------------
func (h *SantriController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m santriModel.Santri
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "santri_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "santri dihapus", dto.ToSantriResponse(m))
}
