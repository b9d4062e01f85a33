// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/dto"
	userModel "pesantrenku_backend/internals/features/users/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Login (POST /api/auth/login)
// -----------------------------------------
func (h *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var u userModel.User
	if err := h.DB.WithContext(c.UserContext()).
		Where("user_username = ? AND user_is_active = TRUE", in.Username).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !u.CheckPassword(in.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	expiresAt := time.Now().Add(12 * time.Hour)
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal membuat token")
	}

	return helper.JsonOK(c, "login berhasil", dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(u),
	})
}

// -----------------------------------------
// Me (GET /api/u/me)
// -----------------------------------------
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var u userModel.User
	if err := h.DB.WithContext(c.UserContext()).
		First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(u))
}
