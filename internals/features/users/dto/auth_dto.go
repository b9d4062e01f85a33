// file: internals/features/users/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "pesantrenku_backend/internals/features/users/model"
)

type LoginDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserUsername string    `json:"user_username"`
	UserName     string    `json:"user_name"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
}

func ToUserResponse(m userModel.User) UserResponse {
	return UserResponse{
		UserID:       m.UserID,
		UserUsername: m.UserUsername,
		UserName:     m.UserName,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
	}
}
