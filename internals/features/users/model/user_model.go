// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — petugas keuangan
============================== */

type User struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserUsername string `gorm:"column:user_username;type:varchar(50);not null;uniqueIndex" json:"user_username"`
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserName     string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`

	// admin | bendahara | kasir
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'kasir';index" json:"user_role"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true;index" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"-"`
}

func (User) TableName() string { return "users" }

/* ==============================
   Helpers password
============================== */

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
