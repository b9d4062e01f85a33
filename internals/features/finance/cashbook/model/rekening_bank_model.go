// file: internals/features/finance/cashbook/model/rekening_bank_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rekening tujuan transfer wali santri (ditampilkan di bukti transfer).
type RekeningBank struct {
	RekeningBankID uuid.UUID `gorm:"column:rekening_bank_id;type:uuid;default:gen_random_uuid();primaryKey" json:"rekening_bank_id"`

	RekeningBankNamaBank string `gorm:"column:rekening_bank_nama_bank;type:varchar(50);not null" json:"rekening_bank_nama_bank"`
	RekeningBankNomor    string `gorm:"column:rekening_bank_nomor;type:varchar(30);not null;uniqueIndex" json:"rekening_bank_nomor"`
	RekeningBankAtasNama string `gorm:"column:rekening_bank_atas_nama;type:varchar(100);not null" json:"rekening_bank_atas_nama"`

	RekeningBankIsActive bool `gorm:"column:rekening_bank_is_active;not null;default:true;index" json:"rekening_bank_is_active"`

	RekeningBankCreatedAt time.Time      `gorm:"column:rekening_bank_created_at;type:timestamptz;not null;autoCreateTime" json:"rekening_bank_created_at"`
	RekeningBankUpdatedAt time.Time      `gorm:"column:rekening_bank_updated_at;type:timestamptz;not null;autoUpdateTime" json:"rekening_bank_updated_at"`
	RekeningBankDeletedAt gorm.DeletedAt `gorm:"column:rekening_bank_deleted_at;type:timestamptz;index" json:"-"`
}

func (RekeningBank) TableName() string { return "rekening_bank" }
