// file: internals/features/finance/billing_kinds/model/jenis_tagihan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — jenis tagihan (katalog jenis biaya)
   Contoh: SPP bulanan, uang pangkal, daurah.
============================================== */

type JenisTagihan struct {
	JenisTagihanID uuid.UUID `gorm:"column:jenis_tagihan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jenis_tagihan_id"`

	JenisTagihanKode string `gorm:"column:jenis_tagihan_kode;type:varchar(30);not null;uniqueIndex" json:"jenis_tagihan_kode"`
	JenisTagihanNama string `gorm:"column:jenis_tagihan_nama;type:varchar(100);not null" json:"jenis_tagihan_nama"`

	// Nominal default yang disnapshot ke tagihan saat generate.
	JenisTagihanNominalIDR int `gorm:"column:jenis_tagihan_nominal_idr;type:int;not null;check:jenis_tagihan_nominal_idr>=0" json:"jenis_tagihan_nominal_idr"`

	// true → tagihan bulanan (SPP); false → sekali bayar (one-off)
	JenisTagihanIsBulanan bool `gorm:"column:jenis_tagihan_is_bulanan;not null;default:true" json:"jenis_tagihan_is_bulanan"`

	JenisTagihanIsActive bool    `gorm:"column:jenis_tagihan_is_active;not null;default:true;index" json:"jenis_tagihan_is_active"`
	JenisTagihanNote     *string `gorm:"column:jenis_tagihan_note;type:text" json:"jenis_tagihan_note,omitempty"`

	JenisTagihanCreatedAt time.Time      `gorm:"column:jenis_tagihan_created_at;type:timestamptz;not null;autoCreateTime" json:"jenis_tagihan_created_at"`
	JenisTagihanUpdatedAt time.Time      `gorm:"column:jenis_tagihan_updated_at;type:timestamptz;not null;autoUpdateTime" json:"jenis_tagihan_updated_at"`
	JenisTagihanDeletedAt gorm.DeletedAt `gorm:"column:jenis_tagihan_deleted_at;type:timestamptz;index" json:"-"`
}

func (JenisTagihan) TableName() string { return "jenis_tagihan" }
