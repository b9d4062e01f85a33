// file: internals/features/santri/model/santri_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ==============================================
   MODEL — santri (registri identitas)
   Read-only dari sisi logika pembayaran: tagihan
   dan pembayaran hanya menempel lewat FK.
============================================== */

type Santri struct {
	SantriID uuid.UUID `gorm:"column:santri_id;type:uuid;default:gen_random_uuid();primaryKey" json:"santri_id"`

	SantriNIS  string `gorm:"column:santri_nis;type:varchar(30);not null;uniqueIndex" json:"santri_nis"`
	SantriNama string `gorm:"column:santri_nama;type:varchar(100);not null;index" json:"santri_nama"`

	// Label kelas/angkatan — snapshot teks, bukan FK; tagihan tidak
	// dihitung ulang kalau santri pindah kelas.
	SantriKelas    *string `gorm:"column:santri_kelas;type:varchar(50);index" json:"santri_kelas,omitempty"`
	SantriAngkatan *int16  `gorm:"column:santri_angkatan;type:smallint;index" json:"santri_angkatan,omitempty"`

	// Kontak wali
	SantriNamaWali  *string        `gorm:"column:santri_nama_wali;type:varchar(100)" json:"santri_nama_wali,omitempty"`
	SantriTelpWali  pq.StringArray `gorm:"column:santri_telp_wali;type:text[]" json:"santri_telp_wali,omitempty"`
	SantriAlamat    *string        `gorm:"column:santri_alamat;type:text" json:"santri_alamat,omitempty"`

	SantriIsActive bool `gorm:"column:santri_is_active;not null;default:true;index" json:"santri_is_active"`

	SantriCreatedAt time.Time      `gorm:"column:santri_created_at;type:timestamptz;not null;autoCreateTime" json:"santri_created_at"`
	SantriUpdatedAt time.Time      `gorm:"column:santri_updated_at;type:timestamptz;not null;autoUpdateTime" json:"santri_updated_at"`
	SantriDeletedAt gorm.DeletedAt `gorm:"column:santri_deleted_at;type:timestamptz;index" json:"-"`
}

func (Santri) TableName() string { return "santri" }
