// file: internals/features/finance/bills/model/tagihan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status tagihan
============================== */

type TagihanStatus string

const (
	TagihanStatusBelumBayar TagihanStatus = "belum_bayar"
	TagihanStatusSebagian   TagihanStatus = "sebagian"
	TagihanStatusLunas      TagihanStatus = "lunas"
)

// StatusFromSisa: status sepenuhnya turunan dari sisa.
// sisa == nominal → belum_bayar; 0 < sisa < nominal → sebagian; sisa == 0 → lunas.
func StatusFromSisa(nominal, sisa int) TagihanStatus {
	switch {
	case sisa <= 0:
		return TagihanStatusLunas
	case sisa >= nominal:
		return TagihanStatusBelumBayar
	default:
		return TagihanStatusSebagian
	}
}

/* ==============================================
   MODEL — tagihan santri
   Invarian: dibayar + sisa == nominal, sisa >= 0.
   Nominal disnapshot saat generate dan tidak pernah
   dihitung ulang (santri pindah kelas tidak mengubah
   tagihan lama). Satu baris per (santri, jenis, periode);
   pembayaran parsial mengubah dibayar/sisa/status in-place,
   TIDAK memecah baris jadi stub lunas + stub sisa.
============================================== */

type Tagihan struct {
	TagihanID uuid.UUID `gorm:"column:tagihan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tagihan_id"`

	// FK → santri
	TagihanSantriID uuid.UUID `gorm:"column:tagihan_santri_id;type:uuid;not null;index;uniqueIndex:uniq_tagihan_periode,priority:1" json:"tagihan_santri_id"`

	// FK → jenis_tagihan + snapshot kode/nama saat generate
	TagihanJenisID           uuid.UUID `gorm:"column:tagihan_jenis_id;type:uuid;not null;index;uniqueIndex:uniq_tagihan_periode,priority:2" json:"tagihan_jenis_id"`
	TagihanJenisKodeSnapshot string    `gorm:"column:tagihan_jenis_kode_snapshot;type:varchar(30);not null" json:"tagihan_jenis_kode_snapshot"`
	TagihanJenisNamaSnapshot string    `gorm:"column:tagihan_jenis_nama_snapshot;type:varchar(100);not null" json:"tagihan_jenis_nama_snapshot"`

	// Periode tagihan
	TagihanBulan int16 `gorm:"column:tagihan_bulan;type:smallint;not null;uniqueIndex:uniq_tagihan_periode,priority:3" json:"tagihan_bulan"`
	TagihanTahun int16 `gorm:"column:tagihan_tahun;type:smallint;not null;uniqueIndex:uniq_tagihan_periode,priority:4" json:"tagihan_tahun"`

	// Nominal snapshot + ledger
	TagihanNominalIDR int `gorm:"column:tagihan_nominal_idr;type:int;not null;check:tagihan_nominal_idr>=0" json:"tagihan_nominal_idr"`
	TagihanDibayarIDR int `gorm:"column:tagihan_dibayar_idr;type:int;not null;default:0;check:tagihan_dibayar_idr>=0" json:"tagihan_dibayar_idr"`
	TagihanSisaIDR    int `gorm:"column:tagihan_sisa_idr;type:int;not null;check:tagihan_sisa_idr>=0;index" json:"tagihan_sisa_idr"`

	TagihanJatuhTempo time.Time     `gorm:"column:tagihan_jatuh_tempo;type:date;not null;index" json:"tagihan_jatuh_tempo"`
	TagihanStatus     TagihanStatus `gorm:"column:tagihan_status;type:varchar(20);not null;default:'belum_bayar';index" json:"tagihan_status"`

	// Diisi scheduler harian: jatuh tempo lewat & sisa > 0 (index laporan tunggakan)
	TagihanMenunggak bool `gorm:"column:tagihan_menunggak;not null;default:false;index" json:"tagihan_menunggak"`

	TagihanNote *string `gorm:"column:tagihan_note;type:text" json:"tagihan_note,omitempty"`

	TagihanCreatedAt time.Time      `gorm:"column:tagihan_created_at;type:timestamptz;not null;autoCreateTime;index" json:"tagihan_created_at"`
	TagihanUpdatedAt time.Time      `gorm:"column:tagihan_updated_at;type:timestamptz;not null;autoUpdateTime" json:"tagihan_updated_at"`
	TagihanDeletedAt gorm.DeletedAt `gorm:"column:tagihan_deleted_at;type:timestamptz;index" json:"-"`
}

func (Tagihan) TableName() string { return "tagihan" }

/* ======================================
   HOOKS — jaga invarian ledger
====================================== */

func (m *Tagihan) BeforeCreate(tx *gorm.DB) (err error) {
	if m.TagihanSisaIDR == 0 && m.TagihanDibayarIDR == 0 {
		m.TagihanSisaIDR = m.TagihanNominalIDR
	}
	m.TagihanStatus = StatusFromSisa(m.TagihanNominalIDR, m.TagihanSisaIDR)
	return nil
}
