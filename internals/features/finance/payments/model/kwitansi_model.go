// file: internals/features/finance/payments/model/kwitansi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ==============================================
   MODEL — kwitansi
   Satu kwitansi per panggilan rekonsiliasi; append-only.
   Snapshot JSONB membekukan detail santri + rincian
   alokasi saat transaksi — perubahan tagihan setelahnya
   tidak mengubah kwitansi yang sudah dicetak.
============================================== */

type Kwitansi struct {
	KwitansiID uuid.UUID `gorm:"column:kwitansi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kwitansi_id"`

	KwitansiNomor string `gorm:"column:kwitansi_nomor;type:varchar(30);not null;uniqueIndex" json:"kwitansi_nomor"`

	KwitansiSantriID uuid.UUID `gorm:"column:kwitansi_santri_id;type:uuid;not null;index" json:"kwitansi_santri_id"`

	// Totals
	KwitansiTotalAlokasiIDR int `gorm:"column:kwitansi_total_alokasi_idr;type:int;not null" json:"kwitansi_total_alokasi_idr"`
	KwitansiJumlahBayarIDR  int `gorm:"column:kwitansi_jumlah_bayar_idr;type:int;not null" json:"kwitansi_jumlah_bayar_idr"`
	KwitansiKembalianIDR    int `gorm:"column:kwitansi_kembalian_idr;type:int;not null;default:0" json:"kwitansi_kembalian_idr"`

	KwitansiMetode      string `gorm:"column:kwitansi_metode;type:varchar(10);not null" json:"kwitansi_metode"`
	KwitansiMode        string `gorm:"column:kwitansi_mode;type:varchar(10);not null" json:"kwitansi_mode"`
	KwitansiKembalianKe string `gorm:"column:kwitansi_kembalian_ke;type:varchar(10);not null;default:'cash'" json:"kwitansi_kembalian_ke"`

	// Idempotency key dari klien; unique → submit ulang mengembalikan
	// kwitansi yang sama tanpa baris baru.
	KwitansiIdempotencyKey *string `gorm:"column:kwitansi_idempotency_key;type:varchar(100);uniqueIndex" json:"kwitansi_idempotency_key,omitempty"`

	// Snapshot beku (santri + rincian alokasi + petugas)
	KwitansiSnapshot datatypes.JSON `gorm:"column:kwitansi_snapshot;type:jsonb;not null" json:"kwitansi_snapshot"`

	KwitansiPetugasID   uuid.UUID `gorm:"column:kwitansi_petugas_id;type:uuid;not null" json:"kwitansi_petugas_id"`
	KwitansiPetugasNama string    `gorm:"column:kwitansi_petugas_nama;type:varchar(100);not null" json:"kwitansi_petugas_nama"`

	// immutable: hanya created_at
	KwitansiCreatedAt time.Time `gorm:"column:kwitansi_created_at;type:timestamptz;not null;autoCreateTime;index" json:"kwitansi_created_at"`
}

func (Kwitansi) TableName() string { return "kwitansi" }
