// file: internals/features/finance/payments/model/pembayaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ==============================
   ENUM — metode & mode pembayaran
============================== */

const (
	PembayaranMetodeCash     = "cash"
	PembayaranMetodeTransfer = "transfer"
)

const (
	PembayaranModePenuh    = "penuh"
	PembayaranModeSebagian = "sebagian"
)

const (
	KembalianKeCash   = "cash"
	KembalianKeWallet = "wallet"
)

/* ==============================================
   MODEL — pembayaran
   Satu baris per (kwitansi, tagihan): uang yang
   dialokasikan ke satu tagihan pada satu momen.
   Immutable: tidak pernah di-update atau dihapus;
   pembatalan adalah operasi administratif terpisah.
============================================== */

type Pembayaran struct {
	PembayaranID uuid.UUID `gorm:"column:pembayaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pembayaran_id"`

	PembayaranKwitansiID uuid.UUID `gorm:"column:pembayaran_kwitansi_id;type:uuid;not null;index" json:"pembayaran_kwitansi_id"`
	PembayaranTagihanID  uuid.UUID `gorm:"column:pembayaran_tagihan_id;type:uuid;not null;index" json:"pembayaran_tagihan_id"`
	PembayaranSantriID   uuid.UUID `gorm:"column:pembayaran_santri_id;type:uuid;not null;index" json:"pembayaran_santri_id"`

	PembayaranJumlahIDR int `gorm:"column:pembayaran_jumlah_idr;type:int;not null;check:pembayaran_jumlah_idr>0" json:"pembayaran_jumlah_idr"`

	// Jejak ledger saat alokasi (audit; tagihan bisa berubah setelahnya)
	PembayaranSisaSebelumIDR int `gorm:"column:pembayaran_sisa_sebelum_idr;type:int;not null" json:"pembayaran_sisa_sebelum_idr"`
	PembayaranSisaSesudahIDR int `gorm:"column:pembayaran_sisa_sesudah_idr;type:int;not null" json:"pembayaran_sisa_sesudah_idr"`

	PembayaranMetode string `gorm:"column:pembayaran_metode;type:varchar(10);not null;index" json:"pembayaran_metode"`

	// Identitas petugas penerima
	PembayaranPetugasID   uuid.UUID `gorm:"column:pembayaran_petugas_id;type:uuid;not null;index" json:"pembayaran_petugas_id"`
	PembayaranPetugasNama string    `gorm:"column:pembayaran_petugas_nama;type:varchar(100);not null" json:"pembayaran_petugas_nama"`

	PembayaranCreatedAt time.Time `gorm:"column:pembayaran_created_at;type:timestamptz;not null;autoCreateTime;index" json:"pembayaran_created_at"`
}

func (Pembayaran) TableName() string { return "pembayaran" }
