// file: internals/features/finance/cashbook/model/buku_kas_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — tipe akun & arah mutasi
============================== */

type BukuKasTipe string

const (
	BukuKasTipeCash BukuKasTipe = "cash"
	BukuKasTipeBank BukuKasTipe = "bank"
)

type MutasiArah string

const (
	MutasiMasuk  MutasiArah = "masuk"
	MutasiKeluar MutasiArah = "keluar"
)

// Sumber entri otomatis; entri manual ref-nya NULL.
const (
	MutasiRefKwitansi = "kwitansi"
	MutasiRefTopUp    = "topup"
)

/* ==============================================
   MODEL — buku kas (akun kas/bank) + mutasinya
   Saldo selalu sama dengan penjumlahan mutasi;
   setiap insert/delete mutasi menyesuaikan saldo
   dalam transaksi yang sama.
============================================== */

type BukuKas struct {
	BukuKasID uuid.UUID `gorm:"column:buku_kas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"buku_kas_id"`

	BukuKasNama string      `gorm:"column:buku_kas_nama;type:varchar(100);not null" json:"buku_kas_nama"`
	BukuKasTipe BukuKasTipe `gorm:"column:buku_kas_tipe;type:varchar(10);not null;index" json:"buku_kas_tipe"`

	// Akun tujuan setoran otomatis (kwitansi tunai → default cash, transfer → default bank)
	BukuKasIsDefault bool `gorm:"column:buku_kas_is_default;not null;default:false;index" json:"buku_kas_is_default"`

	// FK → rekening_bank (hanya tipe bank)
	BukuKasRekeningID *uuid.UUID `gorm:"column:buku_kas_rekening_id;type:uuid;index" json:"buku_kas_rekening_id,omitempty"`

	BukuKasSaldoIDR int `gorm:"column:buku_kas_saldo_idr;type:bigint;not null;default:0" json:"buku_kas_saldo_idr"`

	BukuKasCreatedAt time.Time      `gorm:"column:buku_kas_created_at;type:timestamptz;not null;autoCreateTime" json:"buku_kas_created_at"`
	BukuKasUpdatedAt time.Time      `gorm:"column:buku_kas_updated_at;type:timestamptz;not null;autoUpdateTime" json:"buku_kas_updated_at"`
	BukuKasDeletedAt gorm.DeletedAt `gorm:"column:buku_kas_deleted_at;type:timestamptz;index" json:"-"`
}

func (BukuKas) TableName() string { return "buku_kas" }

type BukuKasTransaksi struct {
	BukuKasTransaksiID uuid.UUID `gorm:"column:buku_kas_transaksi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"buku_kas_transaksi_id"`

	BukuKasTransaksiBukuKasID uuid.UUID `gorm:"column:buku_kas_transaksi_buku_kas_id;type:uuid;not null;index" json:"buku_kas_transaksi_buku_kas_id"`

	BukuKasTransaksiArah      MutasiArah `gorm:"column:buku_kas_transaksi_arah;type:varchar(10);not null;index" json:"buku_kas_transaksi_arah"`
	BukuKasTransaksiJumlahIDR int        `gorm:"column:buku_kas_transaksi_jumlah_idr;type:int;not null;check:buku_kas_transaksi_jumlah_idr>0" json:"buku_kas_transaksi_jumlah_idr"`

	// Kategori bebas untuk laporan (spp, topup, operasional, gaji, dll)
	BukuKasTransaksiKategori   string  `gorm:"column:buku_kas_transaksi_kategori;type:varchar(50);not null;index" json:"buku_kas_transaksi_kategori"`
	BukuKasTransaksiKeterangan *string `gorm:"column:buku_kas_transaksi_keterangan;type:text" json:"buku_kas_transaksi_keterangan,omitempty"`

	// Ref sumber otomatis (kwitansi|topup) — NULL untuk entri manual.
	// Entri otomatis tidak boleh diedit/dihapus lewat CRUD.
	BukuKasTransaksiRefTipe *string    `gorm:"column:buku_kas_transaksi_ref_tipe;type:varchar(20);index" json:"buku_kas_transaksi_ref_tipe,omitempty"`
	BukuKasTransaksiRefID   *uuid.UUID `gorm:"column:buku_kas_transaksi_ref_id;type:uuid;index" json:"buku_kas_transaksi_ref_id,omitempty"`

	BukuKasTransaksiTanggal time.Time `gorm:"column:buku_kas_transaksi_tanggal;type:date;not null;index" json:"buku_kas_transaksi_tanggal"`

	BukuKasTransaksiPetugasID   *uuid.UUID `gorm:"column:buku_kas_transaksi_petugas_id;type:uuid" json:"buku_kas_transaksi_petugas_id,omitempty"`
	BukuKasTransaksiPetugasNama *string    `gorm:"column:buku_kas_transaksi_petugas_nama;type:varchar(100)" json:"buku_kas_transaksi_petugas_nama,omitempty"`

	BukuKasTransaksiCreatedAt time.Time      `gorm:"column:buku_kas_transaksi_created_at;type:timestamptz;not null;autoCreateTime;index" json:"buku_kas_transaksi_created_at"`
	BukuKasTransaksiUpdatedAt time.Time      `gorm:"column:buku_kas_transaksi_updated_at;type:timestamptz;not null;autoUpdateTime" json:"buku_kas_transaksi_updated_at"`
	BukuKasTransaksiDeletedAt gorm.DeletedAt `gorm:"column:buku_kas_transaksi_deleted_at;type:timestamptz;index" json:"-"`
}

func (BukuKasTransaksi) TableName() string { return "buku_kas_transaksi" }

// IsOtomatis: entri hasil kwitansi/top-up (bukan input manual).
func (t *BukuKasTransaksi) IsOtomatis() bool {
	return t.BukuKasTransaksiRefTipe != nil
}

// Delta efek mutasi terhadap saldo (masuk positif, keluar negatif).
func (t *BukuKasTransaksi) Delta() int {
	if t.BukuKasTransaksiArah == MutasiKeluar {
		return -t.BukuKasTransaksiJumlahIDR
	}
	return t.BukuKasTransaksiJumlahIDR
}
