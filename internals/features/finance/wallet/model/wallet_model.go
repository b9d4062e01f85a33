// file: internals/features/finance/wallet/model/wallet_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — arah & sumber mutasi dompet
============================== */

type WalletArah string

const (
	WalletArahKredit WalletArah = "kredit"
	WalletArahDebit  WalletArah = "debit"
)

// Sumber mutasi dompet
const (
	WalletSumberTopUp     = "topup"
	WalletSumberKembalian = "kembalian" // kembalian kwitansi masuk dompet
	WalletSumberKoreksi   = "koreksi"
)

/* ==============================================
   MODEL — dompet santri + mutasinya
   Saldo dompet selalu = Σ mutasi (kredit − debit);
   mutasi immutable, saldo di-update dalam satu
   transaksi dengan insert mutasinya.
============================================== */

type WalletSantri struct {
	WalletSantriID uuid.UUID `gorm:"column:wallet_santri_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wallet_santri_id"`

	// satu dompet per santri
	WalletSantriSantriID uuid.UUID `gorm:"column:wallet_santri_santri_id;type:uuid;not null;uniqueIndex" json:"wallet_santri_santri_id"`

	WalletSantriSaldoIDR int `gorm:"column:wallet_santri_saldo_idr;type:bigint;not null;default:0;check:wallet_santri_saldo_idr>=0" json:"wallet_santri_saldo_idr"`

	WalletSantriCreatedAt time.Time      `gorm:"column:wallet_santri_created_at;type:timestamptz;not null;autoCreateTime" json:"wallet_santri_created_at"`
	WalletSantriUpdatedAt time.Time      `gorm:"column:wallet_santri_updated_at;type:timestamptz;not null;autoUpdateTime" json:"wallet_santri_updated_at"`
	WalletSantriDeletedAt gorm.DeletedAt `gorm:"column:wallet_santri_deleted_at;type:timestamptz;index" json:"-"`
}

func (WalletSantri) TableName() string { return "wallet_santri" }

type WalletTransaksi struct {
	WalletTransaksiID uuid.UUID `gorm:"column:wallet_transaksi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wallet_transaksi_id"`

	WalletTransaksiWalletID uuid.UUID `gorm:"column:wallet_transaksi_wallet_id;type:uuid;not null;index" json:"wallet_transaksi_wallet_id"`

	WalletTransaksiArah      WalletArah `gorm:"column:wallet_transaksi_arah;type:varchar(10);not null" json:"wallet_transaksi_arah"`
	WalletTransaksiJumlahIDR int        `gorm:"column:wallet_transaksi_jumlah_idr;type:int;not null;check:wallet_transaksi_jumlah_idr>0" json:"wallet_transaksi_jumlah_idr"`

	// topup | kembalian | koreksi
	WalletTransaksiSumber string     `gorm:"column:wallet_transaksi_sumber;type:varchar(20);not null;index" json:"wallet_transaksi_sumber"`
	WalletTransaksiRefID  *uuid.UUID `gorm:"column:wallet_transaksi_ref_id;type:uuid;index" json:"wallet_transaksi_ref_id,omitempty"`

	WalletTransaksiSaldoSesudahIDR int `gorm:"column:wallet_transaksi_saldo_sesudah_idr;type:bigint;not null" json:"wallet_transaksi_saldo_sesudah_idr"`

	WalletTransaksiKeterangan *string `gorm:"column:wallet_transaksi_keterangan;type:text" json:"wallet_transaksi_keterangan,omitempty"`

	// immutable: hanya created_at
	WalletTransaksiCreatedAt time.Time `gorm:"column:wallet_transaksi_created_at;type:timestamptz;not null;autoCreateTime;index" json:"wallet_transaksi_created_at"`
}

func (WalletTransaksi) TableName() string { return "wallet_transaksi" }
