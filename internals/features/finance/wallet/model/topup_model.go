// file: internals/features/finance/wallet/model/topup_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — metode & status top-up
============================== */

type TopUpMetode string

const (
	TopUpMetodeCash     TopUpMetode = "cash"
	TopUpMetodeTransfer TopUpMetode = "transfer"
	TopUpMetodeGateway  TopUpMetode = "gateway"
)

type TopUpStatus string

const (
	TopUpStatusMenunggu TopUpStatus = "menunggu"
	TopUpStatusDiterima TopUpStatus = "diterima"
	TopUpStatusDitolak  TopUpStatus = "ditolak"
)

/* ==============================================
   MODEL — top-up dompet
   cash     → langsung diterima (kasir pegang uangnya)
   transfer → menunggu verifikasi bukti transfer
   gateway  → menunggu settlement midtrans (order id unik)
   Keputusan verifikasi bersifat final.
============================================== */

type TopUp struct {
	TopUpID uuid.UUID `gorm:"column:topup_id;type:uuid;default:gen_random_uuid();primaryKey" json:"topup_id"`

	TopUpSantriID uuid.UUID `gorm:"column:topup_santri_id;type:uuid;not null;index" json:"topup_santri_id"`

	TopUpJumlahIDR int         `gorm:"column:topup_jumlah_idr;type:int;not null;check:topup_jumlah_idr>0" json:"topup_jumlah_idr"`
	TopUpMetode    TopUpMetode `gorm:"column:topup_metode;type:varchar(10);not null;index" json:"topup_metode"`
	TopUpStatus    TopUpStatus `gorm:"column:topup_status;type:varchar(10);not null;default:'menunggu';index" json:"topup_status"`

	// transfer: bukti + rekening tujuan
	TopUpBuktiURL   *string    `gorm:"column:topup_bukti_url;type:text" json:"topup_bukti_url,omitempty"`
	TopUpRekeningID *uuid.UUID `gorm:"column:topup_rekening_id;type:uuid;index" json:"topup_rekening_id,omitempty"`

	// gateway: order id midtrans + snap token
	TopUpOrderID   *string `gorm:"column:topup_order_id;type:varchar(60);uniqueIndex" json:"topup_order_id,omitempty"`
	TopUpSnapToken *string `gorm:"column:topup_snap_token;type:text" json:"topup_snap_token,omitempty"`

	// verifikasi
	TopUpDiputuskanAt      *time.Time `gorm:"column:topup_diputuskan_at;type:timestamptz" json:"topup_diputuskan_at,omitempty"`
	TopUpVerifikatorID     *uuid.UUID `gorm:"column:topup_verifikator_id;type:uuid" json:"topup_verifikator_id,omitempty"`
	TopUpVerifikatorNama   *string    `gorm:"column:topup_verifikator_nama;type:varchar(100)" json:"topup_verifikator_nama,omitempty"`
	TopUpCatatanVerifikasi *string    `gorm:"column:topup_catatan_verifikasi;type:text" json:"topup_catatan_verifikasi,omitempty"`

	TopUpCreatedAt time.Time      `gorm:"column:topup_created_at;type:timestamptz;not null;autoCreateTime;index" json:"topup_created_at"`
	TopUpUpdatedAt time.Time      `gorm:"column:topup_updated_at;type:timestamptz;not null;autoUpdateTime" json:"topup_updated_at"`
	TopUpDeletedAt gorm.DeletedAt `gorm:"column:topup_deleted_at;type:timestamptz;index" json:"-"`
}

func (TopUp) TableName() string { return "topup" }

func (t *TopUp) IsFinal() bool {
	return t.TopUpStatus == TopUpStatusDiterima || t.TopUpStatus == TopUpStatusDitolak
}
