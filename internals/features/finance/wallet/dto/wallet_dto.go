// file: internals/features/finance/wallet/dto/wallet_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/finance/wallet/model"
)

/* =========================
   REQUEST DTO
========================= */

// TopUpCreateDTO: cash dicatat kasir (langsung diterima),
// transfer butuh bukti + rekening tujuan, gateway lewat Midtrans.
type TopUpCreateDTO struct {
	SantriID   uuid.UUID  `json:"santri_id" validate:"required"`
	JumlahIDR  int        `json:"jumlah_idr" validate:"required,gt=0"`
	Metode     string     `json:"metode" validate:"required,oneof=cash transfer gateway"`
	BuktiURL   *string    `json:"bukti_url" validate:"omitempty,url"`
	RekeningID *uuid.UUID `json:"rekening_id"`
}

type TopUpKeputusanDTO struct {
	Catatan *string `json:"catatan"`
}

/* =========================
   RESPONSE DTO
========================= */

type WalletResponse struct {
	WalletID  uuid.UUID `json:"wallet_id"`
	SantriID  uuid.UUID `json:"santri_id"`
	SaldoIDR  int       `json:"saldo_idr"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletTransaksiResponse struct {
	TransaksiID     uuid.UUID  `json:"transaksi_id"`
	Arah            string     `json:"arah"`
	JumlahIDR       int        `json:"jumlah_idr"`
	Sumber          string     `json:"sumber"`
	RefID           *uuid.UUID `json:"ref_id,omitempty"`
	SaldoSesudahIDR int        `json:"saldo_sesudah_idr"`
	Keterangan      *string    `json:"keterangan,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type TopUpResponse struct {
	TopUpID         uuid.UUID  `json:"topup_id"`
	SantriID        uuid.UUID  `json:"santri_id"`
	JumlahIDR       int        `json:"jumlah_idr"`
	Metode          string     `json:"metode"`
	Status          string     `json:"status"`
	BuktiURL        *string    `json:"bukti_url,omitempty"`
	RekeningID      *uuid.UUID `json:"rekening_id,omitempty"`
	OrderID         *string    `json:"order_id,omitempty"`
	SnapToken       *string    `json:"snap_token,omitempty"`
	RedirectURL     *string    `json:"redirect_url,omitempty"`
	DiputuskanAt    *time.Time `json:"diputuskan_at,omitempty"`
	VerifikatorNama *string    `json:"verifikator_nama,omitempty"`
	Catatan         *string    `json:"catatan,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

/* =========================
   MAPPERS
========================= */

func ToWalletResponse(m *model.WalletSantri) WalletResponse {
	return WalletResponse{
		WalletID:  m.WalletSantriID,
		SantriID:  m.WalletSantriSantriID,
		SaldoIDR:  m.WalletSantriSaldoIDR,
		UpdatedAt: m.WalletSantriUpdatedAt,
	}
}

func ToWalletTransaksiResponses(list []model.WalletTransaksi) []WalletTransaksiResponse {
	out := make([]WalletTransaksiResponse, 0, len(list))
	for i := range list {
		m := &list[i]
		out = append(out, WalletTransaksiResponse{
			TransaksiID:     m.WalletTransaksiID,
			Arah:            string(m.WalletTransaksiArah),
			JumlahIDR:       m.WalletTransaksiJumlahIDR,
			Sumber:          m.WalletTransaksiSumber,
			RefID:           m.WalletTransaksiRefID,
			SaldoSesudahIDR: m.WalletTransaksiSaldoSesudahIDR,
			Keterangan:      m.WalletTransaksiKeterangan,
			CreatedAt:       m.WalletTransaksiCreatedAt,
		})
	}
	return out
}

func ToTopUpResponse(m *model.TopUp) TopUpResponse {
	return TopUpResponse{
		TopUpID:         m.TopUpID,
		SantriID:        m.TopUpSantriID,
		JumlahIDR:       m.TopUpJumlahIDR,
		Metode:          string(m.TopUpMetode),
		Status:          string(m.TopUpStatus),
		BuktiURL:        m.TopUpBuktiURL,
		RekeningID:      m.TopUpRekeningID,
		OrderID:         m.TopUpOrderID,
		SnapToken:       m.TopUpSnapToken,
		DiputuskanAt:    m.TopUpDiputuskanAt,
		VerifikatorNama: m.TopUpVerifikatorNama,
		Catatan:         m.TopUpCatatanVerifikasi,
		CreatedAt:       m.TopUpCreatedAt,
	}
}

func ToTopUpResponses(list []model.TopUp) []TopUpResponse {
	out := make([]TopUpResponse, 0, len(list))
	for i := range list {
		out = append(out, ToTopUpResponse(&list[i]))
	}
	return out
}
