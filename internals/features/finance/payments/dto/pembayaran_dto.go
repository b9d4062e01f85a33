// file: internals/features/finance/payments/dto/pembayaran_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/finance/payments/model"
	"pesantrenku_backend/internals/features/finance/payments/service"
)

/* =========================
   REQUEST DTO
========================= */

// BayarTagihanDTO: satu submit kasir = satu kwitansi.
// Urutan tagihan_ids adalah urutan alokasi.
type BayarTagihanDTO struct {
	SantriID       uuid.UUID   `json:"santri_id" validate:"required"`
	TagihanIDs     []uuid.UUID `json:"tagihan_ids" validate:"required,min=1,dive,required"`
	JumlahBayarIDR int         `json:"jumlah_bayar_idr" validate:"required,gt=0"`
	Metode         string      `json:"metode" validate:"required,oneof=cash transfer"`
	Mode           string      `json:"mode" validate:"required,oneof=penuh sebagian"`
	KembalianKe    string      `json:"kembalian_ke" validate:"omitempty,oneof=cash wallet"`
}

/* =========================
   RESPONSE DTO
========================= */

type AlokasiLineResponse struct {
	TagihanID      uuid.UUID `json:"tagihan_id"`
	JumlahIDR      int       `json:"jumlah_idr"`
	SisaSebelumIDR int       `json:"sisa_sebelum_idr"`
	SisaSesudahIDR int       `json:"sisa_sesudah_idr"`
	StatusSesudah  string    `json:"status_sesudah"`
}

type KwitansiResponse struct {
	KwitansiID      uuid.UUID      `json:"kwitansi_id"`
	Nomor           string         `json:"nomor"`
	SantriID        uuid.UUID      `json:"santri_id"`
	TotalAlokasiIDR int            `json:"total_alokasi_idr"`
	JumlahBayarIDR  int            `json:"jumlah_bayar_idr"`
	KembalianIDR    int            `json:"kembalian_idr"`
	Metode          string         `json:"metode"`
	Mode            string         `json:"mode"`
	KembalianKe     string         `json:"kembalian_ke"`
	Snapshot        datatypes.JSON `json:"snapshot,omitempty"`
	PetugasNama     string         `json:"petugas_nama"`
	CreatedAt       time.Time      `json:"created_at"`
}

// BayarTagihanResponse: kwitansi + rincian alokasi + flag replay.
type BayarTagihanResponse struct {
	Kwitansi KwitansiResponse      `json:"kwitansi"`
	Alokasi  []AlokasiLineResponse `json:"alokasi,omitempty"`
	Replayed bool                  `json:"replayed"`
}

/* =========================
   MAPPERS
========================= */

func ToKwitansiResponse(m *model.Kwitansi, withSnapshot bool) KwitansiResponse {
	r := KwitansiResponse{
		KwitansiID:      m.KwitansiID,
		Nomor:           m.KwitansiNomor,
		SantriID:        m.KwitansiSantriID,
		TotalAlokasiIDR: m.KwitansiTotalAlokasiIDR,
		JumlahBayarIDR:  m.KwitansiJumlahBayarIDR,
		KembalianIDR:    m.KwitansiKembalianIDR,
		Metode:          m.KwitansiMetode,
		Mode:            m.KwitansiMode,
		KembalianKe:     m.KwitansiKembalianKe,
		PetugasNama:     m.KwitansiPetugasNama,
		CreatedAt:       m.KwitansiCreatedAt,
	}
	if withSnapshot {
		r.Snapshot = m.KwitansiSnapshot
	}
	return r
}

func ToBayarTagihanResponse(res service.ReconcileResult) BayarTagihanResponse {
	out := BayarTagihanResponse{
		Kwitansi: ToKwitansiResponse(&res.Kwitansi, true),
		Replayed: res.Replayed,
	}
	for _, l := range res.Lines {
		out.Alokasi = append(out.Alokasi, AlokasiLineResponse{
			TagihanID:      l.TagihanID,
			JumlahIDR:      l.JumlahIDR,
			SisaSebelumIDR: l.SisaSebelumIDR,
			SisaSesudahIDR: l.SisaSesudahIDR,
			StatusSesudah:  string(l.StatusSesudah),
		})
	}
	return out
}
