// file: internals/features/finance/bills/dto/tagihan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
)

////////////////////////////////////////////////////////////////////////////////
// TAGIHAN — DTO
////////////////////////////////////////////////////////////////////////////////

// Generate batch tagihan untuk satu jenis + periode.
// santri_ids kosong → semua santri aktif.
type TagihanGenerateDTO struct {
	JenisID    uuid.UUID   `json:"jenis_id" validate:"required"`
	Bulan      int16       `json:"bulan" validate:"required,min=1,max=12"`
	Tahun      int16       `json:"tahun" validate:"required,min=2000,max=2100"`
	JatuhTempo time.Time   `json:"jatuh_tempo" validate:"required"`
	SantriIDs  []uuid.UUID `json:"santri_ids,omitempty"`
}

type TagihanGenerateResult struct {
	Dibuat   int `json:"dibuat"`
	Dilewati int `json:"dilewati"` // sudah ada untuk (santri, jenis, periode)
}

type TagihanResponse struct {
	TagihanID                uuid.UUID `json:"tagihan_id"`
	TagihanSantriID          uuid.UUID `json:"tagihan_santri_id"`
	TagihanJenisID           uuid.UUID `json:"tagihan_jenis_id"`
	TagihanJenisKodeSnapshot string    `json:"tagihan_jenis_kode_snapshot"`
	TagihanJenisNamaSnapshot string    `json:"tagihan_jenis_nama_snapshot"`
	TagihanBulan             int16     `json:"tagihan_bulan"`
	TagihanTahun             int16     `json:"tagihan_tahun"`
	TagihanNominalIDR        int       `json:"tagihan_nominal_idr"`
	TagihanDibayarIDR        int       `json:"tagihan_dibayar_idr"`
	TagihanSisaIDR           int       `json:"tagihan_sisa_idr"`
	TagihanJatuhTempo        time.Time `json:"tagihan_jatuh_tempo"`
	TagihanStatus            string    `json:"tagihan_status"`
	TagihanMenunggak         bool      `json:"tagihan_menunggak"`
	TagihanNote              *string   `json:"tagihan_note,omitempty"`
	TagihanCreatedAt         time.Time `json:"tagihan_created_at"`
	TagihanUpdatedAt         time.Time `json:"tagihan_updated_at"`

	// Diisi saat list join ke santri (opsional)
	SantriNama *string `json:"santri_nama,omitempty"`
	SantriNIS  *string `json:"santri_nis,omitempty"`
}

func ToTagihanResponse(m tagihanModel.Tagihan) TagihanResponse {
	return TagihanResponse{
		TagihanID:                m.TagihanID,
		TagihanSantriID:          m.TagihanSantriID,
		TagihanJenisID:           m.TagihanJenisID,
		TagihanJenisKodeSnapshot: m.TagihanJenisKodeSnapshot,
		TagihanJenisNamaSnapshot: m.TagihanJenisNamaSnapshot,
		TagihanBulan:             m.TagihanBulan,
		TagihanTahun:             m.TagihanTahun,
		TagihanNominalIDR:        m.TagihanNominalIDR,
		TagihanDibayarIDR:        m.TagihanDibayarIDR,
		TagihanSisaIDR:           m.TagihanSisaIDR,
		TagihanJatuhTempo:        m.TagihanJatuhTempo,
		TagihanStatus:            string(m.TagihanStatus),
		TagihanMenunggak:         m.TagihanMenunggak,
		TagihanNote:              m.TagihanNote,
		TagihanCreatedAt:         m.TagihanCreatedAt,
		TagihanUpdatedAt:         m.TagihanUpdatedAt,
	}
}

func ToTagihanResponses(list []tagihanModel.Tagihan) []TagihanResponse {
	out := make([]TagihanResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTagihanResponse(m))
	}
	return out
}
