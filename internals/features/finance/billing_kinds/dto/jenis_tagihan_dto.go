// file: internals/features/finance/billing_kinds/dto/jenis_tagihan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	kindModel "pesantrenku_backend/internals/features/finance/billing_kinds/model"
)

type JenisTagihanCreateDTO struct {
	JenisTagihanKode       string  `json:"jenis_tagihan_kode" validate:"required,max=30,uppercase"`
	JenisTagihanNama       string  `json:"jenis_tagihan_nama" validate:"required,max=100"`
	JenisTagihanNominalIDR int     `json:"jenis_tagihan_nominal_idr" validate:"required,min=0"`
	JenisTagihanIsBulanan  *bool   `json:"jenis_tagihan_is_bulanan,omitempty"`
	JenisTagihanNote       *string `json:"jenis_tagihan_note,omitempty"`
}

type JenisTagihanUpdateDTO struct {
	JenisTagihanNama       *string `json:"jenis_tagihan_nama,omitempty" validate:"omitempty,max=100"`
	JenisTagihanNominalIDR *int    `json:"jenis_tagihan_nominal_idr,omitempty" validate:"omitempty,min=0"`
	JenisTagihanIsBulanan  *bool   `json:"jenis_tagihan_is_bulanan,omitempty"`
	JenisTagihanIsActive   *bool   `json:"jenis_tagihan_is_active,omitempty"`
	JenisTagihanNote       *string `json:"jenis_tagihan_note,omitempty"`
}

type JenisTagihanResponse struct {
	JenisTagihanID         uuid.UUID `json:"jenis_tagihan_id"`
	JenisTagihanKode       string    `json:"jenis_tagihan_kode"`
	JenisTagihanNama       string    `json:"jenis_tagihan_nama"`
	JenisTagihanNominalIDR int       `json:"jenis_tagihan_nominal_idr"`
	JenisTagihanIsBulanan  bool      `json:"jenis_tagihan_is_bulanan"`
	JenisTagihanIsActive   bool      `json:"jenis_tagihan_is_active"`
	JenisTagihanNote       *string   `json:"jenis_tagihan_note,omitempty"`
	JenisTagihanCreatedAt  time.Time `json:"jenis_tagihan_created_at"`
	JenisTagihanUpdatedAt  time.Time `json:"jenis_tagihan_updated_at"`
}

func ToJenisTagihanResponse(m kindModel.JenisTagihan) JenisTagihanResponse {
	return JenisTagihanResponse{
		JenisTagihanID:         m.JenisTagihanID,
		JenisTagihanKode:       m.JenisTagihanKode,
		JenisTagihanNama:       m.JenisTagihanNama,
		JenisTagihanNominalIDR: m.JenisTagihanNominalIDR,
		JenisTagihanIsBulanan:  m.JenisTagihanIsBulanan,
		JenisTagihanIsActive:   m.JenisTagihanIsActive,
		JenisTagihanNote:       m.JenisTagihanNote,
		JenisTagihanCreatedAt:  m.JenisTagihanCreatedAt,
		JenisTagihanUpdatedAt:  m.JenisTagihanUpdatedAt,
	}
}

func ToJenisTagihanResponses(list []kindModel.JenisTagihan) []JenisTagihanResponse {
	out := make([]JenisTagihanResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToJenisTagihanResponse(m))
	}
	return out
}

func JenisTagihanCreateDTOToModel(d JenisTagihanCreateDTO) kindModel.JenisTagihan {
	isBulanan := true
	if d.JenisTagihanIsBulanan != nil {
		isBulanan = *d.JenisTagihanIsBulanan
	}
	return kindModel.JenisTagihan{
		JenisTagihanKode:       d.JenisTagihanKode,
		JenisTagihanNama:       d.JenisTagihanNama,
		JenisTagihanNominalIDR: d.JenisTagihanNominalIDR,
		JenisTagihanIsBulanan:  isBulanan,
		JenisTagihanIsActive:   true,
		JenisTagihanNote:       d.JenisTagihanNote,
	}
}

func ApplyJenisTagihanUpdate(m *kindModel.JenisTagihan, d JenisTagihanUpdateDTO) {
	if d.JenisTagihanNama != nil {
		m.JenisTagihanNama = *d.JenisTagihanNama
	}
	if d.JenisTagihanNominalIDR != nil {
		m.JenisTagihanNominalIDR = *d.JenisTagihanNominalIDR
	}
	if d.JenisTagihanIsBulanan != nil {
		m.JenisTagihanIsBulanan = *d.JenisTagihanIsBulanan
	}
	if d.JenisTagihanIsActive != nil {
		m.JenisTagihanIsActive = *d.JenisTagihanIsActive
	}
	if d.JenisTagihanNote != nil {
		m.JenisTagihanNote = d.JenisTagihanNote
	}
}
