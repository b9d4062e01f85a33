// file: internals/features/santri/dto/santri_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	santriModel "pesantrenku_backend/internals/features/santri/model"
)

////////////////////////////////////////////////////////////////////////////////
// SANTRI — DTO
////////////////////////////////////////////////////////////////////////////////

type SantriCreateDTO struct {
	SantriNIS      string   `json:"santri_nis" validate:"required,max=30"`
	SantriNama     string   `json:"santri_nama" validate:"required,max=100"`
	SantriKelas    *string  `json:"santri_kelas,omitempty" validate:"omitempty,max=50"`
	SantriAngkatan *int16   `json:"santri_angkatan,omitempty"`
	SantriNamaWali *string  `json:"santri_nama_wali,omitempty" validate:"omitempty,max=100"`
	SantriTelpWali []string `json:"santri_telp_wali,omitempty" validate:"omitempty,dive,max=20"`
	SantriAlamat   *string  `json:"santri_alamat,omitempty"`
}

// Update (partial)
type SantriUpdateDTO struct {
	SantriNama     *string   `json:"santri_nama,omitempty" validate:"omitempty,max=100"`
	SantriKelas    *string   `json:"santri_kelas,omitempty" validate:"omitempty,max=50"`
	SantriAngkatan *int16    `json:"santri_angkatan,omitempty"`
	SantriNamaWali *string   `json:"santri_nama_wali,omitempty" validate:"omitempty,max=100"`
	SantriTelpWali *[]string `json:"santri_telp_wali,omitempty" validate:"omitempty,dive,max=20"`
	SantriAlamat   *string   `json:"santri_alamat,omitempty"`
	SantriIsActive *bool     `json:"santri_is_active,omitempty"`
}

type SantriResponse struct {
	SantriID       uuid.UUID `json:"santri_id"`
	SantriNIS      string    `json:"santri_nis"`
	SantriNama     string    `json:"santri_nama"`
	SantriKelas    *string   `json:"santri_kelas,omitempty"`
	SantriAngkatan *int16    `json:"santri_angkatan,omitempty"`
	SantriNamaWali *string   `json:"santri_nama_wali,omitempty"`
	SantriTelpWali []string  `json:"santri_telp_wali,omitempty"`
	SantriAlamat   *string   `json:"santri_alamat,omitempty"`
	SantriIsActive bool      `json:"santri_is_active"`
	SantriCreatedAt time.Time `json:"santri_created_at"`
	SantriUpdatedAt time.Time `json:"santri_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToSantriResponse(m santriModel.Santri) SantriResponse {
	return SantriResponse{
		SantriID:        m.SantriID,
		SantriNIS:       m.SantriNIS,
		SantriNama:      m.SantriNama,
		SantriKelas:     m.SantriKelas,
		SantriAngkatan:  m.SantriAngkatan,
		SantriNamaWali:  m.SantriNamaWali,
		SantriTelpWali:  m.SantriTelpWali,
		SantriAlamat:    m.SantriAlamat,
		SantriIsActive:  m.SantriIsActive,
		SantriCreatedAt: m.SantriCreatedAt,
		SantriUpdatedAt: m.SantriUpdatedAt,
	}
}

func ToSantriResponses(list []santriModel.Santri) []SantriResponse {
	out := make([]SantriResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSantriResponse(m))
	}
	return out
}

func SantriCreateDTOToModel(d SantriCreateDTO) santriModel.Santri {
	return santriModel.Santri{
		SantriNIS:      d.SantriNIS,
		SantriNama:     d.SantriNama,
		SantriKelas:    d.SantriKelas,
		SantriAngkatan: d.SantriAngkatan,
		SantriNamaWali: d.SantriNamaWali,
		SantriTelpWali: pq.StringArray(d.SantriTelpWali),
		SantriAlamat:   d.SantriAlamat,
		SantriIsActive: true,
	}
}

// Apply partial, tidak menyentuh NIS (identitas tetap)
func ApplySantriUpdate(m *santriModel.Santri, d SantriUpdateDTO) {
	if d.SantriNama != nil {
		m.SantriNama = *d.SantriNama
	}
	if d.SantriKelas != nil {
		m.SantriKelas = d.SantriKelas
	}
	if d.SantriAngkatan != nil {
		m.SantriAngkatan = d.SantriAngkatan
	}
	if d.SantriNamaWali != nil {
		m.SantriNamaWali = d.SantriNamaWali
	}
	if d.SantriTelpWali != nil {
		m.SantriTelpWali = pq.StringArray(*d.SantriTelpWali)
	}
	if d.SantriAlamat != nil {
		m.SantriAlamat = d.SantriAlamat
	}
	if d.SantriIsActive != nil {
		m.SantriIsActive = *d.SantriIsActive
	}
}
