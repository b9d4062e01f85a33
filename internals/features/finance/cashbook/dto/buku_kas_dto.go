// file: internals/features/finance/cashbook/dto/buku_kas_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/finance/cashbook/model"
)

/* =========================
   REQUEST DTO
========================= */

type BukuKasCreateDTO struct {
	Nama       string     `json:"nama" validate:"required,min=2,max=100"`
	Tipe       string     `json:"tipe" validate:"required,oneof=cash bank"`
	IsDefault  bool       `json:"is_default"`
	RekeningID *uuid.UUID `json:"rekening_id"`
}

type BukuKasUpdateDTO struct {
	Nama       *string    `json:"nama" validate:"omitempty,min=2,max=100"`
	IsDefault  *bool      `json:"is_default"`
	RekeningID *uuid.UUID `json:"rekening_id"`
}

// MutasiCreateDTO: entri manual (operasional, gaji, dll).
// Entri otomatis dari kwitansi/top-up tidak lewat endpoint ini.
type MutasiCreateDTO struct {
	BukuKasID  uuid.UUID `json:"buku_kas_id" validate:"required"`
	Arah       string    `json:"arah" validate:"required,oneof=masuk keluar"`
	JumlahIDR  int       `json:"jumlah_idr" validate:"required,gt=0"`
	Kategori   string    `json:"kategori" validate:"required,min=2,max=50"`
	Keterangan *string   `json:"keterangan"`
	Tanggal    string    `json:"tanggal" validate:"required,datetime=2006-01-02"`
}

type MutasiUpdateDTO struct {
	Kategori   *string `json:"kategori" validate:"omitempty,min=2,max=50"`
	Keterangan *string `json:"keterangan"`
	Tanggal    *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
}

type RekeningCreateDTO struct {
	NamaBank string `json:"nama_bank" validate:"required,min=2,max=50"`
	Nomor    string `json:"nomor" validate:"required,min=5,max=30"`
	AtasNama string `json:"atas_nama" validate:"required,min=2,max=100"`
}

type RekeningUpdateDTO struct {
	NamaBank *string `json:"nama_bank" validate:"omitempty,min=2,max=50"`
	AtasNama *string `json:"atas_nama" validate:"omitempty,min=2,max=100"`
	IsActive *bool   `json:"is_active"`
}

/* =========================
   RESPONSE DTO
========================= */

type BukuKasResponse struct {
	BukuKasID  uuid.UUID  `json:"buku_kas_id"`
	Nama       string     `json:"nama"`
	Tipe       string     `json:"tipe"`
	IsDefault  bool       `json:"is_default"`
	RekeningID *uuid.UUID `json:"rekening_id,omitempty"`
	SaldoIDR   int        `json:"saldo_idr"`
	CreatedAt  time.Time  `json:"created_at"`
}

type MutasiResponse struct {
	MutasiID    uuid.UUID  `json:"mutasi_id"`
	BukuKasID   uuid.UUID  `json:"buku_kas_id"`
	Arah        string     `json:"arah"`
	JumlahIDR   int        `json:"jumlah_idr"`
	Kategori    string     `json:"kategori"`
	Keterangan  *string    `json:"keterangan,omitempty"`
	RefTipe     *string    `json:"ref_tipe,omitempty"`
	RefID       *uuid.UUID `json:"ref_id,omitempty"`
	Tanggal     time.Time  `json:"tanggal"`
	PetugasNama *string    `json:"petugas_nama,omitempty"`
	IsOtomatis  bool       `json:"is_otomatis"`
	CreatedAt   time.Time  `json:"created_at"`
}

type RekeningResponse struct {
	RekeningID uuid.UUID `json:"rekening_id"`
	NamaBank   string    `json:"nama_bank"`
	Nomor      string    `json:"nomor"`
	AtasNama   string    `json:"atas_nama"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

/* =========================
   MAPPERS
========================= */

func ToBukuKasResponse(m *model.BukuKas) BukuKasResponse {
	return BukuKasResponse{
		BukuKasID:  m.BukuKasID,
		Nama:       m.BukuKasNama,
		Tipe:       string(m.BukuKasTipe),
		IsDefault:  m.BukuKasIsDefault,
		RekeningID: m.BukuKasRekeningID,
		SaldoIDR:   m.BukuKasSaldoIDR,
		CreatedAt:  m.BukuKasCreatedAt,
	}
}

func ToBukuKasResponses(list []model.BukuKas) []BukuKasResponse {
	out := make([]BukuKasResponse, 0, len(list))
	for i := range list {
		out = append(out, ToBukuKasResponse(&list[i]))
	}
	return out
}

func ToMutasiResponse(m *model.BukuKasTransaksi) MutasiResponse {
	return MutasiResponse{
		MutasiID:    m.BukuKasTransaksiID,
		BukuKasID:   m.BukuKasTransaksiBukuKasID,
		Arah:        string(m.BukuKasTransaksiArah),
		JumlahIDR:   m.BukuKasTransaksiJumlahIDR,
		Kategori:    m.BukuKasTransaksiKategori,
		Keterangan:  m.BukuKasTransaksiKeterangan,
		RefTipe:     m.BukuKasTransaksiRefTipe,
		RefID:       m.BukuKasTransaksiRefID,
		Tanggal:     m.BukuKasTransaksiTanggal,
		PetugasNama: m.BukuKasTransaksiPetugasNama,
		IsOtomatis:  m.IsOtomatis(),
		CreatedAt:   m.BukuKasTransaksiCreatedAt,
	}
}

func ToMutasiResponses(list []model.BukuKasTransaksi) []MutasiResponse {
	out := make([]MutasiResponse, 0, len(list))
	for i := range list {
		out = append(out, ToMutasiResponse(&list[i]))
	}
	return out
}

func ToRekeningResponse(m *model.RekeningBank) RekeningResponse {
	return RekeningResponse{
		RekeningID: m.RekeningBankID,
		NamaBank:   m.RekeningBankNamaBank,
		Nomor:      m.RekeningBankNomor,
		AtasNama:   m.RekeningBankAtasNama,
		IsActive:   m.RekeningBankIsActive,
		CreatedAt:  m.RekeningBankCreatedAt,
	}
}

func ToRekeningResponses(list []model.RekeningBank) []RekeningResponse {
	out := make([]RekeningResponse, 0, len(list))
	for i := range list {
		out = append(out, ToRekeningResponse(&list[i]))
	}
	return out
}
