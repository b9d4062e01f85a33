// file: internals/features/finance/payments/service/plan.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
	"pesantrenku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Perencana alokasi — murni, tanpa DB.
   Dipisah dari Reconcile supaya aturan bisnisnya bisa
   diuji tanpa postgres.
========================================================= */

// SaldoTagihan: potret ledger satu tagihan saat direncanakan.
type SaldoTagihan struct {
	TagihanID  uuid.UUID
	NominalIDR int
	SisaIDR    int
}

// AlokasiLine: kontribusi satu tagihan pada satu kwitansi.
type AlokasiLine struct {
	TagihanID      uuid.UUID
	JumlahIDR      int
	SisaSebelumIDR int
	SisaSesudahIDR int
	StatusSesudah  tagihanModel.TagihanStatus
}

type RencanaAlokasi struct {
	Lines           []AlokasiLine
	TotalAlokasiIDR int
	KembalianIDR    int
}

// BuildRencana menghitung alokasi deterministik untuk tagihan terpilih
// pada urutan yang diberikan.
//
// Mode penuh: jumlah bayar harus >= Σ sisa; semua tagihan lunas,
// kembalian = jumlah − Σ sisa.
//
// Mode sebagian: jalan berurutan, alokasikan min(sisa yang belum
// teralokasi, sisa tagihan). Surplus setelah semua tagihan lunas
// TIDAK ditolak — diperlakukan sama dengan kembalian mode penuh,
// supaya alur kasir seragam.
//
// Transisi status monoton belum_bayar → sebagian → lunas; sisa tidak
// pernah negatif; Σ jumlah per tagihan tidak pernah melebihi sisa awal.
func BuildRencana(tagihan []SaldoTagihan, jumlahBayarIDR int, mode string) (RencanaAlokasi, error) {
	var rencana RencanaAlokasi

	if len(tagihan) == 0 {
		return rencana, fiber.NewError(fiber.StatusUnprocessableEntity, "tidak ada tagihan dipilih")
	}
	if jumlahBayarIDR <= 0 {
		return rencana, fiber.NewError(fiber.StatusUnprocessableEntity, "jumlah bayar harus lebih dari 0")
	}
	if mode != model.PembayaranModePenuh && mode != model.PembayaranModeSebagian {
		return rencana, fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("mode tidak dikenal: %s", mode))
	}

	totalSisa := 0
	for _, t := range tagihan {
		if t.SisaIDR <= 0 {
			return rencana, fiber.NewError(fiber.StatusUnprocessableEntity, "ada tagihan yang sudah lunas dalam pilihan")
		}
		if t.SisaIDR > t.NominalIDR {
			return rencana, fiber.NewError(fiber.StatusInternalServerError, "ledger tagihan korup: sisa melebihi nominal")
		}
		totalSisa += t.SisaIDR
	}

	if mode == model.PembayaranModePenuh && jumlahBayarIDR < totalSisa {
		return rencana, fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("jumlah bayar kurang: butuh %d, diterima %d", totalSisa, jumlahBayarIDR))
	}

	sisaAlokasi := jumlahBayarIDR
	for _, t := range tagihan {
		if sisaAlokasi <= 0 {
			break
		}
		pakai := t.SisaIDR
		if mode == model.PembayaranModeSebagian && sisaAlokasi < pakai {
			pakai = sisaAlokasi
		}
		sisaSesudah := t.SisaIDR - pakai
		rencana.Lines = append(rencana.Lines, AlokasiLine{
			TagihanID:      t.TagihanID,
			JumlahIDR:      pakai,
			SisaSebelumIDR: t.SisaIDR,
			SisaSesudahIDR: sisaSesudah,
			StatusSesudah:  tagihanModel.StatusFromSisa(t.NominalIDR, sisaSesudah),
		})
		rencana.TotalAlokasiIDR += pakai
		sisaAlokasi -= pakai
	}

	rencana.KembalianIDR = jumlahBayarIDR - rencana.TotalAlokasiIDR
	return rencana, nil
}
