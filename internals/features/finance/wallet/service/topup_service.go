// file: internals/features/finance/wallet/service/topup_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	kasModel "pesantrenku_backend/internals/features/finance/cashbook/model"
	"pesantrenku_backend/internals/features/finance/wallet/model"
)

/* =========================================================
   Siklus hidup top-up:
     cash     → langsung diterima (uang ada di tangan kasir)
     transfer → menunggu, diputuskan bendahara dari bukti
     gateway  → menunggu, diputuskan webhook Midtrans
   Status diterima/ditolak final; kredit dompet + posting
   buku kas terjadi tepat sekali, saat transisi ke diterima.
========================================================= */

// TerimaTopUp memfinalkan top-up menjadi diterima: kredit dompet +
// posting buku kas, semuanya dalam satu transaksi. Aman dipanggil
// ulang — top-up yang sudah final tidak diproses dua kali.
func TerimaTopUp(ctx context.Context, db *gorm.DB, topupID uuid.UUID, verifikatorID *uuid.UUID, verifikatorNama *string, catatan *string) (model.TopUp, error) {
	var tu model.TopUp

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tu, "topup_id = ?", topupID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "top-up tidak ditemukan")
			}
			return err
		}
		if tu.IsFinal() {
			if tu.TopUpStatus == model.TopUpStatusDiterima {
				return nil // sudah diproses, replay aman
			}
			return fiber.NewError(fiber.StatusConflict, "top-up sudah ditolak")
		}

		now := time.Now()
		tu.TopUpStatus = model.TopUpStatusDiterima
		tu.TopUpDiputuskanAt = &now
		tu.TopUpVerifikatorID = verifikatorID
		tu.TopUpVerifikatorNama = verifikatorNama
		tu.TopUpCatatanVerifikasi = catatan
		if err := tx.Save(&tu).Error; err != nil {
			return err
		}

		if err := kreditWalletTopUp(tx, &tu); err != nil {
			return err
		}
		return postKasTopUp(tx, &tu, now)
	})
	return tu, err
}

// TolakTopUp memfinalkan top-up menjadi ditolak. Tidak ada efek saldo.
func TolakTopUp(ctx context.Context, db *gorm.DB, topupID uuid.UUID, verifikatorID *uuid.UUID, verifikatorNama *string, catatan *string) (model.TopUp, error) {
	var tu model.TopUp

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tu, "topup_id = ?", topupID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "top-up tidak ditemukan")
			}
			return err
		}
		if tu.IsFinal() {
			if tu.TopUpStatus == model.TopUpStatusDitolak {
				return nil
			}
			return fiber.NewError(fiber.StatusConflict, "top-up sudah diterima")
		}

		now := time.Now()
		tu.TopUpStatus = model.TopUpStatusDitolak
		tu.TopUpDiputuskanAt = &now
		tu.TopUpVerifikatorID = verifikatorID
		tu.TopUpVerifikatorNama = verifikatorNama
		tu.TopUpCatatanVerifikasi = catatan
		return tx.Save(&tu).Error
	})
	return tu, err
}

func kreditWalletTopUp(tx *gorm.DB, tu *model.TopUp) error {
	var w model.WalletSantri
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_santri_santri_id = ?", tu.TopUpSantriID).
		First(&w).Error
	if err == gorm.ErrRecordNotFound {
		w = model.WalletSantri{WalletSantriSantriID: tu.TopUpSantriID}
		if err := tx.Create(&w).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	saldoBaru := w.WalletSantriSaldoIDR + tu.TopUpJumlahIDR
	ket := fmt.Sprintf("Top-up %s", tu.TopUpMetode)
	mut := model.WalletTransaksi{
		WalletTransaksiWalletID:        w.WalletSantriID,
		WalletTransaksiArah:            model.WalletArahKredit,
		WalletTransaksiJumlahIDR:       tu.TopUpJumlahIDR,
		WalletTransaksiSumber:          model.WalletSumberTopUp,
		WalletTransaksiRefID:           &tu.TopUpID,
		WalletTransaksiSaldoSesudahIDR: saldoBaru,
		WalletTransaksiKeterangan:      &ket,
	}
	if err := tx.Create(&mut).Error; err != nil {
		return err
	}
	return tx.Model(&model.WalletSantri{}).
		Where("wallet_santri_id = ?", w.WalletSantriID).
		Update("wallet_santri_saldo_idr", saldoBaru).Error
}

func postKasTopUp(tx *gorm.DB, tu *model.TopUp, now time.Time) error {
	// cash masuk laci; transfer & gateway masuk rekening bank
	tipe := kasModel.BukuKasTipeBank
	if tu.TopUpMetode == model.TopUpMetodeCash {
		tipe = kasModel.BukuKasTipeCash
	}

	var kas kasModel.BukuKas
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("buku_kas_tipe = ? AND buku_kas_is_default = TRUE", tipe).
		First(&kas).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("buku kas default tipe %s belum diset", tipe))
		}
		return err
	}

	refTipe := kasModel.MutasiRefTopUp
	ket := fmt.Sprintf("Top-up dompet santri (%s)", tu.TopUpMetode)
	mut := kasModel.BukuKasTransaksi{
		BukuKasTransaksiBukuKasID:  kas.BukuKasID,
		BukuKasTransaksiArah:       kasModel.MutasiMasuk,
		BukuKasTransaksiJumlahIDR:  tu.TopUpJumlahIDR,
		BukuKasTransaksiKategori:   "topup_dompet",
		BukuKasTransaksiKeterangan: &ket,
		BukuKasTransaksiRefTipe:    &refTipe,
		BukuKasTransaksiRefID:      &tu.TopUpID,
		BukuKasTransaksiTanggal:    now,
	}
	if err := tx.Create(&mut).Error; err != nil {
		return err
	}
	return tx.Model(&kasModel.BukuKas{}).
		Where("buku_kas_id = ?", kas.BukuKasID).
		Update("buku_kas_saldo_idr", gorm.Expr("buku_kas_saldo_idr + ?", tu.TopUpJumlahIDR)).Error
}
