// file: internals/features/finance/payments/service/reconcile.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
	kasModel "pesantrenku_backend/internals/features/finance/cashbook/model"
	"pesantrenku_backend/internals/features/finance/payments/model"
	walletModel "pesantrenku_backend/internals/features/finance/wallet/model"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

/* =========================================================
   Rekonsiliasi pembayaran tagihan.
   Seluruh operasi (lock tagihan → alokasi → pembayaran +
   kwitansi → update tagihan → posting buku kas → kredit
   dompet) berjalan dalam SATU transaksi; gagal di tengah
   berarti tidak ada baris yang tersisa.
========================================================= */

type ReconcileInput struct {
	SantriID       uuid.UUID
	TagihanIDs     []uuid.UUID
	JumlahBayarIDR int
	Metode         string // cash | transfer
	Mode           string // penuh | sebagian
	KembalianKe    string // cash | wallet (default cash)
	IdempotencyKey string
	PetugasID      uuid.UUID
	PetugasNama    string
}

// ReconcileResult: state otoritatif yang dikembalikan ke klien.
type ReconcileResult struct {
	Kwitansi model.Kwitansi
	Lines    []AlokasiLine
	Replayed bool // true jika idempotency key sudah pernah diproses
}

/* ============ Snapshot kwitansi (value object, beku) ============ */

type SnapshotLine struct {
	TagihanID      uuid.UUID `json:"tagihan_id"`
	JenisKode      string    `json:"jenis_kode"`
	JenisNama      string    `json:"jenis_nama"`
	Bulan          int16     `json:"bulan"`
	Tahun          int16     `json:"tahun"`
	NominalIDR     int       `json:"nominal_idr"`
	JumlahIDR      int       `json:"jumlah_idr"`
	SisaSebelumIDR int       `json:"sisa_sebelum_idr"`
	SisaSesudahIDR int       `json:"sisa_sesudah_idr"`
	StatusSesudah  string    `json:"status_sesudah"`
}

type KwitansiSnapshot struct {
	SantriID        uuid.UUID      `json:"santri_id"`
	SantriNIS       string         `json:"santri_nis"`
	SantriNama      string         `json:"santri_nama"`
	SantriKelas     *string        `json:"santri_kelas,omitempty"`
	Lines           []SnapshotLine `json:"lines"`
	TotalAlokasiIDR int            `json:"total_alokasi_idr"`
	JumlahBayarIDR  int            `json:"jumlah_bayar_idr"`
	KembalianIDR    int            `json:"kembalian_idr"`
	KembalianKe     string         `json:"kembalian_ke"`
	Metode          string         `json:"metode"`
	Mode            string         `json:"mode"`
	PetugasNama     string         `json:"petugas_nama"`
	DibuatAt        time.Time      `json:"dibuat_at"`
}

// Reconcile menerapkan jumlah bayar ke tagihan terpilih milik satu santri.
func Reconcile(ctx context.Context, db *gorm.DB, in ReconcileInput) (ReconcileResult, error) {
	var out ReconcileResult

	if err := validateReconcileInput(&in); err != nil {
		return out, err
	}

	// Replay cepat tanpa transaksi: key yang sudah diproses
	// mengembalikan kwitansi lama apa adanya.
	if in.IdempotencyKey != "" {
		if kw, ok, err := findByIdempotencyKey(ctx, db, in.IdempotencyKey); err != nil {
			return out, err
		} else if ok {
			return ReconcileResult{Kwitansi: kw, Replayed: true}, nil
		}
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Santri harus ada (dan jadi bahan snapshot).
		var santri santriModel.Santri
		if err := tx.First(&santri, "santri_id = ?", in.SantriID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "santri tidak ditemukan")
			}
			return err
		}

		// 2) Lock baris tagihan (FOR UPDATE) supaya pembayaran
		// bersamaan terhadap tagihan yang sama tidak over-allocate.
		var rows []tagihanModel.Tagihan
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tagihan_id IN ?", in.TagihanIDs).
			Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) != len(in.TagihanIDs) {
			return fiber.NewError(fiber.StatusNotFound, "ada tagihan yang tidak ditemukan")
		}

		// urutkan ulang sesuai urutan pilihan kasir (urutan alokasi)
		byID := make(map[uuid.UUID]*tagihanModel.Tagihan, len(rows))
		for i := range rows {
			byID[rows[i].TagihanID] = &rows[i]
		}
		ordered := make([]*tagihanModel.Tagihan, 0, len(in.TagihanIDs))
		saldo := make([]SaldoTagihan, 0, len(in.TagihanIDs))
		for _, id := range in.TagihanIDs {
			t := byID[id]
			if t.TagihanSantriID != in.SantriID {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "ada tagihan yang bukan milik santri ini")
			}
			ordered = append(ordered, t)
			saldo = append(saldo, SaldoTagihan{
				TagihanID:  t.TagihanID,
				NominalIDR: t.TagihanNominalIDR,
				SisaIDR:    t.TagihanSisaIDR,
			})
		}

		// 3) Rencana alokasi (murni).
		rencana, err := BuildRencana(saldo, in.JumlahBayarIDR, in.Mode)
		if err != nil {
			return err
		}

		// 4) Kwitansi + snapshot beku.
		now := time.Now()
		snap := KwitansiSnapshot{
			SantriID:        santri.SantriID,
			SantriNIS:       santri.SantriNIS,
			SantriNama:      santri.SantriNama,
			SantriKelas:     santri.SantriKelas,
			TotalAlokasiIDR: rencana.TotalAlokasiIDR,
			JumlahBayarIDR:  in.JumlahBayarIDR,
			KembalianIDR:    rencana.KembalianIDR,
			KembalianKe:     in.KembalianKe,
			Metode:          in.Metode,
			Mode:            in.Mode,
			PetugasNama:     in.PetugasNama,
			DibuatAt:        now,
		}
		lineByID := make(map[uuid.UUID]AlokasiLine, len(rencana.Lines))
		for _, l := range rencana.Lines {
			lineByID[l.TagihanID] = l
			t := byID[l.TagihanID]
			snap.Lines = append(snap.Lines, SnapshotLine{
				TagihanID:      l.TagihanID,
				JenisKode:      t.TagihanJenisKodeSnapshot,
				JenisNama:      t.TagihanJenisNamaSnapshot,
				Bulan:          t.TagihanBulan,
				Tahun:          t.TagihanTahun,
				NominalIDR:     t.TagihanNominalIDR,
				JumlahIDR:      l.JumlahIDR,
				SisaSebelumIDR: l.SisaSebelumIDR,
				SisaSesudahIDR: l.SisaSesudahIDR,
				StatusSesudah:  string(l.StatusSesudah),
			})
		}
		snapJSON, err := json.Marshal(snap)
		if err != nil {
			return err
		}

		nomor, err := nextKwitansiNomor(tx, now)
		if err != nil {
			return err
		}

		kw := model.Kwitansi{
			KwitansiNomor:           nomor,
			KwitansiSantriID:        in.SantriID,
			KwitansiTotalAlokasiIDR: rencana.TotalAlokasiIDR,
			KwitansiJumlahBayarIDR:  in.JumlahBayarIDR,
			KwitansiKembalianIDR:    rencana.KembalianIDR,
			KwitansiMetode:          in.Metode,
			KwitansiMode:            in.Mode,
			KwitansiKembalianKe:     in.KembalianKe,
			KwitansiSnapshot:        datatypes.JSON(snapJSON),
			KwitansiPetugasID:       in.PetugasID,
			KwitansiPetugasNama:     in.PetugasNama,
		}
		if in.IdempotencyKey != "" {
			kw.KwitansiIdempotencyKey = &in.IdempotencyKey
		}
		if err := tx.Create(&kw).Error; err != nil {
			return err
		}

		// 5) Baris pembayaran immutable + update ledger tagihan.
		for _, t := range ordered {
			l, ok := lineByID[t.TagihanID]
			if !ok {
				// mode sebagian: jumlah bayar habis sebelum tagihan ini
				continue
			}
			p := model.Pembayaran{
				PembayaranKwitansiID:     kw.KwitansiID,
				PembayaranTagihanID:      t.TagihanID,
				PembayaranSantriID:       in.SantriID,
				PembayaranJumlahIDR:      l.JumlahIDR,
				PembayaranSisaSebelumIDR: l.SisaSebelumIDR,
				PembayaranSisaSesudahIDR: l.SisaSesudahIDR,
				PembayaranMetode:         in.Metode,
				PembayaranPetugasID:      in.PetugasID,
				PembayaranPetugasNama:    in.PetugasNama,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}

			updates := map[string]any{
				"tagihan_dibayar_idr": gorm.Expr("tagihan_dibayar_idr + ?", l.JumlahIDR),
				"tagihan_sisa_idr":    l.SisaSesudahIDR,
				"tagihan_status":      l.StatusSesudah,
				"tagihan_updated_at":  now,
			}
			if l.SisaSesudahIDR == 0 {
				updates["tagihan_menunggak"] = false
			}
			if err := tx.Model(&tagihanModel.Tagihan{}).
				Where("tagihan_id = ?", t.TagihanID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		// 6) Posting buku kas: uang yang masuk laci/rekening.
		// Kembalian ke dompet berarti uang fisiknya tetap diterima,
		// jadi ikut disetor; kembalian cash dikembalikan ke wali.
		masuk := rencana.TotalAlokasiIDR
		if rencana.KembalianIDR > 0 && in.KembalianKe == model.KembalianKeWallet {
			masuk += rencana.KembalianIDR
		}
		ket := fmt.Sprintf("Pembayaran tagihan %s (%s)", santri.SantriNama, nomor)
		if err := postKasMasuk(tx, in.Metode, masuk, "pembayaran_tagihan", kasModel.MutasiRefKwitansi, kw.KwitansiID, ket, in.PetugasID, in.PetugasNama, now); err != nil {
			return err
		}

		// 7) Kembalian → dompet santri (dalam transaksi yang sama).
		if rencana.KembalianIDR > 0 && in.KembalianKe == model.KembalianKeWallet {
			if err := kreditWallet(tx, in.SantriID, rencana.KembalianIDR, walletModel.WalletSumberKembalian, kw.KwitansiID,
				fmt.Sprintf("Kembalian kwitansi %s", nomor)); err != nil {
				return err
			}
		}

		out.Kwitansi = kw
		out.Lines = rencana.Lines
		return nil
	})
	if err != nil {
		// Dua submit dengan key sama yang balapan: yang kalah unique index
		// membaca ulang kwitansi pemenang.
		if in.IdempotencyKey != "" && helper.IsUniqueViolation(err) {
			if kw, ok, ferr := findByIdempotencyKey(ctx, db, in.IdempotencyKey); ferr == nil && ok {
				return ReconcileResult{Kwitansi: kw, Replayed: true}, nil
			}
		}
		return out, err
	}
	return out, nil
}

func validateReconcileInput(in *ReconcileInput) error {
	if in.SantriID == uuid.Nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "santri_id wajib diisi")
	}
	if len(in.TagihanIDs) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "tidak ada tagihan dipilih")
	}
	seen := make(map[uuid.UUID]struct{}, len(in.TagihanIDs))
	for _, id := range in.TagihanIDs {
		if _, dup := seen[id]; dup {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "tagihan duplikat dalam pilihan")
		}
		seen[id] = struct{}{}
	}
	if in.Metode != model.PembayaranMetodeCash && in.Metode != model.PembayaranMetodeTransfer {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "metode harus cash atau transfer")
	}
	if in.KembalianKe == "" {
		in.KembalianKe = model.KembalianKeCash
	}
	if in.KembalianKe != model.KembalianKeCash && in.KembalianKe != model.KembalianKeWallet {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "kembalian_ke harus cash atau wallet")
	}
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	return nil
}

func findByIdempotencyKey(ctx context.Context, db *gorm.DB, key string) (model.Kwitansi, bool, error) {
	var kw model.Kwitansi
	err := db.WithContext(ctx).
		First(&kw, "kwitansi_idempotency_key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return kw, false, nil
	}
	if err != nil {
		return kw, false, err
	}
	return kw, true, nil
}

// nextKwitansiNomor: KW-YYYYMM-NNNN, urut per bulan. Dihitung di dalam
// transaksi; tabrakan nomor (sangat jarang) tertangkap unique index dan
// request bisa diulang dengan idempotency key yang sama.
func nextKwitansiNomor(tx *gorm.DB, now time.Time) (string, error) {
	awalBulan := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var n int64
	if err := tx.Model(&model.Kwitansi{}).
		Where("kwitansi_created_at >= ?", awalBulan).
		Count(&n).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("KW-%s-%04d", now.Format("200601"), n+1), nil
}

// postKasMasuk menulis mutasi otomatis ke buku kas default sesuai metode
// (cash → akun cash, transfer → akun bank) dan menggeser saldonya.
func postKasMasuk(tx *gorm.DB, metode string, jumlah int, kategori, refTipe string, refID uuid.UUID, ket string, petugasID uuid.UUID, petugasNama string, now time.Time) error {
	if jumlah <= 0 {
		return nil
	}
	tipe := kasModel.BukuKasTipeCash
	if metode == model.PembayaranMetodeTransfer {
		tipe = kasModel.BukuKasTipeBank
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

	mut := kasModel.BukuKasTransaksi{
		BukuKasTransaksiBukuKasID:   kas.BukuKasID,
		BukuKasTransaksiArah:        kasModel.MutasiMasuk,
		BukuKasTransaksiJumlahIDR:   jumlah,
		BukuKasTransaksiKategori:    kategori,
		BukuKasTransaksiKeterangan:  &ket,
		BukuKasTransaksiRefTipe:     &refTipe,
		BukuKasTransaksiRefID:       &refID,
		BukuKasTransaksiTanggal:     now,
		BukuKasTransaksiPetugasID:   &petugasID,
		BukuKasTransaksiPetugasNama: &petugasNama,
	}
	if err := tx.Create(&mut).Error; err != nil {
		return err
	}
	return tx.Model(&kasModel.BukuKas{}).
		Where("buku_kas_id = ?", kas.BukuKasID).
		Update("buku_kas_saldo_idr", gorm.Expr("buku_kas_saldo_idr + ?", jumlah)).Error
}

// kreditWallet menambah saldo dompet santri + baris mutasi immutable.
// Dompet dibuat on-demand saat kredit pertama.
func kreditWallet(tx *gorm.DB, santriID uuid.UUID, jumlah int, sumber string, refID uuid.UUID, ket string) error {
	var w walletModel.WalletSantri
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_santri_santri_id = ?", santriID).
		First(&w).Error
	if err == gorm.ErrRecordNotFound {
		w = walletModel.WalletSantri{WalletSantriSantriID: santriID}
		if err := tx.Create(&w).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	saldoBaru := w.WalletSantriSaldoIDR + jumlah
	mut := walletModel.WalletTransaksi{
		WalletTransaksiWalletID:        w.WalletSantriID,
		WalletTransaksiArah:            walletModel.WalletArahKredit,
		WalletTransaksiJumlahIDR:       jumlah,
		WalletTransaksiSumber:          sumber,
		WalletTransaksiRefID:           &refID,
		WalletTransaksiSaldoSesudahIDR: saldoBaru,
		WalletTransaksiKeterangan:      &ket,
	}
	if err := tx.Create(&mut).Error; err != nil {
		return err
	}
	return tx.Model(&walletModel.WalletSantri{}).
		Where("wallet_santri_id = ?", w.WalletSantriID).
		Update("wallet_santri_saldo_idr", saldoBaru).Error
}
