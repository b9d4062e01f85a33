// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
	kasModel "pesantrenku_backend/internals/features/finance/cashbook/model"
)

/* =========================================================
   Query laporan — agregat read-only di atas buku kas,
   tagihan, dan kwitansi. Tidak mengubah state apa pun;
   hasilnya dicache pendek di layer controller.
========================================================= */

type Periode struct {
	Dari   time.Time
	Sampai time.Time // inklusif (tanggal)
}

/* ============ Arus kas ============ */

type ArusKasBaris struct {
	BukuKasID     uuid.UUID `json:"buku_kas_id"`
	BukuKasNama   string    `json:"buku_kas_nama"`
	Tipe          string    `json:"tipe"`
	SaldoAwalIDR  int       `json:"saldo_awal_idr"`
	MasukIDR      int       `json:"masuk_idr"`
	KeluarIDR     int       `json:"keluar_idr"`
	SaldoAkhirIDR int       `json:"saldo_akhir_idr"`
}

type ArusKasKategori struct {
	Kategori  string `json:"kategori"`
	Arah      string `json:"arah"`
	JumlahIDR int    `json:"jumlah_idr"`
}

type LaporanArusKas struct {
	Periode        string            `json:"periode"`
	TotalMasukIDR  int               `json:"total_masuk_idr"`
	TotalKeluarIDR int               `json:"total_keluar_idr"`
	PerAkun        []ArusKasBaris    `json:"per_akun"`
	PerKategori    []ArusKasKategori `json:"per_kategori"`
}

func ArusKas(ctx context.Context, db *gorm.DB, p Periode) (LaporanArusKas, error) {
	out := LaporanArusKas{
		Periode:     p.Dari.Format("2006-01-02") + " s/d " + p.Sampai.Format("2006-01-02"),
		PerAkun:     []ArusKasBaris{},
		PerKategori: []ArusKasKategori{},
	}

	// per akun: saldo awal = akumulasi mutasi sebelum periode,
	// saldo akhir = awal + masuk − keluar periode
	err := db.WithContext(ctx).
		Table("buku_kas").
		Select(`buku_kas.buku_kas_id AS buku_kas_id,
			buku_kas.buku_kas_nama AS buku_kas_nama,
			buku_kas.buku_kas_tipe AS tipe,
			COALESCE(SUM(CASE WHEN t.buku_kas_transaksi_tanggal < ?
				THEN (CASE WHEN t.buku_kas_transaksi_arah = 'masuk' THEN t.buku_kas_transaksi_jumlah_idr ELSE -t.buku_kas_transaksi_jumlah_idr END)
				ELSE 0 END), 0) AS saldo_awal_idr,
			COALESCE(SUM(CASE WHEN t.buku_kas_transaksi_tanggal BETWEEN ? AND ? AND t.buku_kas_transaksi_arah = 'masuk'
				THEN t.buku_kas_transaksi_jumlah_idr ELSE 0 END), 0) AS masuk_idr,
			COALESCE(SUM(CASE WHEN t.buku_kas_transaksi_tanggal BETWEEN ? AND ? AND t.buku_kas_transaksi_arah = 'keluar'
				THEN t.buku_kas_transaksi_jumlah_idr ELSE 0 END), 0) AS keluar_idr`,
			p.Dari, p.Dari, p.Sampai, p.Dari, p.Sampai).
		Joins(`LEFT JOIN buku_kas_transaksi t
			ON t.buku_kas_transaksi_buku_kas_id = buku_kas.buku_kas_id
			AND t.buku_kas_transaksi_deleted_at IS NULL`).
		Where("buku_kas.buku_kas_deleted_at IS NULL").
		Group("buku_kas.buku_kas_id, buku_kas.buku_kas_nama, buku_kas.buku_kas_tipe").
		Order("buku_kas.buku_kas_tipe ASC, buku_kas.buku_kas_nama ASC").
		Scan(&out.PerAkun).Error
	if err != nil {
		return out, err
	}
	for i := range out.PerAkun {
		b := &out.PerAkun[i]
		b.SaldoAkhirIDR = b.SaldoAwalIDR + b.MasukIDR - b.KeluarIDR
		out.TotalMasukIDR += b.MasukIDR
		out.TotalKeluarIDR += b.KeluarIDR
	}

	err = db.WithContext(ctx).
		Model(&kasModel.BukuKasTransaksi{}).
		Select(`buku_kas_transaksi_kategori AS kategori,
			buku_kas_transaksi_arah AS arah,
			COALESCE(SUM(buku_kas_transaksi_jumlah_idr), 0) AS jumlah_idr`).
		Where("buku_kas_transaksi_tanggal BETWEEN ? AND ?", p.Dari, p.Sampai).
		Group("buku_kas_transaksi_kategori, buku_kas_transaksi_arah").
		Order("jumlah_idr DESC").
		Scan(&out.PerKategori).Error
	return out, err
}

/* ============ Pemasukan per jenis tagihan ============ */

type PemasukanJenisBaris struct {
	JenisKode       string `json:"jenis_kode"`
	JenisNama       string `json:"jenis_nama"`
	JumlahTransaksi int    `json:"jumlah_transaksi"`
	TerkumpulIDR    int    `json:"terkumpul_idr"`
}

type PengeluaranBaris struct {
	Kategori  string `json:"kategori"`
	JumlahIDR int    `json:"jumlah_idr"`
}

type LaporanPemasukan struct {
	Periode        string                `json:"periode"`
	TotalIDR       int                   `json:"total_idr"`
	TopUpIDR       int                   `json:"topup_idr"`
	PengeluaranIDR int                   `json:"pengeluaran_idr"`
	NetIDR         int                   `json:"net_idr"`
	PerJenis       []PemasukanJenisBaris `json:"per_jenis"`
	PerPengeluaran []PengeluaranBaris    `json:"per_pengeluaran"`
}

func Pemasukan(ctx context.Context, db *gorm.DB, p Periode) (LaporanPemasukan, error) {
	out := LaporanPemasukan{
		Periode:        p.Dari.Format("2006-01-02") + " s/d " + p.Sampai.Format("2006-01-02"),
		PerJenis:       []PemasukanJenisBaris{},
		PerPengeluaran: []PengeluaranBaris{},
	}
	batasAtas := p.Sampai.AddDate(0, 0, 1)

	// pembayaran tagihan per jenis (snapshot kode/nama di baris tagihan)
	err := db.WithContext(ctx).
		Table("pembayaran").
		Select(`tg.tagihan_jenis_kode_snapshot AS jenis_kode,
			tg.tagihan_jenis_nama_snapshot AS jenis_nama,
			COUNT(*) AS jumlah_transaksi,
			COALESCE(SUM(pembayaran.pembayaran_jumlah_idr), 0) AS terkumpul_idr`).
		Joins("JOIN tagihan tg ON tg.tagihan_id = pembayaran.pembayaran_tagihan_id").
		Where("pembayaran.pembayaran_created_at >= ? AND pembayaran.pembayaran_created_at < ?", p.Dari, batasAtas).
		Group("tg.tagihan_jenis_kode_snapshot, tg.tagihan_jenis_nama_snapshot").
		Order("terkumpul_idr DESC").
		Scan(&out.PerJenis).Error
	if err != nil {
		return out, err
	}
	for _, b := range out.PerJenis {
		out.TotalIDR += b.TerkumpulIDR
	}

	// top-up yang diterima pada periode (pakai waktu keputusan)
	var topup int
	if err := db.WithContext(ctx).
		Table("topup").
		Select("COALESCE(SUM(topup_jumlah_idr), 0)").
		Where("topup_status = 'diterima' AND topup_diputuskan_at >= ? AND topup_diputuskan_at < ?", p.Dari, batasAtas).
		Scan(&topup).Error; err != nil {
		return out, err
	}
	out.TopUpIDR = topup

	// pengeluaran per kategori dari mutasi buku kas arah keluar
	err = db.WithContext(ctx).
		Model(&kasModel.BukuKasTransaksi{}).
		Select(`buku_kas_transaksi_kategori AS kategori,
			COALESCE(SUM(buku_kas_transaksi_jumlah_idr), 0) AS jumlah_idr`).
		Where("buku_kas_transaksi_arah = ? AND buku_kas_transaksi_tanggal BETWEEN ? AND ?",
			kasModel.MutasiKeluar, p.Dari, p.Sampai).
		Group("buku_kas_transaksi_kategori").
		Order("jumlah_idr DESC").
		Scan(&out.PerPengeluaran).Error
	if err != nil {
		return out, err
	}
	for _, b := range out.PerPengeluaran {
		out.PengeluaranIDR += b.JumlahIDR
	}
	out.NetIDR = out.TotalIDR + out.TopUpIDR - out.PengeluaranIDR
	return out, nil
}

/* ============ Tunggakan ============ */

type TunggakanBaris struct {
	SantriID   uuid.UUID `json:"santri_id"`
	SantriNIS  string    `json:"santri_nis"`
	SantriNama string    `json:"santri_nama"`
	Kelas      *string   `json:"kelas,omitempty"`
	JumlahBill int       `json:"jumlah_tagihan"`
	SisaIDR    int       `json:"sisa_idr"`
}

type LaporanTunggakan struct {
	TotalSisaIDR int              `json:"total_sisa_idr"`
	JumlahSantri int              `json:"jumlah_santri"`
	PerSantri    []TunggakanBaris `json:"per_santri"`
}

// Tunggakan: tagihan menunggak (jatuh tempo lewat, sisa > 0),
// diringkas per santri. Filter kelas dan kode jenis opsional.
func Tunggakan(ctx context.Context, db *gorm.DB, kelas, jenisKode string) (LaporanTunggakan, error) {
	out := LaporanTunggakan{PerSantri: []TunggakanBaris{}}

	q := db.WithContext(ctx).
		Model(&tagihanModel.Tagihan{}).
		Select(`santri.santri_id AS santri_id,
			santri.santri_nis AS santri_nis,
			santri.santri_nama AS santri_nama,
			santri.santri_kelas AS kelas,
			COUNT(*) AS jumlah_tagihan,
			COALESCE(SUM(tagihan.tagihan_sisa_idr), 0) AS sisa_idr`).
		Joins("JOIN santri ON santri.santri_id = tagihan.tagihan_santri_id").
		Where("tagihan.tagihan_menunggak = TRUE AND tagihan.tagihan_sisa_idr > 0").
		Group("santri.santri_id, santri.santri_nis, santri.santri_nama, santri.santri_kelas").
		Order("sisa_idr DESC")
	if kelas != "" {
		q = q.Where("santri.santri_kelas = ?", kelas)
	}
	if jenisKode != "" {
		q = q.Where("tagihan.tagihan_jenis_kode_snapshot = ?", jenisKode)
	}

	if err := q.Scan(&out.PerSantri).Error; err != nil {
		return out, err
	}
	out.JumlahSantri = len(out.PerSantri)
	for _, b := range out.PerSantri {
		out.TotalSisaIDR += b.SisaIDR
	}
	return out, nil
}
