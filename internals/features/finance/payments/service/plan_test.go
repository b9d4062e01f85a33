// file: internals/features/finance/payments/service/plan_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	tagihanModel "pesantrenku_backend/internals/features/finance/bills/model"
	"pesantrenku_backend/internals/features/finance/payments/model"
)

func saldo(nominal, sisa int) SaldoTagihan {
	return SaldoTagihan{TagihanID: uuid.New(), NominalIDR: nominal, SisaIDR: sisa}
}

func TestBuildRencanaPenuh(t *testing.T) {
	spp := saldo(300000, 300000)
	makan := saldo(200000, 200000)

	rencana, err := BuildRencana([]SaldoTagihan{spp, makan}, 500000, model.PembayaranModePenuh)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}

	if rencana.TotalAlokasiIDR != 500000 {
		t.Errorf("total alokasi = %d, mau 500000", rencana.TotalAlokasiIDR)
	}
	if rencana.KembalianIDR != 0 {
		t.Errorf("kembalian = %d, mau 0", rencana.KembalianIDR)
	}
	if len(rencana.Lines) != 2 {
		t.Fatalf("lines = %d, mau 2", len(rencana.Lines))
	}
	for i, l := range rencana.Lines {
		if l.SisaSesudahIDR != 0 {
			t.Errorf("line %d sisa sesudah = %d, mau 0", i, l.SisaSesudahIDR)
		}
		if l.StatusSesudah != tagihanModel.TagihanStatusLunas {
			t.Errorf("line %d status = %s, mau lunas", i, l.StatusSesudah)
		}
	}
}

func TestBuildRencanaPenuhDenganKembalian(t *testing.T) {
	rencana, err := BuildRencana([]SaldoTagihan{saldo(300000, 300000)}, 350000, model.PembayaranModePenuh)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}
	if rencana.TotalAlokasiIDR != 300000 {
		t.Errorf("total alokasi = %d, mau 300000", rencana.TotalAlokasiIDR)
	}
	if rencana.KembalianIDR != 50000 {
		t.Errorf("kembalian = %d, mau 50000", rencana.KembalianIDR)
	}
}

func TestBuildRencanaSebagianBerurutan(t *testing.T) {
	spp := saldo(300000, 300000)
	makan := saldo(200000, 200000)

	// 400000 atas 300000+200000: tagihan pertama lunas,
	// kedua kebagian 100000 dan tetap satu baris
	rencana, err := BuildRencana([]SaldoTagihan{spp, makan}, 400000, model.PembayaranModeSebagian)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}

	if rencana.TotalAlokasiIDR != 400000 {
		t.Errorf("total alokasi = %d, mau 400000", rencana.TotalAlokasiIDR)
	}
	if rencana.KembalianIDR != 0 {
		t.Errorf("kembalian = %d, mau 0", rencana.KembalianIDR)
	}
	if len(rencana.Lines) != 2 {
		t.Fatalf("lines = %d, mau 2", len(rencana.Lines))
	}

	first := rencana.Lines[0]
	if first.TagihanID != spp.TagihanID || first.JumlahIDR != 300000 || first.StatusSesudah != tagihanModel.TagihanStatusLunas {
		t.Errorf("line 0 = %+v, mau spp lunas 300000", first)
	}
	second := rencana.Lines[1]
	if second.TagihanID != makan.TagihanID {
		t.Fatalf("line 1 bukan tagihan makan")
	}
	if second.JumlahIDR != 100000 || second.SisaSesudahIDR != 100000 {
		t.Errorf("line 1 jumlah=%d sisa=%d, mau 100000/100000", second.JumlahIDR, second.SisaSesudahIDR)
	}
	if second.StatusSesudah != tagihanModel.TagihanStatusSebagian {
		t.Errorf("line 1 status = %s, mau sebagian", second.StatusSesudah)
	}
}

func TestBuildRencanaSebagianHabisSebelumSemua(t *testing.T) {
	a := saldo(300000, 300000)
	b := saldo(200000, 200000)
	c := saldo(150000, 150000)

	rencana, err := BuildRencana([]SaldoTagihan{a, b, c}, 300000, model.PembayaranModeSebagian)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}
	// habis persis di tagihan pertama; b dan c tidak dapat baris
	if len(rencana.Lines) != 1 {
		t.Fatalf("lines = %d, mau 1", len(rencana.Lines))
	}
	if rencana.Lines[0].TagihanID != a.TagihanID {
		t.Errorf("alokasi tidak mengikuti urutan pilihan")
	}
}

func TestBuildRencanaSebagianSurplusJadiKembalian(t *testing.T) {
	rencana, err := BuildRencana([]SaldoTagihan{saldo(300000, 100000)}, 150000, model.PembayaranModeSebagian)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}
	if rencana.TotalAlokasiIDR != 100000 {
		t.Errorf("total alokasi = %d, mau 100000", rencana.TotalAlokasiIDR)
	}
	if rencana.KembalianIDR != 50000 {
		t.Errorf("kembalian = %d, mau 50000", rencana.KembalianIDR)
	}
	if rencana.Lines[0].StatusSesudah != tagihanModel.TagihanStatusLunas {
		t.Errorf("status = %s, mau lunas", rencana.Lines[0].StatusSesudah)
	}
}

func TestBuildRencanaMelanjutkanTagihanSebagian(t *testing.T) {
	// tagihan yang sudah separuh dibayar: alokasi dihitung dari sisa, bukan nominal
	rencana, err := BuildRencana([]SaldoTagihan{saldo(300000, 120000)}, 120000, model.PembayaranModePenuh)
	if err != nil {
		t.Fatalf("BuildRencana: %v", err)
	}
	if rencana.Lines[0].JumlahIDR != 120000 || rencana.Lines[0].SisaSesudahIDR != 0 {
		t.Errorf("line = %+v, mau alokasi 120000 dan lunas", rencana.Lines[0])
	}
}

func TestBuildRencanaInvarianJumlah(t *testing.T) {
	cases := []struct {
		nama   string
		bayar  int
		mode   string
		saldos []SaldoTagihan
	}{
		{"penuh pas", 450000, model.PembayaranModePenuh, []SaldoTagihan{saldo(300000, 300000), saldo(150000, 150000)}},
		{"penuh lebih", 600000, model.PembayaranModePenuh, []SaldoTagihan{saldo(300000, 300000), saldo(150000, 150000)}},
		{"sebagian kurang", 200000, model.PembayaranModeSebagian, []SaldoTagihan{saldo(300000, 300000), saldo(150000, 150000)}},
		{"sebagian lebih", 500000, model.PembayaranModeSebagian, []SaldoTagihan{saldo(300000, 300000), saldo(150000, 150000)}},
	}

	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			rencana, err := BuildRencana(tc.saldos, tc.bayar, tc.mode)
			if err != nil {
				t.Fatalf("BuildRencana: %v", err)
			}
			// total alokasi + kembalian selalu = jumlah bayar
			if rencana.TotalAlokasiIDR+rencana.KembalianIDR != tc.bayar {
				t.Errorf("alokasi %d + kembalian %d != bayar %d",
					rencana.TotalAlokasiIDR, rencana.KembalianIDR, tc.bayar)
			}
			sum := 0
			for _, l := range rencana.Lines {
				if l.SisaSesudahIDR < 0 {
					t.Errorf("sisa sesudah negatif: %+v", l)
				}
				if l.JumlahIDR > l.SisaSebelumIDR {
					t.Errorf("alokasi melebihi sisa: %+v", l)
				}
				if l.SisaSebelumIDR-l.JumlahIDR != l.SisaSesudahIDR {
					t.Errorf("ledger line tidak konsisten: %+v", l)
				}
				sum += l.JumlahIDR
			}
			if sum != rencana.TotalAlokasiIDR {
				t.Errorf("Σ line %d != total %d", sum, rencana.TotalAlokasiIDR)
			}
		})
	}
}

func TestBuildRencanaErrors(t *testing.T) {
	cases := []struct {
		nama     string
		saldos   []SaldoTagihan
		bayar    int
		mode     string
		wantCode int
	}{
		{"tanpa tagihan", nil, 100000, model.PembayaranModePenuh, fiber.StatusUnprocessableEntity},
		{"bayar nol", []SaldoTagihan{saldo(100, 100)}, 0, model.PembayaranModePenuh, fiber.StatusUnprocessableEntity},
		{"bayar negatif", []SaldoTagihan{saldo(100, 100)}, -5, model.PembayaranModeSebagian, fiber.StatusUnprocessableEntity},
		{"mode asing", []SaldoTagihan{saldo(100, 100)}, 100, "cicilan", fiber.StatusUnprocessableEntity},
		{"ada yang lunas", []SaldoTagihan{saldo(100, 100), saldo(100, 0)}, 100, model.PembayaranModeSebagian, fiber.StatusUnprocessableEntity},
		{"penuh kurang bayar", []SaldoTagihan{saldo(300000, 300000)}, 250000, model.PembayaranModePenuh, fiber.StatusUnprocessableEntity},
		{"ledger korup", []SaldoTagihan{saldo(100, 200)}, 500, model.PembayaranModeSebagian, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			_, err := BuildRencana(tc.saldos, tc.bayar, tc.mode)
			if err == nil {
				t.Fatal("mau error, dapat nil")
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("mau *fiber.Error, dapat %T", err)
			}
			if fe.Code != tc.wantCode {
				t.Errorf("code = %d, mau %d (%s)", fe.Code, tc.wantCode, fe.Message)
			}
		})
	}
}
