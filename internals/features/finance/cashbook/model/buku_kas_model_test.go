// file: internals/features/finance/cashbook/model/buku_kas_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestMutasiDelta(t *testing.T) {
	masuk := BukuKasTransaksi{BukuKasTransaksiArah: MutasiMasuk, BukuKasTransaksiJumlahIDR: 150000}
	if masuk.Delta() != 150000 {
		t.Errorf("delta masuk = %d, mau 150000", masuk.Delta())
	}

	keluar := BukuKasTransaksi{BukuKasTransaksiArah: MutasiKeluar, BukuKasTransaksiJumlahIDR: 75000}
	if keluar.Delta() != -75000 {
		t.Errorf("delta keluar = %d, mau -75000", keluar.Delta())
	}
}

func TestMutasiIsOtomatis(t *testing.T) {
	manual := BukuKasTransaksi{}
	if manual.IsOtomatis() {
		t.Error("mutasi tanpa ref harus dianggap manual")
	}

	ref := MutasiRefKwitansi
	id := uuid.New()
	auto := BukuKasTransaksi{BukuKasTransaksiRefTipe: &ref, BukuKasTransaksiRefID: &id}
	if !auto.IsOtomatis() {
		t.Error("mutasi ber-ref kwitansi harus dianggap otomatis")
	}
}
