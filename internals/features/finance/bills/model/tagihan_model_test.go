// file: internals/features/finance/bills/model/tagihan_model_test.go
package model

import "testing"

func TestStatusFromSisa(t *testing.T) {
	cases := []struct {
		nama    string
		nominal int
		sisa    int
		want    TagihanStatus
	}{
		{"belum dibayar sama sekali", 300000, 300000, TagihanStatusBelumBayar},
		{"dibayar sebagian", 300000, 100000, TagihanStatusSebagian},
		{"dibayar hampir semua", 300000, 1, TagihanStatusSebagian},
		{"lunas", 300000, 0, TagihanStatusLunas},
		{"nominal nol langsung lunas", 0, 0, TagihanStatusLunas},
		{"sisa negatif dianggap lunas", 300000, -1, TagihanStatusLunas},
	}

	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			if got := StatusFromSisa(tc.nominal, tc.sisa); got != tc.want {
				t.Errorf("StatusFromSisa(%d, %d) = %s, mau %s", tc.nominal, tc.sisa, got, tc.want)
			}
		})
	}
}
