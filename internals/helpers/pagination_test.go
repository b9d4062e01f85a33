// file: internals/helpers/pagination_test.go
package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		nama      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"halaman pertama", 120, 1, 25, 5, true, false},
		{"halaman tengah", 120, 3, 25, 5, true, true},
		{"halaman terakhir", 120, 5, 25, 5, false, true},
		{"total pas kelipatan", 100, 1, 25, 4, true, false},
		{"kosong tetap satu halaman", 0, 1, 25, 1, false, false},
		{"input nol dinormalisasi", 10, 0, 0, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			p := BuildPagination(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("total_pages = %d, mau %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("has_next = %v, mau %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("has_prev = %v, mau %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"nama":       "santri_nama",
		"created_at": "santri_created_at",
	}

	p := Params{SortBy: "nama", SortOrder: "asc"}
	got, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if got != "ORDER BY santri_nama ASC" {
		t.Errorf("clause = %q", got)
	}

	// kolom di luar whitelist jatuh ke default, tidak pernah injeksi
	p = Params{SortBy: "nama; DROP TABLE santri", SortOrder: "desc"}
	got, err = p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if got != "ORDER BY santri_created_at DESC" {
		t.Errorf("clause = %q", got)
	}

	// default key tidak ada di whitelist = error
	if _, err := p.SafeOrderClause(allowed, "tidak_ada"); err == nil {
		t.Error("mau error untuk default key di luar whitelist")
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Offset() != 50 {
		t.Errorf("offset = %d, mau 50", p.Offset())
	}
	if p.Limit() != 25 {
		t.Errorf("limit = %d, mau 25", p.Limit())
	}
}
