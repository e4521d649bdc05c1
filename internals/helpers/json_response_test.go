package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{"halaman pertama dari tiga", 50, 1, 20, 3, true, false},
		{"halaman tengah", 50, 2, 20, 3, true, true},
		{"halaman terakhir", 50, 3, 20, 3, false, true},
		{"data kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"pas di batas halaman", 40, 2, 20, 2, false, true},
		{"per_page nol pakai default", 100, 1, 0, 5, true, false},
		{"page nol dinormalkan", 10, 0, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantHasNxt {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNxt)
			}
			if p.HasPrev != tt.wantHasPrv {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrv)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
