package service

import (
	"testing"

	"github.com/google/uuid"

	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
)

func TestSummarizeSettlement(t *testing.T) {
	settled := func(n int) []SettledStudent {
		out := make([]SettledStudent, n)
		for i := range out {
			out[i] = SettledStudent{StudentID: uuid.New()}
		}
		return out
	}
	failed := func(n int) []FailedStudent {
		out := make([]FailedStudent, n)
		for i := range out {
			out[i] = FailedStudent{StudentID: uuid.New(), Reason: "Insufficient credits"}
		}
		return out
	}

	tests := []struct {
		name     string
		eligible int
		settled  int
		failed   int
		want     SettlementSummary
	}{
		{"semua siswa berhasil", 3, 3, 0, SettlementSummary{3, 3, 0, 3}},
		{"sebagian gagal saat decrement", 3, 2, 1, SettlementSummary{3, 2, 1, 2}},
		{"semua gagal, pengajar tidak dapat kredit", 2, 0, 2, SettlementSummary{2, 0, 2, 0}},
		{"satu siswa", 1, 1, 0, SettlementSummary{1, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeSettlement(tt.eligible, settled(tt.settled), failed(tt.failed))
			if got != tt.want {
				t.Errorf("summary = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Skenario saldo [2, 0, 1]: anggota saldo nol tersaring, dua sisanya settle,
// kredit pengajar bertambah persis sejumlah siswa yang berhasil.
func TestSummarizeSettlementWithEligibilityFilter(t *testing.T) {
	members := []userModel.UserModel{
		{ID: uuid.New(), UserName: "ahmad", PrivateCredits: 2},
		{ID: uuid.New(), UserName: "bilal", PrivateCredits: 0},
		{ID: uuid.New(), UserName: "candra", PrivateCredits: 1},
	}

	eligible := EligibleMembers(members, userService.CreditPoolPrivate)
	if len(eligible) != 2 {
		t.Fatalf("eligible = %d member, want 2 (saldo nol tersaring)", len(eligible))
	}

	completed := make([]SettledStudent, 0, len(eligible))
	for i := range eligible {
		completed = append(completed, SettledStudent{
			StudentID: eligible[i].ID,
			Name:      eligible[i].UserName,
		})
	}

	got := SummarizeSettlement(len(eligible), completed, nil)
	want := SettlementSummary{
		TotalEligibleStudents: 2,
		CompletedSuccessfully: 2,
		Failed:                0,
		TeacherCreditsAdded:   2,
	}
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}
