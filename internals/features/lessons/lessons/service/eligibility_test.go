package service

import (
	"testing"

	"github.com/google/uuid"

	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
)

func TestCreditPoolForGroupType(t *testing.T) {
	tests := []struct {
		name      string
		groupType string
		wantPool  userService.CreditPool
		wantOK    bool
	}{
		{"private group", groupModel.GroupTypePrivate, userService.CreditPoolPrivate, true},
		{"public group", groupModel.GroupTypePublic, userService.CreditPoolPublic, true},
		{"unknown type", "semiprivate", "", false},
		{"empty type", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, ok := CreditPoolForGroupType(tt.groupType)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if pool != tt.wantPool {
				t.Errorf("pool = %q, want %q", pool, tt.wantPool)
			}
		})
	}
}

func TestHasCreditFor(t *testing.T) {
	tests := []struct {
		name    string
		private int
		public  int
		pool    userService.CreditPool
		want    bool
	}{
		{"private balance, private pool", 2, 0, userService.CreditPoolPrivate, true},
		{"zero private, private pool", 0, 5, userService.CreditPoolPrivate, false},
		{"public balance, public pool", 0, 1, userService.CreditPoolPublic, true},
		{"zero public, public pool", 3, 0, userService.CreditPoolPublic, false},
		{"unknown pool never eligible", 3, 3, userService.CreditPool("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &userModel.UserModel{PrivateCredits: tt.private, PublicCredits: tt.public}
			if got := HasCreditFor(u, tt.pool); got != tt.want {
				t.Errorf("HasCreditFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEligibleMembers(t *testing.T) {
	mk := func(name string, private, public int) userModel.UserModel {
		return userModel.UserModel{
			ID:             uuid.New(),
			UserName:       name,
			PrivateCredits: private,
			PublicCredits:  public,
		}
	}

	t.Run("zero balance members skipped entirely", func(t *testing.T) {
		members := []userModel.UserModel{
			mk("ahmad", 2, 0),
			mk("bilal", 0, 4),
			mk("candra", 1, 0),
		}

		got := EligibleMembers(members, userService.CreditPoolPrivate)
		if len(got) != 2 {
			t.Fatalf("eligible = %d member, want 2", len(got))
		}
		if got[0].UserName != "ahmad" || got[1].UserName != "candra" {
			t.Errorf("urutan anggota tidak dipertahankan: %s, %s", got[0].UserName, got[1].UserName)
		}
	})

	t.Run("public pool ignores private balance", func(t *testing.T) {
		members := []userModel.UserModel{
			mk("ahmad", 9, 0),
			mk("bilal", 0, 1),
		}

		got := EligibleMembers(members, userService.CreditPoolPublic)
		if len(got) != 1 || got[0].UserName != "bilal" {
			t.Fatalf("eligible = %+v, want hanya bilal", got)
		}
	})

	t.Run("no members", func(t *testing.T) {
		got := EligibleMembers(nil, userService.CreditPoolPrivate)
		if len(got) != 0 {
			t.Fatalf("eligible = %d, want 0", len(got))
		}
	})
}
