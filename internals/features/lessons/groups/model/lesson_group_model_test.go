package model

import "testing"

func TestIsValidGroupType(t *testing.T) {
	if !IsValidGroupType(GroupTypePrivate) || !IsValidGroupType(GroupTypePublic) {
		t.Error("private & public harus valid")
	}
	for _, s := range []string{"", "Private", "PUBLIC", "semi"} {
		if IsValidGroupType(s) {
			t.Errorf("IsValidGroupType(%q) = true, want false", s)
		}
	}
}
