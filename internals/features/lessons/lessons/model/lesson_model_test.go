package model

import "testing"

func TestIsValidLessonStatus(t *testing.T) {
	valid := []string{LessonStatusScheduled, LessonStatusInProgress, LessonStatusCompleted, LessonStatusCancelled}
	for _, s := range valid {
		if !IsValidLessonStatus(s) {
			t.Errorf("IsValidLessonStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "COMPLETED", "pending"} {
		if IsValidLessonStatus(s) {
			t.Errorf("IsValidLessonStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"scheduled to in_progress", LessonStatusScheduled, LessonStatusInProgress, true},
		{"scheduled to cancelled", LessonStatusScheduled, LessonStatusCancelled, true},
		{"in_progress to completed", LessonStatusInProgress, LessonStatusCompleted, true},
		{"completed is final", LessonStatusCompleted, LessonStatusScheduled, false},
		{"completed cannot uncomplete", LessonStatusCompleted, LessonStatusInProgress, false},
		{"cancelled is final", LessonStatusCancelled, LessonStatusScheduled, false},
		{"same status is a no-op", LessonStatusScheduled, LessonStatusScheduled, false},
		{"unknown target", LessonStatusScheduled, "done", false},
		{"unknown source", "done", LessonStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(LessonStatusCompleted) || !IsTerminalStatus(LessonStatusCancelled) {
		t.Error("completed & cancelled harus terminal")
	}
	if IsTerminalStatus(LessonStatusScheduled) || IsTerminalStatus(LessonStatusInProgress) {
		t.Error("scheduled & in_progress bukan terminal")
	}
}
