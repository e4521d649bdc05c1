package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LessonStatusScheduled  = "scheduled"
	LessonStatusInProgress = "in_progress"
	LessonStatusCompleted  = "completed"
	LessonStatusCancelled  = "cancelled"
)

// LessonModel: satu pertemuan terjadwal milik satu grup.
// Status completed bersifat final (tidak bisa di-uncomplete).
type LessonModel struct {
	LessonID      uuid.UUID `gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_id"`
	LessonGroupID uuid.UUID `gorm:"column:lesson_group_id;type:uuid;not null;index" json:"lesson_group_id"`

	LessonSubject     string    `gorm:"column:lesson_subject;size:200;not null" json:"lesson_subject"`
	LessonScheduledAt time.Time `gorm:"column:lesson_scheduled_at;not null;index" json:"lesson_scheduled_at"`
	LessonDuration    int       `gorm:"column:lesson_duration;not null;default:60" json:"lesson_duration"`

	LessonMeetingLink string `gorm:"column:lesson_meeting_link;type:text;not null" json:"lesson_meeting_link"`

	LessonStatus string `gorm:"column:lesson_status;type:varchar(15);not null;default:'scheduled';check:chk_lesson_status,lesson_status IN ('scheduled','in_progress','completed','cancelled')" json:"lesson_status"`

	// payload PR opsional: {"title": "...", "description": "..."}
	LessonHomework datatypes.JSON `gorm:"column:lesson_homework;type:jsonb" json:"lesson_homework,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

// IsValidLessonStatus untuk validasi input status
func IsValidLessonStatus(s string) bool {
	switch s {
	case LessonStatusScheduled, LessonStatusInProgress, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}

// IsTerminalStatus: completed & cancelled tidak boleh ditransisikan lagi
func IsTerminalStatus(s string) bool {
	return s == LessonStatusCompleted || s == LessonStatusCancelled
}

// CanTransition memeriksa transisi status yang diizinkan
func CanTransition(from, to string) bool {
	if !IsValidLessonStatus(from) || !IsValidLessonStatus(to) {
		return false
	}
	if from == to {
		return false
	}
	return !IsTerminalStatus(from)
}
