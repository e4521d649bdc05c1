package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeacherModel membungkus user dengan data pengajar.
// TeacherLessonCredits = akumulasi kompensasi, bertambah saat settlement pelajaran.
type TeacherModel struct {
	TeacherID     uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherUserID uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex" json:"teacher_user_id"`

	TeacherSpecialization pq.StringArray `gorm:"column:teacher_specialization;type:text[];not null" json:"teacher_specialization"`
	TeacherMeetingLink    string         `gorm:"column:teacher_meeting_link;type:text;not null" json:"teacher_meeting_link"`

	TeacherLessonCredits int `gorm:"column:teacher_lesson_credits;not null;default:0" json:"teacher_lesson_credits"`

	// jadwal ketersediaan bebas bentuk (per hari, per jam)
	TeacherAvailability datatypes.JSON `gorm:"column:teacher_availability;type:jsonb" json:"teacher_availability,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
