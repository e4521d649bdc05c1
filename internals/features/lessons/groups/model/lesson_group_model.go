package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GroupTypePrivate = "private"
	GroupTypePublic  = "public"
)

// LessonGroupModel: kohort berulang yang diajar satu pengajar.
// Tipe grup menentukan pool kredit mana yang dipotong saat settlement.
type LessonGroupModel struct {
	LessonGroupID          uuid.UUID `gorm:"column:lesson_group_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_group_id"`
	LessonGroupName        string    `gorm:"column:lesson_group_name;size:150;not null" json:"lesson_group_name"`
	LessonGroupDescription string    `gorm:"column:lesson_group_description;type:text;not null" json:"lesson_group_description"`
	LessonGroupType        string    `gorm:"column:lesson_group_type;type:varchar(10);not null;check:chk_lesson_group_type,lesson_group_type IN ('private','public')" json:"lesson_group_type"`

	LessonGroupTeacherID uuid.UUID `gorm:"column:lesson_group_teacher_id;type:uuid;not null;index" json:"lesson_group_teacher_id"`

	LessonGroupMeetingLink string     `gorm:"column:lesson_group_meeting_link;type:text;not null" json:"lesson_group_meeting_link"`
	LessonGroupUsualDate   *time.Time `gorm:"column:lesson_group_usual_date" json:"lesson_group_usual_date,omitempty"`
	LessonGroupIsActive    bool       `gorm:"column:lesson_group_is_active;not null;default:true" json:"lesson_group_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LessonGroupModel) TableName() string {
	return "lesson_groups"
}

// IsValidGroupType untuk validasi input tipe grup
func IsValidGroupType(t string) bool {
	return t == GroupTypePrivate || t == GroupTypePublic
}
