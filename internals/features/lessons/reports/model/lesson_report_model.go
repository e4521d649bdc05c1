package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonReportModel: catatan kehadiran + progres hafalan per (lesson, student).
// Unik per pasangan supaya settlement bisa upsert, bukan find-one ad-hoc.
type LessonReportModel struct {
	LessonReportID        uuid.UUID `gorm:"column:lesson_report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_report_id"`
	LessonReportLessonID  uuid.UUID `gorm:"column:lesson_report_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_report_lesson_student" json:"lesson_report_lesson_id"`
	LessonReportStudentID uuid.UUID `gorm:"column:lesson_report_student_id;type:uuid;not null;uniqueIndex:uq_lesson_report_lesson_student" json:"lesson_report_student_id"`

	LessonReportAttended bool `gorm:"column:lesson_report_attended;not null;default:false" json:"lesson_report_attended"`

	LessonReportContent string `gorm:"column:lesson_report_content;type:text;default:''" json:"lesson_report_content"`

	// {"new": ["Al-Ikhlas"], "old": ["Al-Fatihah"]}
	LessonReportNewMemorized        datatypes.JSON `gorm:"column:lesson_report_new_memorized;type:jsonb" json:"lesson_report_new_memorized,omitempty"`
	LessonReportWantedForNextLesson datatypes.JSON `gorm:"column:lesson_report_wanted_for_next_lesson;type:jsonb" json:"lesson_report_wanted_for_next_lesson,omitempty"`

	LessonReportNotes        *string `gorm:"column:lesson_report_notes;type:text" json:"lesson_report_notes,omitempty"`
	LessonReportRating       *int    `gorm:"column:lesson_report_rating;check:lesson_report_rating BETWEEN 1 AND 5" json:"lesson_report_rating,omitempty"`
	LessonReportDoneHomework bool    `gorm:"column:lesson_report_done_homework;not null;default:false" json:"lesson_report_done_homework"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (LessonReportModel) TableName() string {
	return "lesson_reports"
}
