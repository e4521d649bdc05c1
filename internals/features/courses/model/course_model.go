package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel: kursus intensif di luar grup rutin, pendaftaran terbuka.
type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;size:200;not null" json:"course_title"`
	CourseDescription string    `gorm:"column:course_description;type:text;not null" json:"course_description"`

	CourseTelegramLink string    `gorm:"column:course_telegram_link;type:text;not null" json:"course_telegram_link"`
	CourseStartAt      time.Time `gorm:"column:course_start_at;not null" json:"course_start_at"`
	CourseDuration     string    `gorm:"column:course_duration;size:50;not null" json:"course_duration"` // mis. "4 weeks"

	CourseIsActive bool `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
