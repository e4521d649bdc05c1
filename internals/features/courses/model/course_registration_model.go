package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseRegistrationModel: pendaftaran kursus (boleh tanpa akun).
type CourseRegistrationModel struct {
	CourseRegistrationID       uuid.UUID  `gorm:"column:course_registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_registration_id"`
	CourseRegistrationCourseID uuid.UUID  `gorm:"column:course_registration_course_id;type:uuid;not null;index" json:"course_registration_course_id"`
	CourseRegistrationUserID   *uuid.UUID `gorm:"column:course_registration_user_id;type:uuid" json:"course_registration_user_id,omitempty"`

	CourseRegistrationUserName string `gorm:"column:course_registration_user_name;size:150;not null" json:"course_registration_user_name"`
	CourseRegistrationEmail    string `gorm:"column:course_registration_email;size:255;not null" json:"course_registration_email"`
	CourseRegistrationPhone    string `gorm:"column:course_registration_phone;size:30;not null" json:"course_registration_phone"`
	CourseRegistrationAge      int    `gorm:"column:course_registration_age;not null;check:course_registration_age >= 0" json:"course_registration_age"`
	CourseRegistrationCountry  string `gorm:"column:course_registration_country;size:100;not null" json:"course_registration_country"`
	CourseRegistrationCity     string `gorm:"column:course_registration_city;size:100;not null" json:"course_registration_city"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"registered_at"`
}

func (CourseRegistrationModel) TableName() string {
	return "course_registrations"
}
