package dto

import (
	"strings"
	"time"

	cModel "tahfizhku_backend/internals/features/courses/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCourseRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description" validate:"required"`
	TelegramLink string    `json:"telegram_link" validate:"required,url"`
	StartAt      time.Time `json:"start_at" validate:"required"`
	Duration     string    `json:"duration" validate:"required,max=50"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.TelegramLink = strings.TrimSpace(r.TelegramLink)
	r.Duration = strings.TrimSpace(r.Duration)
}

func (r *CreateCourseRequest) ToModel() *cModel.CourseModel {
	return &cModel.CourseModel{
		CourseTitle:        r.Title,
		CourseDescription:  r.Description,
		CourseTelegramLink: r.TelegramLink,
		CourseStartAt:      r.StartAt,
		CourseDuration:     r.Duration,
		CourseIsActive:     true,
	}
}

type UpdateCourseRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string    `json:"description,omitempty"`
	TelegramLink *string    `json:"telegram_link,omitempty" validate:"omitempty,url"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	Duration     *string    `json:"duration,omitempty" validate:"omitempty,max=50"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.TelegramLink != nil {
		v := strings.TrimSpace(*r.TelegramLink)
		r.TelegramLink = &v
	}
	if r.Duration != nil {
		v := strings.TrimSpace(*r.Duration)
		r.Duration = &v
	}
}

func (r *UpdateCourseRequest) ApplyToModel(m *cModel.CourseModel) {
	if r.Title != nil {
		m.CourseTitle = *r.Title
	}
	if r.Description != nil {
		m.CourseDescription = *r.Description
	}
	if r.TelegramLink != nil {
		m.CourseTelegramLink = *r.TelegramLink
	}
	if r.StartAt != nil {
		m.CourseStartAt = *r.StartAt
	}
	if r.Duration != nil {
		m.CourseDuration = *r.Duration
	}
	if r.IsActive != nil {
		m.CourseIsActive = *r.IsActive
	}
}

// RegisterCourseRequest — pendaftaran terbuka, tidak wajib punya akun
type RegisterCourseRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,min=6,max=30"`
	Age      int    `json:"age" validate:"required,gte=0,lte=120"`
	Country  string `json:"country" validate:"required,max=100"`
	City     string `json:"city" validate:"required,max=100"`
}

func (r *RegisterCourseRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
}

func (r *RegisterCourseRequest) ToModel(courseID uuid.UUID, userID *uuid.UUID) *cModel.CourseRegistrationModel {
	return &cModel.CourseRegistrationModel{
		CourseRegistrationCourseID: courseID,
		CourseRegistrationUserID:   userID,
		CourseRegistrationUserName: r.UserName,
		CourseRegistrationEmail:    r.Email,
		CourseRegistrationPhone:    r.Phone,
		CourseRegistrationAge:      r.Age,
		CourseRegistrationCountry:  r.Country,
		CourseRegistrationCity:     r.City,
	}
}
