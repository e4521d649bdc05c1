package dto

import (
	"strings"
	"time"

	lModel "tahfizhku_backend/internals/features/lessons/lessons/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateLessonRequest struct {
	GroupID     uuid.UUID `json:"group_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required,min=3,max=200"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Duration    int       `json:"duration,omitempty" validate:"omitempty,gt=0,lte=480"`
	MeetingLink string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
}

func (r *CreateLessonRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.MeetingLink = strings.TrimSpace(r.MeetingLink)
	if r.Duration == 0 {
		r.Duration = 60
	}
}

func (r *CreateLessonRequest) ToModel() *lModel.LessonModel {
	return &lModel.LessonModel{
		LessonGroupID:     r.GroupID,
		LessonSubject:     r.Subject,
		LessonScheduledAt: r.ScheduledAt,
		LessonDuration:    r.Duration,
		LessonMeetingLink: r.MeetingLink,
		LessonStatus:      lModel.LessonStatusScheduled,
	}
}

type UpdateLessonRequest struct {
	Subject     *string    `json:"subject,omitempty" validate:"omitempty,min=3,max=200"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Duration    *int       `json:"duration,omitempty" validate:"omitempty,gt=0,lte=480"`
	MeetingLink *string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
}

func (r *UpdateLessonRequest) Normalize() {
	if r.Subject != nil {
		v := strings.TrimSpace(*r.Subject)
		r.Subject = &v
	}
	if r.MeetingLink != nil {
		v := strings.TrimSpace(*r.MeetingLink)
		r.MeetingLink = &v
	}
}

func (r *UpdateLessonRequest) ApplyToModel(m *lModel.LessonModel) {
	if r.Subject != nil {
		m.LessonSubject = *r.Subject
	}
	if r.ScheduledAt != nil {
		m.LessonScheduledAt = *r.ScheduledAt
	}
	if r.Duration != nil {
		m.LessonDuration = *r.Duration
	}
	if r.MeetingLink != nil {
		m.LessonMeetingLink = *r.MeetingLink
	}
}

// UpdateStatusRequest — transisi non-final divalidasi di model,
// status "completed" dialihkan ke jalur settlement oleh controller.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

func (r *UpdateStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

type HomeworkRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
}

func (r *HomeworkRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *HomeworkRequest) ToJSON() (datatypes.JSON, error) {
	raw, err := sonic.Marshal(r)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type LessonResponse struct {
	LessonID    uuid.UUID      `json:"lesson_id"`
	GroupID     uuid.UUID      `json:"group_id"`
	Subject     string         `json:"subject"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Duration    int            `json:"duration"`
	MeetingLink string         `json:"meeting_link"`
	Status      string         `json:"status"`
	Homework    datatypes.JSON `json:"homework,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func FromModel(m *lModel.LessonModel) *LessonResponse {
	if m == nil {
		return nil
	}
	return &LessonResponse{
		LessonID:    m.LessonID,
		GroupID:     m.LessonGroupID,
		Subject:     m.LessonSubject,
		ScheduledAt: m.LessonScheduledAt,
		Duration:    m.LessonDuration,
		MeetingLink: m.LessonMeetingLink,
		Status:      m.LessonStatus,
		Homework:    m.LessonHomework,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModelList(list []lModel.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
