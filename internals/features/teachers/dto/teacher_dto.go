package dto

import (
	"strings"
	"time"

	tModel "tahfizhku_backend/internals/features/teachers/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateTeacherRequest — promosi user jadi pengajar (admin only)
type CreateTeacherRequest struct {
	UserID         uuid.UUID      `json:"user_id" validate:"required"`
	Specialization []string       `json:"specialization" validate:"required,min=1,dive,min=2"`
	MeetingLink    string         `json:"meeting_link" validate:"required,url"`
	Availability   datatypes.JSON `json:"availability,omitempty"`
}

func (r *CreateTeacherRequest) Normalize() {
	for i := range r.Specialization {
		r.Specialization[i] = strings.TrimSpace(r.Specialization[i])
	}
	r.MeetingLink = strings.TrimSpace(r.MeetingLink)
}

func (r *CreateTeacherRequest) ToModel() *tModel.TeacherModel {
	return &tModel.TeacherModel{
		TeacherUserID:         r.UserID,
		TeacherSpecialization: pq.StringArray(r.Specialization),
		TeacherMeetingLink:    r.MeetingLink,
		TeacherAvailability:   r.Availability,
	}
}

// UpdateTeacherRequest — partial update profil pengajar
type UpdateTeacherRequest struct {
	Specialization *[]string       `json:"specialization,omitempty" validate:"omitempty,min=1,dive,min=2"`
	MeetingLink    *string         `json:"meeting_link,omitempty" validate:"omitempty,url"`
	Availability   *datatypes.JSON `json:"availability,omitempty"`
}

func (r *UpdateTeacherRequest) Normalize() {
	if r.Specialization != nil {
		for i := range *r.Specialization {
			(*r.Specialization)[i] = strings.TrimSpace((*r.Specialization)[i])
		}
	}
	if r.MeetingLink != nil {
		v := strings.TrimSpace(*r.MeetingLink)
		r.MeetingLink = &v
	}
}

func (r *UpdateTeacherRequest) ApplyToModel(m *tModel.TeacherModel) {
	if r.Specialization != nil {
		m.TeacherSpecialization = pq.StringArray(*r.Specialization)
	}
	if r.MeetingLink != nil {
		m.TeacherMeetingLink = *r.MeetingLink
	}
	if r.Availability != nil {
		m.TeacherAvailability = *r.Availability
	}
}

// GrantLessonCreditsRequest — admin menambah kredit kompensasi pengajar
type GrantLessonCreditsRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type TeacherResponse struct {
	TeacherID      uuid.UUID      `json:"teacher_id"`
	UserID         uuid.UUID      `json:"user_id"`
	UserName       string         `json:"user_name,omitempty"`
	Email          string         `json:"email,omitempty"`
	Specialization []string       `json:"specialization"`
	MeetingLink    string         `json:"meeting_link"`
	LessonCredits  int            `json:"lesson_credits"`
	Availability   datatypes.JSON `json:"availability,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func FromModel(m *tModel.TeacherModel) *TeacherResponse {
	if m == nil {
		return nil
	}
	return &TeacherResponse{
		TeacherID:      m.TeacherID,
		UserID:         m.TeacherUserID,
		Specialization: []string(m.TeacherSpecialization),
		MeetingLink:    m.TeacherMeetingLink,
		LessonCredits:  m.TeacherLessonCredits,
		Availability:   m.TeacherAvailability,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func FromModelList(list []tModel.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
