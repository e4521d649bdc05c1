package dto

import (
	"strings"
	"time"

	gModel "tahfizhku_backend/internals/features/lessons/groups/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateLessonGroupRequest struct {
	Name        string     `json:"name" validate:"required,min=3,max=150"`
	Description string     `json:"description" validate:"required"`
	Type        string     `json:"type" validate:"required,oneof=private public"`
	TeacherID   uuid.UUID  `json:"teacher_id" validate:"required"`
	MeetingLink string     `json:"meeting_link" validate:"required,url"`
	UsualDate   *time.Time `json:"usual_date,omitempty"`
}

func (r *CreateLessonGroupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.MeetingLink = strings.TrimSpace(r.MeetingLink)
}

func (r *CreateLessonGroupRequest) ToModel() *gModel.LessonGroupModel {
	return &gModel.LessonGroupModel{
		LessonGroupName:        r.Name,
		LessonGroupDescription: r.Description,
		LessonGroupType:        r.Type,
		LessonGroupTeacherID:   r.TeacherID,
		LessonGroupMeetingLink: r.MeetingLink,
		LessonGroupUsualDate:   r.UsualDate,
		LessonGroupIsActive:    true,
	}
}

// UpdateLessonGroupRequest — tipe grup sengaja TIDAK bisa diubah:
// mengubah pool kredit grup yang sudah jalan merusak ekspektasi anggota.
type UpdateLessonGroupRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string    `json:"description,omitempty"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	MeetingLink *string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
	UsualDate   *time.Time `json:"usual_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (r *UpdateLessonGroupRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.MeetingLink != nil {
		v := strings.TrimSpace(*r.MeetingLink)
		r.MeetingLink = &v
	}
}

func (r *UpdateLessonGroupRequest) ApplyToModel(m *gModel.LessonGroupModel) {
	if r.Name != nil {
		m.LessonGroupName = *r.Name
	}
	if r.Description != nil {
		m.LessonGroupDescription = *r.Description
	}
	if r.TeacherID != nil {
		m.LessonGroupTeacherID = *r.TeacherID
	}
	if r.MeetingLink != nil {
		m.LessonGroupMeetingLink = *r.MeetingLink
	}
	if r.UsualDate != nil {
		m.LessonGroupUsualDate = r.UsualDate
	}
	if r.IsActive != nil {
		m.LessonGroupIsActive = *r.IsActive
	}
}

type AddMemberRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type GroupMemberResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	PrivateCredits int       `json:"private_credits"`
	PublicCredits  int       `json:"public_credits"`
	JoinedAt       time.Time `json:"joined_at"`
}

type LessonGroupResponse struct {
	LessonGroupID uuid.UUID  `json:"lesson_group_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	TeacherID     uuid.UUID  `json:"teacher_id"`
	MeetingLink   string     `json:"meeting_link"`
	UsualDate     *time.Time `json:"usual_date,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Members []GroupMemberResponse `json:"members,omitempty"`
}

func FromModel(m *gModel.LessonGroupModel) *LessonGroupResponse {
	if m == nil {
		return nil
	}
	return &LessonGroupResponse{
		LessonGroupID: m.LessonGroupID,
		Name:          m.LessonGroupName,
		Description:   m.LessonGroupDescription,
		Type:          m.LessonGroupType,
		TeacherID:     m.LessonGroupTeacherID,
		MeetingLink:   m.LessonGroupMeetingLink,
		UsualDate:     m.LessonGroupUsualDate,
		IsActive:      m.LessonGroupIsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromModelList(list []gModel.LessonGroupModel) []LessonGroupResponse {
	out := make([]LessonGroupResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
