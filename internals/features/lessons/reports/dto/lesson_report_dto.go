package dto

import (
	"strings"
	"time"

	rModel "tahfizhku_backend/internals/features/lessons/reports/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MemorizedLists: daftar hafalan {"new": [...], "old": [...]}
type MemorizedLists struct {
	New []string `json:"new"`
	Old []string `json:"old"`
}

func (m *MemorizedLists) ToJSON() (datatypes.JSON, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := sonic.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpsertReportRequest — guru mengisi/merevisi laporan per siswa per lesson.
// Dipakai create maupun update: pasangan (lesson, student) unik di DB.
type UpsertReportRequest struct {
	LessonID  uuid.UUID `json:"lesson_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`

	Attended            *bool           `json:"attended,omitempty"`
	Content             *string         `json:"content,omitempty"`
	NewMemorized        *MemorizedLists `json:"new_memorized,omitempty"`
	WantedForNextLesson *MemorizedLists `json:"wanted_for_next_lesson,omitempty"`
	Notes               *string         `json:"notes,omitempty"`
	Rating              *int            `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	DoneHomework        *bool           `json:"done_homework,omitempty"`
}

func (r *UpsertReportRequest) Normalize() {
	if r.Content != nil {
		v := strings.TrimSpace(*r.Content)
		r.Content = &v
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}

// ApplyToModel menimpa hanya field yang dikirim.
func (r *UpsertReportRequest) ApplyToModel(m *rModel.LessonReportModel) error {
	m.LessonReportLessonID = r.LessonID
	m.LessonReportStudentID = r.StudentID

	if r.Attended != nil {
		m.LessonReportAttended = *r.Attended
	}
	if r.Content != nil {
		m.LessonReportContent = *r.Content
	}
	if r.NewMemorized != nil {
		j, err := r.NewMemorized.ToJSON()
		if err != nil {
			return err
		}
		m.LessonReportNewMemorized = j
	}
	if r.WantedForNextLesson != nil {
		j, err := r.WantedForNextLesson.ToJSON()
		if err != nil {
			return err
		}
		m.LessonReportWantedForNextLesson = j
	}
	if r.Notes != nil {
		m.LessonReportNotes = r.Notes
	}
	if r.Rating != nil {
		m.LessonReportRating = r.Rating
	}
	if r.DoneHomework != nil {
		m.LessonReportDoneHomework = *r.DoneHomework
	}
	return nil
}

// MarkHomeworkDoneRequest — siswa menandai PR selesai pada reportnya sendiri
type MarkHomeworkDoneRequest struct {
	LessonID uuid.UUID `json:"lesson_id" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ReportResponse struct {
	ReportID            uuid.UUID      `json:"report_id"`
	LessonID            uuid.UUID      `json:"lesson_id"`
	StudentID           uuid.UUID      `json:"student_id"`
	StudentName         string         `json:"student_name,omitempty"`
	Attended            bool           `json:"attended"`
	Content             string         `json:"content"`
	NewMemorized        datatypes.JSON `json:"new_memorized,omitempty"`
	WantedForNextLesson datatypes.JSON `json:"wanted_for_next_lesson,omitempty"`
	Notes               *string        `json:"notes,omitempty"`
	Rating              *int           `json:"rating,omitempty"`
	DoneHomework        bool           `json:"done_homework"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func FromModel(m *rModel.LessonReportModel) *ReportResponse {
	if m == nil {
		return nil
	}
	return &ReportResponse{
		ReportID:            m.LessonReportID,
		LessonID:            m.LessonReportLessonID,
		StudentID:           m.LessonReportStudentID,
		Attended:            m.LessonReportAttended,
		Content:             m.LessonReportContent,
		NewMemorized:        m.LessonReportNewMemorized,
		WantedForNextLesson: m.LessonReportWantedForNextLesson,
		Notes:               m.LessonReportNotes,
		Rating:              m.LessonReportRating,
		DoneHomework:        m.LessonReportDoneHomework,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func FromModelList(list []rModel.LessonReportModel) []ReportResponse {
	out := make([]ReportResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
