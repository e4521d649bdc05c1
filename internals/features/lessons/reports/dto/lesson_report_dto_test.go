package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	rModel "tahfizhku_backend/internals/features/lessons/reports/model"
)

func TestMemorizedListsToJSON(t *testing.T) {
	m := MemorizedLists{New: []string{"Al-Ikhlas"}, Old: []string{"Al-Fatihah"}}
	raw, err := m.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var back MemorizedLists
	if err := sonic.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal balik: %v", err)
	}
	if len(back.New) != 1 || back.New[0] != "Al-Ikhlas" {
		t.Errorf("New = %v", back.New)
	}
	if len(back.Old) != 1 || back.Old[0] != "Al-Fatihah" {
		t.Errorf("Old = %v", back.Old)
	}

	var nilList *MemorizedLists
	raw, err = nilList.ToJSON()
	if err != nil || raw != nil {
		t.Errorf("nil list: raw=%v err=%v, want nil,nil", raw, err)
	}
}

func TestUpsertReportRequestApplyToModel(t *testing.T) {
	lessonID, studentID := uuid.New(), uuid.New()
	attended := true
	content := "Setoran lancar"
	rating := 4

	req := UpsertReportRequest{
		LessonID:     lessonID,
		StudentID:    studentID,
		Attended:     &attended,
		Content:      &content,
		Rating:       &rating,
		NewMemorized: &MemorizedLists{New: []string{"An-Nas"}},
	}

	var m rModel.LessonReportModel
	if err := req.ApplyToModel(&m); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if m.LessonReportLessonID != lessonID || m.LessonReportStudentID != studentID {
		t.Error("pasangan lesson/student harus terisi")
	}
	if !m.LessonReportAttended || m.LessonReportContent != "Setoran lancar" {
		t.Error("field yang dikirim harus diterapkan")
	}
	if m.LessonReportRating == nil || *m.LessonReportRating != 4 {
		t.Error("rating harus diterapkan")
	}
	if m.LessonReportNewMemorized == nil {
		t.Error("hafalan baru harus di-serialize")
	}
	if m.LessonReportDoneHomework {
		t.Error("field yang tidak dikirim tidak boleh berubah")
	}
}

func TestUpsertReportRequestPartialUpdateKeepsExisting(t *testing.T) {
	existing := rModel.LessonReportModel{
		LessonReportAttended: true,
		LessonReportContent:  "Catatan lama",
	}

	notes := "Tambahan catatan"
	req := UpsertReportRequest{
		LessonID:  uuid.New(),
		StudentID: uuid.New(),
		Notes:     &notes,
	}
	if err := req.ApplyToModel(&existing); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if !existing.LessonReportAttended {
		t.Error("attended existing tidak boleh ter-reset")
	}
	if existing.LessonReportContent != "Catatan lama" {
		t.Error("content existing tidak boleh ter-reset")
	}
	if existing.LessonReportNotes == nil || *existing.LessonReportNotes != "Tambahan catatan" {
		t.Error("notes baru harus diterapkan")
	}
}
