// file: internals/features/lessons/lessons/service/settlement_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	lessonModel "tahfizhku_backend/internals/features/lessons/lessons/model"
	reportModel "tahfizhku_backend/internals/features/lessons/reports/model"
	teacherModel "tahfizhku_backend/internals/features/teachers/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
)

var (
	ErrLessonNotFound         = errors.New("lesson tidak ditemukan")
	ErrLessonGroupNotFound    = errors.New("lesson group tidak ditemukan")
	ErrLessonAlreadyCompleted = errors.New("lesson sudah berstatus final")
	ErrNoEligibleStudents     = errors.New("tidak ada siswa dengan kredit yang cukup di grup ini")
)

/* =========================
   Result types
   ========================= */

type SettlementSummary struct {
	TotalEligibleStudents int `json:"totalEligibleStudents"`
	CompletedSuccessfully int `json:"completedSuccessfully"`
	Failed                int `json:"failed"`
	TeacherCreditsAdded   int `json:"teacherCreditsAdded"`
}

type SettledStudent struct {
	StudentID        uuid.UUID                 `json:"studentId"`
	Name             string                    `json:"name"`
	RemainingCredits userService.CreditBalance `json:"remainingCredits"`
}

type FailedStudent struct {
	StudentID uuid.UUID `json:"studentId"`
	Name      string    `json:"name"`
	Reason    string    `json:"reason"`
}

type SettlementResult struct {
	LessonID          uuid.UUID         `json:"lessonId"`
	Summary           SettlementSummary `json:"summary"`
	CompletedStudents []SettledStudent  `json:"completedStudents"`
	FailedStudents    []FailedStudent   `json:"failedStudents"`
}

// SummarizeSettlement merangkum hasil per-siswa. Kredit pengajar selalu
// sama persis dengan jumlah siswa yang berhasil dipotong.
func SummarizeSettlement(totalEligible int, completed []SettledStudent, failed []FailedStudent) SettlementSummary {
	return SettlementSummary{
		TotalEligibleStudents: totalEligible,
		CompletedSuccessfully: len(completed),
		Failed:                len(failed),
		TeacherCreditsAdded:   len(completed),
	}
}

/* =========================
   Service
   ========================= */

type LessonSettlementService struct {
	DB *gorm.DB
}

func NewLessonSettlementService(db *gorm.DB) *LessonSettlementService {
	return &LessonSettlementService{DB: db}
}

// CompleteLesson menjalankan settlement penuh dalam SATU transaksi:
// kunci lesson (FOR UPDATE), filter anggota eligible, potong kredit
// bersyarat per siswa, upsert report kehadiran, tambah kredit pengajar,
// lalu set status completed. Kegagalan per-siswa karena saldo habis saat
// decrement dicatat di failedStudents tanpa menggagalkan siswa lain;
// error infrastruktur membatalkan seluruh transaksi.
func (s *LessonSettlementService) CompleteLesson(ctx context.Context, lessonID uuid.UUID) (*SettlementResult, error) {
	var result *SettlementResult

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Lock lesson — serialisasi dua request complete bersamaan
		var lesson lessonModel.LessonModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLessonNotFound
			}
			return err
		}
		if lessonModel.IsTerminalStatus(lesson.LessonStatus) {
			return ErrLessonAlreadyCompleted
		}

		// 2) Grup pemilik
		var group groupModel.LessonGroupModel
		if err := tx.First(&group, "lesson_group_id = ?", lesson.LessonGroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLessonGroupNotFound
			}
			return err
		}

		pool, ok := CreditPoolForGroupType(group.LessonGroupType)
		if !ok {
			return ErrLessonGroupNotFound
		}

		// 3) Anggota + filter eligible (pool sesuai tipe grup, saldo > 0)
		members, err := loadGroupMembers(tx, group.LessonGroupID)
		if err != nil {
			return err
		}
		eligible := EligibleMembers(members, pool)
		if len(eligible) == 0 {
			return ErrNoEligibleStudents
		}

		res := &SettlementResult{
			LessonID:          lesson.LessonID,
			CompletedStudents: make([]SettledStudent, 0, len(eligible)),
			FailedStudents:    make([]FailedStudent, 0),
		}

		// 4) Settlement per siswa
		for i := range eligible {
			st := &eligible[i]

			bal, err := userService.DeductCreditAtomic(tx, st.ID, pool)
			if err != nil {
				if errors.Is(err, userService.ErrInsufficientCredits) {
					// saldo keburu habis oleh operasi lain — catat, lanjut siswa berikutnya
					res.FailedStudents = append(res.FailedStudents, FailedStudent{
						StudentID: st.ID,
						Name:      st.UserName,
						Reason:    "Insufficient credits",
					})
					continue
				}
				return err
			}

			if err := upsertAttendance(tx, lesson.LessonID, st.ID); err != nil {
				return err
			}

			res.CompletedStudents = append(res.CompletedStudents, SettledStudent{
				StudentID:        st.ID,
				Name:             st.UserName,
				RemainingCredits: *bal,
			})
		}

		settled := len(res.CompletedStudents)

		// 5) Kredit pengajar += jumlah siswa yang berhasil
		if settled > 0 {
			upd := tx.Model(&teacherModel.TeacherModel{}).
				Where("teacher_id = ?", group.LessonGroupTeacherID).
				UpdateColumn("teacher_lesson_credits", gorm.Expr("teacher_lesson_credits + ?", settled))
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				log.Printf("[Settlement] teacher %s tidak ditemukan, kredit pengajar dilewati", group.LessonGroupTeacherID)
			}
		}

		// 6) Status lesson → completed (final)
		if err := tx.Model(&lessonModel.LessonModel{}).
			Where("lesson_id = ?", lesson.LessonID).
			Update("lesson_status", lessonModel.LessonStatusCompleted).Error; err != nil {
			return err
		}

		res.Summary = SummarizeSettlement(len(eligible), res.CompletedStudents, res.FailedStudents)
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EligibleStudentsForLesson: view read-path yang SAMA dengan filter settlement,
// dipakai GET lesson detail supaya read & write konsisten.
func (s *LessonSettlementService) EligibleStudentsForLesson(ctx context.Context, lessonID uuid.UUID) ([]userModel.UserModel, error) {
	var lesson lessonModel.LessonModel
	if err := s.DB.WithContext(ctx).First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	var group groupModel.LessonGroupModel
	if err := s.DB.WithContext(ctx).First(&group, "lesson_group_id = ?", lesson.LessonGroupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonGroupNotFound
		}
		return nil, err
	}

	pool, ok := CreditPoolForGroupType(group.LessonGroupType)
	if !ok {
		return nil, ErrLessonGroupNotFound
	}

	members, err := loadGroupMembers(s.DB.WithContext(ctx), group.LessonGroupID)
	if err != nil {
		return nil, err
	}
	return EligibleMembers(members, pool), nil
}

/* =========================
   Internal
   ========================= */

func loadGroupMembers(tx *gorm.DB, groupID uuid.UUID) ([]userModel.UserModel, error) {
	var members []userModel.UserModel
	err := tx.
		Joins("JOIN lesson_group_members lgm ON lgm.lesson_group_member_user_id = users.id").
		Where("lgm.lesson_group_member_group_id = ?", groupID).
		Order("users.created_at ASC").
		Find(&members).Error
	return members, err
}

// upsertAttendance: report unik per (lesson, student); kalau sudah ada,
// hanya flag attended yang disentuh — konten laporan ditulis guru lewat
// endpoint report terpisah.
func upsertAttendance(tx *gorm.DB, lessonID, studentID uuid.UUID) error {
	report := reportModel.LessonReportModel{
		LessonReportLessonID:  lessonID,
		LessonReportStudentID: studentID,
		LessonReportAttended:  true,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "lesson_report_lesson_id"},
			{Name: "lesson_report_student_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"lesson_report_attended": true,
		}),
	}).Create(&report).Error
}
