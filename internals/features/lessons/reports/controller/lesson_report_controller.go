package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lessonModel "tahfizhku_backend/internals/features/lessons/lessons/model"
	reportDTO "tahfizhku_backend/internals/features/lessons/reports/dto"
	reportModel "tahfizhku_backend/internals/features/lessons/reports/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	helper "tahfizhku_backend/internals/helpers"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

type LessonReportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonReportController(db *gorm.DB) *LessonReportController {
	return &LessonReportController{DB: db, Validate: validator.New()}
}

/* =========================
   Tulis laporan (guru/admin)
   ========================= */

// PUT /api/report — upsert per (lesson, student)
func (ctrl *LessonReportController) UpsertReport(c *fiber.Ctx) error {
	var req reportDTO.UpsertReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// lesson & student harus ada
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&lessonModel.LessonModel{}).
		Where("lesson_id = ?", req.LessonID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa lesson")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
	}
	if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("id = ?", req.StudentID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	var report reportModel.LessonReportModel
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// kunci baris existing supaya update konten tidak balapan dengan settlement
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&report, "lesson_report_lesson_id = ? AND lesson_report_student_id = ?",
				req.LessonID, req.StudentID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if aerr := req.ApplyToModel(&report); aerr != nil {
			return aerr
		}

		if report.LessonReportID == uuid.Nil {
			return tx.Create(&report).Error
		}
		return tx.Save(&report).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}

	return helper.JsonOK(c, "Laporan disimpan", reportDTO.FromModel(&report))
}

/* =========================
   Baca laporan
   ========================= */

// GET /api/report/:id
func (ctrl *LessonReportController) GetReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID laporan tidak valid")
	}

	var report reportModel.LessonReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&report, "lesson_report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.JsonOK(c, "OK", reportDTO.FromModel(&report))
}

// GET /api/report/lesson/:lessonId — semua laporan satu lesson (+nama siswa)
func (ctrl *LessonReportController) ListByLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("lessonId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var reports []reportModel.LessonReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("lesson_report_lesson_id = ?", lessonID).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	resp := reportDTO.FromModelList(reports)
	for i := range resp {
		var u userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("user_name").
			First(&u, "id = ?", resp[i].StudentID).Error; err == nil {
			resp[i].StudentName = u.UserName
		}
	}

	return helper.JsonOK(c, "OK", resp)
}

// GET /api/report/student/:studentId — riwayat laporan satu siswa
func (ctrl *LessonReportController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&reportModel.LessonReportModel{}).
		Where("lesson_report_student_id = ?", studentID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var reports []reportModel.LessonReportModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.JsonList(c, "OK", reportDTO.FromModelList(reports),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/report/my — laporan milik siswa yang sedang login
func (ctrl *LessonReportController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var reports []reportModel.LessonReportModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("lesson_report_student_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.JsonOK(c, "OK", reportDTO.FromModelList(reports))
}

// GET /api/report — semua laporan (admin), terbaru dulu
func (ctrl *LessonReportController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&reportModel.LessonReportModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var reports []reportModel.LessonReportModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helper.JsonList(c, "OK", reportDTO.FromModelList(reports),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================
   Homework siswa
   ========================= */

// PATCH /api/report/homework-done — siswa menandai PR selesai di reportnya sendiri
func (ctrl *LessonReportController) MarkHomeworkDone(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req reportDTO.MarkHomeworkDoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&reportModel.LessonReportModel{}).
		Where("lesson_report_lesson_id = ? AND lesson_report_student_id = ?", req.LessonID, userID).
		Update("lesson_report_done_homework", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui laporan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Laporan untuk lesson ini tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Homework ditandai selesai", fiber.Map{
		"lesson_id":     req.LessonID,
		"done_homework": true,
	})
}
