package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	lessonDTO "tahfizhku_backend/internals/features/lessons/lessons/dto"
	lessonModel "tahfizhku_backend/internals/features/lessons/lessons/model"
	lessonService "tahfizhku_backend/internals/features/lessons/lessons/service"
	userDTO "tahfizhku_backend/internals/features/users/user/dto"
	helper "tahfizhku_backend/internals/helpers"
)

type LessonController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Settlement *lessonService.LessonSettlementService
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{
		DB:         db,
		Validate:   validator.New(),
		Settlement: lessonService.NewLessonSettlementService(db),
	}
}

/* =========================
   CRUD lesson
   ========================= */

// GET /api/lesson/group/:groupId
func (ctrl *LessonController) ListByGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&lessonModel.LessonModel{}).
		Where("lesson_group_id = ?", groupID)
	if s := c.Query("status"); lessonModel.IsValidLessonStatus(s) {
		q = q.Where("lesson_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung lesson")
	}

	var lessons []lessonModel.LessonModel
	if err := q.Order("lesson_scheduled_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}

	return helper.JsonList(c, "OK", lessonDTO.FromModelList(lessons),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/lesson/:id — detail + siswa eligible (filter yang sama dengan settlement)
func (ctrl *LessonController) GetLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}

	eligible, err := ctrl.Settlement.EligibleStudentsForLesson(c.Context(), id)
	if err != nil && !errors.Is(err, lessonService.ErrLessonGroupNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa eligible")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"lesson":            lessonDTO.FromModel(&lesson),
		"eligible_students": userDTO.FromModelList(eligible),
	})
}

// POST /api/lesson
func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var req lessonDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var group groupModel.LessonGroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "lesson_group_id = ?", req.GroupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa grup")
	}

	lesson := req.ToModel()
	if lesson.LessonMeetingLink == "" {
		// warisi link meeting grup kalau lesson tidak membawa sendiri
		lesson.LessonMeetingLink = group.LessonGroupMeetingLink
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lesson")
	}

	return helper.JsonCreated(c, "Lesson berhasil dijadwalkan", lessonDTO.FromModel(lesson))
}

// PATCH /api/lesson/:id — edit jadwal/subjek, status lewat endpoint terpisah
func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var req lessonDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	if lessonModel.IsTerminalStatus(lesson.LessonStatus) {
		return helper.JsonError(c, fiber.StatusConflict, "Lesson sudah final, tidak bisa diubah")
	}

	req.ApplyToModel(&lesson)
	if err := ctrl.DB.WithContext(c.Context()).Save(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui lesson")
	}

	return helper.JsonUpdated(c, "Lesson diperbarui", lessonDTO.FromModel(&lesson))
}

// DELETE /api/lesson/:id — hanya lesson yang belum final
func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}
	if lesson.LessonStatus == lessonModel.LessonStatusCompleted {
		return helper.JsonError(c, fiber.StatusConflict, "Lesson completed tidak bisa dihapus")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lesson")
	}

	return helper.JsonDeleted(c, "Lesson dihapus", fiber.Map{"id": id})
}

/* =========================
   Status & settlement
   ========================= */

// PATCH /api/lesson/:id/status — "completed" dialihkan ke jalur settlement
// supaya tidak ada cara menyelesaikan lesson tanpa memotong kredit.
func (ctrl *LessonController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var req lessonDTO.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if req.Status == lessonModel.LessonStatusCompleted {
		return ctrl.runSettlement(c, id)
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}

	if !lessonModel.CanTransition(lesson.LessonStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusConflict,
			"Transisi status "+lesson.LessonStatus+" → "+req.Status+" tidak diizinkan")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&lesson).
		Update("lesson_status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	lesson.LessonStatus = req.Status

	return helper.JsonUpdated(c, "Status lesson diperbarui", lessonDTO.FromModel(&lesson))
}

// POST /api/lesson/:id/complete — jalur settlement eksplisit
func (ctrl *LessonController) CompleteLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}
	return ctrl.runSettlement(c, id)
}

// runSettlement: kedua endpoint mengembalikan ringkasan dengan bentuk yang sama.
func (ctrl *LessonController) runSettlement(c *fiber.Ctx, lessonID uuid.UUID) error {
	result, err := ctrl.Settlement.CompleteLesson(c.Context(), lessonID)
	if err != nil {
		switch {
		case errors.Is(err, lessonService.ErrLessonNotFound),
			errors.Is(err, lessonService.ErrLessonGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, lessonService.ErrLessonAlreadyCompleted):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, lessonService.ErrNoEligibleStudents):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelesaikan lesson")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":           "Lesson completed successfully",
		"lessonId":          result.LessonID,
		"summary":           result.Summary,
		"completedStudents": result.CompletedStudents,
		"failedStudents":    result.FailedStudents,
	})
}

/* =========================
   Homework (PR)
   ========================= */

// PUT /api/lesson/:id/homework
func (ctrl *LessonController) SetHomework(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var req lessonDTO.HomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	payload, err := req.ToJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses homework")
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&lessonModel.LessonModel{}).
		Where("lesson_id = ?", id).
		Update("lesson_homework", payload)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan homework")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Homework disimpan", fiber.Map{
		"lesson_id": id,
		"homework":  req,
	})
}

// GET /api/lesson/:id/homework
func (ctrl *LessonController) GetHomework(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lesson tidak valid")
	}

	var lesson lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("lesson_id", "lesson_homework").
		First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil homework")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"lesson_id": lesson.LessonID,
		"homework":  lesson.LessonHomework,
	})
}
