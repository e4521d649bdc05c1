package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "tahfizhku_backend/internals/features/courses/dto"
	courseModel "tahfizhku_backend/internals/features/courses/model"
	helper "tahfizhku_backend/internals/helpers"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

/* =========================
   Publik
   ========================= */

// GET /api/course/active — katalog kursus yang sedang buka
func (ctrl *CourseController) ListActiveCourses(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("course_is_active = ?", true).
		Order("course_start_at ASC").
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return helper.JsonOK(c, "OK", courses)
}

// GET /api/course/:id
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return helper.JsonOK(c, "OK", course)
}

// POST /api/course/:id/register — terbuka, user login otomatis tertaut
func (ctrl *CourseController) RegisterCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var req courseDTO.RegisterCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan atau sudah ditutup")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kursus")
	}

	// kalau request membawa token valid, tautkan registrasi ke user
	var userID *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromToken(c); err == nil {
		userID = &uid
	}

	// satu email satu pendaftaran per kursus
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&courseModel.CourseRegistrationModel{}).
		Where("course_registration_course_id = ? AND course_registration_email = ?", id, req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pendaftaran")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar di kursus ini")
	}

	reg := req.ToModel(id, userID)
	if err := ctrl.DB.WithContext(c.Context()).Create(reg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftar kursus")
	}

	return helper.JsonCreated(c, "Pendaftaran kursus berhasil", fiber.Map{
		"registration":  reg,
		"telegram_link": course.CourseTelegramLink,
	})
}

/* =========================
   Admin
   ========================= */

// GET /api/admin/courses
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&courseModel.CourseModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kursus")
	}

	var courses []courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	return helper.JsonList(c, "OK", courses,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	course := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kursus")
	}

	return helper.JsonCreated(c, "Kursus berhasil dibuat", course)
}

// PATCH /api/admin/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	req.ApplyToModel(&course)
	if err := ctrl.DB.WithContext(c.Context()).Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kursus")
	}

	return helper.JsonUpdated(c, "Kursus diperbarui", course)
}

// DELETE /api/admin/courses/:id
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("course_id = ?", id).
		Delete(&courseModel.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kursus dihapus", fiber.Map{"id": id})
}

// GET /api/admin/courses/:id/registrations
func (ctrl *CourseController) ListRegistrations(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kursus tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&courseModel.CourseRegistrationModel{}).
		Where("course_registration_course_id = ?", id)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}

	var regs []courseModel.CourseRegistrationModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.JsonList(c, "OK", regs,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
