package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	lessonModel "tahfizhku_backend/internals/features/lessons/lessons/model"
	teacherDTO "tahfizhku_backend/internals/features/teachers/dto"
	teacherModel "tahfizhku_backend/internals/features/teachers/model"
	userDTO "tahfizhku_backend/internals/features/users/user/dto"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	helper "tahfizhku_backend/internals/helpers"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

/* =========================
   Admin: CRUD pengajar
   ========================= */

// GET /api/admin/teachers
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengajar")
	}

	var teachers []teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajar")
	}

	// lengkapi nama & email dari tabel users
	resp := teacherDTO.FromModelList(teachers)
	for i := range resp {
		var u userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("user_name", "email").
			First(&u, "id = ?", resp[i].UserID).Error; err == nil {
			resp[i].UserName = u.UserName
			resp[i].Email = u.Email
		}
	}

	return helper.JsonList(c, "OK", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/teachers/:id
func (ctrl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajar tidak valid")
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajar")
	}

	resp := teacherDTO.FromModel(&teacher)
	var u userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("user_name", "email").
		First(&u, "id = ?", teacher.TeacherUserID).Error; err == nil {
		resp.UserName = u.UserName
		resp.Email = u.Email
	}

	return helper.JsonOK(c, "OK", resp)
}

// POST /api/admin/teachers — promosi user jadi pengajar
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	teacher := req.ToModel()
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", req.UserID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_user_id = ?", req.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errTeacherExists
		}

		if err := tx.Create(teacher).Error; err != nil {
			return err
		}
		// role user ikut naik jadi teacher
		return tx.Model(&user).Update("role", userModel.RoleTeacher).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		case errors.Is(err, errTeacherExists):
			return helper.JsonError(c, fiber.StatusConflict, "User sudah terdaftar sebagai pengajar")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengajar")
		}
	}

	return helper.JsonCreated(c, "Pengajar berhasil dibuat", teacherDTO.FromModel(teacher))
}

var errTeacherExists = errors.New("teacher sudah ada")

// PATCH /api/admin/teachers/:id
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajar tidak valid")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajar")
	}

	req.ApplyToModel(&teacher)
	if err := ctrl.DB.WithContext(c.Context()).Save(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengajar")
	}

	return helper.JsonUpdated(c, "Pengajar diperbarui", teacherDTO.FromModel(&teacher))
}

// DELETE /api/admin/teachers/:id — role user kembali jadi student
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajar tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var teacher teacherModel.TeacherModel
		if err := tx.First(&teacher, "teacher_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&teacher).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", teacher.TeacherUserID).
			Update("role", userModel.RoleStudent).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengajar")
	}

	return helper.JsonDeleted(c, "Pengajar dihapus", fiber.Map{"id": id})
}

// PATCH /api/admin/teachers/:id/credits — grant kompensasi manual
func (ctrl *TeacherController) GrantLessonCredits(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajar tidak valid")
	}

	var req teacherDTO.GrantLessonCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", id).
		UpdateColumn("teacher_lesson_credits", gorm.Expr("teacher_lesson_credits + ?", req.Amount))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kredit pengajar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajar")
	}

	return helper.JsonUpdated(c, "Kredit pengajar ditambahkan", teacherDTO.FromModel(&teacher))
}

/* =========================
   Teacher: data milik sendiri
   ========================= */

// GET /api/teacher/me — profil pengajar yang sedang login
func (ctrl *TeacherController) GetMyTeacherProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil pengajar")
	}

	return helper.JsonOK(c, "OK", teacherDTO.FromModel(&teacher))
}

// GET /api/teacher/my-lessons — lesson dari semua grup yang diajar
func (ctrl *TeacherController) GetMyLessons(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil pengajar")
	}

	var groupIDs []uuid.UUID
	if err := ctrl.DB.WithContext(c.Context()).Model(&groupModel.LessonGroupModel{}).
		Where("lesson_group_teacher_id = ?", teacher.TeacherID).
		Pluck("lesson_group_id", &groupIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}
	if len(groupIDs) == 0 {
		return helper.JsonOK(c, "OK", []lessonModel.LessonModel{})
	}

	var lessons []lessonModel.LessonModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("lesson_group_id IN ?", groupIDs).
		Order("lesson_scheduled_at ASC").
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lesson")
	}

	return helper.JsonOK(c, "OK", lessons)
}

// GET /api/teacher/my-students — siswa unik dari semua grup yang diajar
func (ctrl *TeacherController) GetMyStudents(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var teacher teacherModel.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil pengajar")
	}

	var students []userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Distinct("users.*").
		Joins("JOIN lesson_group_members lgm ON lgm.lesson_group_member_user_id = users.id").
		Joins("JOIN lesson_groups lg ON lg.lesson_group_id = lgm.lesson_group_member_group_id AND lg.deleted_at IS NULL").
		Where("lg.lesson_group_teacher_id = ?", teacher.TeacherID).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"students": userDTO.FromModelList(students),
		"total":    len(students),
	})
}
