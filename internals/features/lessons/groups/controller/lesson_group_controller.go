package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "tahfizhku_backend/internals/features/lessons/groups/dto"
	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	teacherModel "tahfizhku_backend/internals/features/teachers/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	helper "tahfizhku_backend/internals/helpers"
)

type LessonGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonGroupController(db *gorm.DB) *LessonGroupController {
	return &LessonGroupController{DB: db, Validate: validator.New()}
}

var (
	errMemberNotStudent = errors.New("hanya user berrole student yang bisa jadi anggota")
	errMemberDuplicate  = errors.New("user sudah jadi anggota grup ini")
)

/* =========================
   CRUD grup
   ========================= */

// GET /api/group?type=&active=&page=&per_page=
func (ctrl *LessonGroupController) ListGroups(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&groupModel.LessonGroupModel{})
	if t := c.Query("type"); groupModel.IsValidGroupType(t) {
		q = q.Where("lesson_group_type = ?", t)
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("lesson_group_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung grup")
	}

	var groups []groupModel.LessonGroupModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	return helper.JsonList(c, "OK", groupDTO.FromModelList(groups),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/group/:id — detail + anggota
func (ctrl *LessonGroupController) GetGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}

	var group groupModel.LessonGroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "lesson_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	resp := groupDTO.FromModel(&group)

	type memberRow struct {
		UserID         uuid.UUID `gorm:"column:id"`
		UserName       string    `gorm:"column:user_name"`
		Email          string    `gorm:"column:email"`
		PrivateCredits int       `gorm:"column:private_credits"`
		PublicCredits  int       `gorm:"column:public_credits"`
		JoinedAt       time.Time `gorm:"column:joined_at"`
	}
	var rows []memberRow
	if err := ctrl.DB.WithContext(c.Context()).
		Table("users").
		Select("users.id, users.user_name, users.email, users.private_credits, users.public_credits, lgm.created_at AS joined_at").
		Joins("JOIN lesson_group_members lgm ON lgm.lesson_group_member_user_id = users.id").
		Where("lgm.lesson_group_member_group_id = ? AND users.deleted_at IS NULL", id).
		Order("lgm.created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota grup")
	}

	resp.Members = make([]groupDTO.GroupMemberResponse, 0, len(rows))
	for _, r := range rows {
		resp.Members = append(resp.Members, groupDTO.GroupMemberResponse{
			UserID:         r.UserID,
			UserName:       r.UserName,
			Email:          r.Email,
			PrivateCredits: r.PrivateCredits,
			PublicCredits:  r.PublicCredits,
			JoinedAt:       r.JoinedAt,
		})
	}

	return helper.JsonOK(c, "OK", resp)
}

// POST /api/group
func (ctrl *LessonGroupController) CreateGroup(c *fiber.Ctx) error {
	var req groupDTO.CreateLessonGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// teacher harus ada
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", req.TeacherID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pengajar")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
	}

	group := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}

	return helper.JsonCreated(c, "Grup berhasil dibuat", groupDTO.FromModel(group))
}

// PATCH /api/group/:id
func (ctrl *LessonGroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}

	var req groupDTO.UpdateLessonGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var group groupModel.LessonGroupModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&group, "lesson_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grup")
	}

	if req.TeacherID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&teacherModel.TeacherModel{}).
			Where("teacher_id = ?", *req.TeacherID).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pengajar")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
	}

	req.ApplyToModel(&group)
	if err := ctrl.DB.WithContext(c.Context()).Save(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui grup")
	}

	return helper.JsonUpdated(c, "Grup diperbarui", groupDTO.FromModel(&group))
}

// DELETE /api/group/:id — soft delete, keanggotaan ikut dibersihkan
func (ctrl *LessonGroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("lesson_group_id = ?", id).Delete(&groupModel.LessonGroupModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("lesson_group_member_group_id = ?", id).
			Delete(&groupModel.LessonGroupMemberModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}

	return helper.JsonDeleted(c, "Grup dihapus", fiber.Map{"id": id})
}

/* =========================
   Anggota grup
   ========================= */

// POST /api/group/:id/members
func (ctrl *LessonGroupController) AddMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}

	var req groupDTO.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var group groupModel.LessonGroupModel
		if err := tx.First(&group, "lesson_group_id = ?", groupID).Error; err != nil {
			return err
		}

		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", req.MemberID).Error; err != nil {
			return err
		}
		if user.Role != userModel.RoleStudent {
			return errMemberNotStudent
		}

		var count int64
		if err := tx.Model(&groupModel.LessonGroupMemberModel{}).
			Where("lesson_group_member_group_id = ? AND lesson_group_member_user_id = ?", groupID, req.MemberID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errMemberDuplicate
		}

		return tx.Create(&groupModel.LessonGroupMemberModel{
			LessonGroupMemberGroupID: groupID,
			LessonGroupMemberUserID:  req.MemberID,
		}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Grup atau user tidak ditemukan")
		case errors.Is(err, errMemberNotStudent):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, errMemberDuplicate):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
		}
	}

	return helper.JsonCreated(c, "Anggota ditambahkan", fiber.Map{
		"group_id":  groupID,
		"member_id": req.MemberID,
	})
}

// DELETE /api/group/:id/members/:memberId
func (ctrl *LessonGroupController) RemoveMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID grup tidak valid")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID anggota tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("lesson_group_member_group_id = ? AND lesson_group_member_user_id = ?", groupID, memberID).
		Delete(&groupModel.LessonGroupMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan di grup ini")
	}

	return helper.JsonDeleted(c, "Anggota dihapus dari grup", fiber.Map{
		"group_id":  groupID,
		"member_id": memberID,
	})
}
