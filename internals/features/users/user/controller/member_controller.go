package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "tahfizhku_backend/internals/features/users/auth/service"
	userDTO "tahfizhku_backend/internals/features/users/user/dto"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
	helper "tahfizhku_backend/internals/helpers"
)

// MemberController: manajemen siswa oleh admin (CRUD + verifikasi + kredit).
type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// GET /api/admin/members?role=&search=&verified=&page=&per_page=
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	role := strings.TrimSpace(c.Query("role", userModel.RoleStudent))
	if role != userModel.RoleStudent && role != userModel.RoleAdmin && role != userModel.RoleTeacher {
		role = userModel.RoleStudent
	}

	q := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("role = ?", role)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if v := strings.TrimSpace(c.Query("verified")); v != "" {
		q = q.Where("is_verified = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var members []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	return helper.JsonList(c, "OK", userDTO.FromModelList(members),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var member userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&member, "id = ? AND role = ?", id, userModel.RoleStudent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	return helper.JsonOK(c, "OK", userDTO.FromModel(&member))
}

// POST /api/admin/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req userDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	member := req.ToModel()
	hashed, err := authService.HashPassword(member.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	member.Password = hashed

	if err := ctrl.DB.WithContext(c.Context()).Create(member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat member")
	}

	return helper.JsonCreated(c, "Member berhasil dibuat", userDTO.FromModel(member))
}

// PATCH /api/admin/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	var req userDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var member userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&member, "id = ? AND role = ?", id, userModel.RoleStudent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	if req.Email != nil && *req.Email != member.Email {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, id).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah dipakai user lain")
		}
	}

	req.ApplyToModel(&member)
	if req.Password != nil {
		hashed, err := authService.HashPassword(member.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		member.Password = hashed
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui member")
	}

	return helper.JsonUpdated(c, "Member diperbarui", userDTO.FromModel(&member))
}

// DELETE /api/admin/members/:id — soft delete
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("id = ? AND role = ?", id, userModel.RoleStudent).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Member dihapus", fiber.Map{"id": id})
}

// PATCH /api/admin/members/:id/verify
func (ctrl *MemberController) VerifyMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID member tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("id = ? AND role = ?", id, userModel.RoleStudent).
		Update("is_verified", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memverifikasi member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Member terverifikasi", fiber.Map{"id": id, "is_verified": true})
}

// PATCH /api/user/credits — grant kredit oleh admin (delta >= 0)
func (ctrl *MemberController) UpdateCredits(c *fiber.Ctx) error {
	var req userDTO.UpdateCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	bal, err := userService.AddCredits(
		ctrl.DB.WithContext(c.Context()),
		req.UserID,
		userService.CreditPool(req.Pool),
		req.Amount,
	)
	if err != nil {
		switch {
		case errors.Is(err, userService.ErrUnknownCreditPool),
			errors.Is(err, userService.ErrNegativeCreditDelta):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, userService.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kredit")
		}
	}

	return helper.JsonUpdated(c, "Kredit diperbarui", fiber.Map{
		"user_id": req.UserID,
		"credits": bal,
	})
}
