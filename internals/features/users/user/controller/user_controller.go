package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "tahfizhku_backend/internals/features/users/user/dto"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
	helper "tahfizhku_backend/internals/helpers"
	helperAuth "tahfizhku_backend/internals/helpers/auth"
)

// UserController: operasi profil milik user sendiri.
type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/user/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "OK", userDTO.FromModel(&user))
}

// PATCH /api/user/profile
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if req.IsEmpty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	// email unik
	if req.Email != nil && *req.Email != user.Email {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
			Where("email = ? AND id <> ?", *req.Email, userID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah dipakai user lain")
		}
	}

	req.ApplyToModel(&user)
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}

	return helper.JsonUpdated(c, "Profil diperbarui", userDTO.FromModel(&user))
}

// DELETE /api/user/profile — soft delete akun sendiri
func (ctrl *UserController) DeleteProfile(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("id = ?", userID).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Akun dihapus", fiber.Map{"id": userID})
}

// GET /api/user/credits — saldo kredit milik sendiri
func (ctrl *UserController) GetMyCredits(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	bal, err := userService.BalanceOf(ctrl.DB.WithContext(c.Context()), userID)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil saldo")
	}

	return helper.JsonOK(c, "OK", bal)
}
