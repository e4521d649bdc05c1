package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDTO "tahfizhku_backend/internals/features/contact/dto"
	contactModel "tahfizhku_backend/internals/features/contact/model"
	helper "tahfizhku_backend/internals/helpers"
)

type ContactInfoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewContactInfoController(db *gorm.DB) *ContactInfoController {
	return &ContactInfoController{DB: db, Validate: validator.New()}
}

// GET /api/contact — publik; null kalau admin belum mengisi
func (ctrl *ContactInfoController) GetContactInfo(c *fiber.Ctx) error {
	var info contactModel.ContactInfoModel
	if err := ctrl.DB.WithContext(c.Context()).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "OK", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil info kontak")
	}

	return helper.JsonOK(c, "OK", info)
}

// PUT /api/admin/contact — upsert baris singleton
func (ctrl *ContactInfoController) UpdateContactInfo(c *fiber.Ctx) error {
	var req contactDTO.UpdateContactInfoRequest
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

	var info contactModel.ContactInfoModel
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&info).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		req.ApplyToModel(&info)

		if info.ContactInfoID == uuid.Nil {
			return tx.Create(&info).Error
		}
		return tx.Save(&info).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan info kontak")
	}

	return helper.JsonUpdated(c, "Info kontak diperbarui", info)
}
