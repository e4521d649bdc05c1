package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reviewDTO "tahfizhku_backend/internals/features/reviews/dto"
	reviewModel "tahfizhku_backend/internals/features/reviews/model"
	helper "tahfizhku_backend/internals/helpers"
)

type ReviewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db, Validate: validator.New()}
}

/* =========================
   Publik
   ========================= */

// GET /api/reviews — hanya yang sudah disetujui & tidak disembunyikan
func (ctrl *ReviewController) ListPublicReviews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&reviewModel.ReviewModel{}).
		Where("review_admin_accepted = ? AND review_hide = ?", true, false)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung review")
	}

	var reviews []reviewModel.ReviewModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	return helper.JsonList(c, "OK", reviews,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/reviews — publik, menunggu moderasi admin
func (ctrl *ReviewController) CreateReview(c *fiber.Ctx) error {
	var req reviewDTO.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	review := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan review")
	}

	return helper.JsonCreated(c, "Review terkirim, menunggu persetujuan admin", review)
}

/* =========================
   Admin
   ========================= */

// GET /api/admin/reviews — semua review termasuk yang belum dimoderasi
func (ctrl *ReviewController) ListAllReviews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&reviewModel.ReviewModel{})
	if v := c.Query("accepted"); v != "" {
		q = q.Where("review_admin_accepted = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung review")
	}

	var reviews []reviewModel.ReviewModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	return helper.JsonList(c, "OK", reviews,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/reviews/:id
func (ctrl *ReviewController) GetReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID review tidak valid")
	}

	var review reviewModel.ReviewModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&review, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	return helper.JsonOK(c, "OK", review)
}

// PATCH /api/admin/reviews/:id — approve / sembunyikan
func (ctrl *ReviewController) ModerateReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID review tidak valid")
	}

	var req reviewDTO.ModerateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var review reviewModel.ReviewModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&review, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil review")
	}

	req.ApplyToModel(&review)
	if err := ctrl.DB.WithContext(c.Context()).Save(&review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui review")
	}

	return helper.JsonUpdated(c, "Review diperbarui", review)
}

// DELETE /api/admin/reviews/:id
func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID review tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("review_id = ?", id).
		Delete(&reviewModel.ReviewModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Review dihapus", fiber.Map{"id": id})
}
