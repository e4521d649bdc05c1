package dto

import (
	"strings"

	rModel "tahfizhku_backend/internals/features/reviews/model"
)

// CreateReviewRequest — publik, tanpa login; tampil setelah disetujui admin
type CreateReviewRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=150"`
	Rating *int   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Text   string `json:"text" validate:"required,min=5"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Text = strings.TrimSpace(r.Text)
}

func (r *CreateReviewRequest) ToModel() *rModel.ReviewModel {
	return &rModel.ReviewModel{
		ReviewName:   r.Name,
		ReviewRating: r.Rating,
		ReviewText:   r.Text,
	}
}

// ModerateReviewRequest — admin approve / sembunyikan
type ModerateReviewRequest struct {
	AdminAccepted *bool `json:"admin_accepted,omitempty"`
	Hide          *bool `json:"hide,omitempty"`
}

func (r *ModerateReviewRequest) ApplyToModel(m *rModel.ReviewModel) {
	if r.AdminAccepted != nil {
		m.ReviewAdminAccepted = *r.AdminAccepted
	}
	if r.Hide != nil {
		m.ReviewHide = *r.Hide
	}
}
