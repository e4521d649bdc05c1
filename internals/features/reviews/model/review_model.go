package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel: testimoni publik, tampil setelah disetujui admin.
type ReviewModel struct {
	ReviewID     uuid.UUID `gorm:"column:review_id;type:uuid;default:gen_random_uuid();primaryKey" json:"review_id"`
	ReviewName   string    `gorm:"column:review_name;size:150;not null" json:"review_name"`
	ReviewRating *int      `gorm:"column:review_rating;check:review_rating BETWEEN 0 AND 5" json:"review_rating,omitempty"`
	ReviewText   string    `gorm:"column:review_text;type:text;not null" json:"review_text"`

	ReviewHide          bool `gorm:"column:review_hide;not null;default:false" json:"review_hide"`
	ReviewAdminAccepted bool `gorm:"column:review_admin_accepted;not null;default:false" json:"review_admin_accepted"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
