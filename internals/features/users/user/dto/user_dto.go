package dto

import (
	"strings"
	"time"

	uModel "tahfizhku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateMemberRequest — admin menambah siswa (langsung terverifikasi)
type CreateMemberRequest struct {
	UserName          string `json:"user_name" validate:"required,min=3,max=100"`
	Email             string `json:"email" validate:"required,email,max=255"`
	Password          string `json:"password" validate:"required,min=8"`
	Phone             string `json:"phone" validate:"required,min=6,max=30"`
	Age               *int   `json:"age,omitempty" validate:"omitempty,gte=0"`
	Country           string `json:"country,omitempty"`
	City              string `json:"city,omitempty"`
	QuranMemorized    string `json:"quran_memorized,omitempty"`
	NumOfPartsOfQuran int    `json:"num_of_parts_of_quran,omitempty" validate:"omitempty,gte=0,lte=30"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateMemberRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.QuranMemorized = strings.TrimSpace(r.QuranMemorized)
}

// ToModel — konversi ke model (hash password di controller!)
func (r *CreateMemberRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		UserName:          r.UserName,
		Email:             r.Email,
		Password:          r.Password, // hash di controller
		Phone:             r.Phone,
		Age:               r.Age,
		Country:           r.Country,
		City:              r.City,
		QuranMemorized:    r.QuranMemorized,
		NumOfPartsOfQuran: r.NumOfPartsOfQuran,
		Role:              uModel.RoleStudent,
		IsVerified:        true,
		IsActive:          true,
	}
}

// UpdateMemberRequest — partial update oleh admin (pointer = bedakan omit vs null)
type UpdateMemberRequest struct {
	UserName          *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password          *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Phone             *string `json:"phone,omitempty" validate:"omitempty,min=6,max=30"`
	Age               *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	QuranMemorized    *string `json:"quran_memorized,omitempty"`
	NumOfPartsOfQuran *int    `json:"num_of_parts_of_quran,omitempty" validate:"omitempty,gte=0,lte=30"`
	FreeLessonUsed    *bool   `json:"free_lesson_used,omitempty"`
	IsVerified        *bool   `json:"is_verified,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

func (r *UpdateMemberRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.QuranMemorized != nil {
		v := strings.TrimSpace(*r.QuranMemorized)
		r.QuranMemorized = &v
	}
}

// ApplyToModel — terapkan perubahan parsial ke model existing
func (r *UpdateMemberRequest) ApplyToModel(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Password != nil {
		m.Password = *r.Password // hash di controller sebelum Save
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Age != nil {
		m.Age = r.Age
	}
	if r.QuranMemorized != nil {
		m.QuranMemorized = *r.QuranMemorized
	}
	if r.NumOfPartsOfQuran != nil {
		m.NumOfPartsOfQuran = *r.NumOfPartsOfQuran
	}
	if r.FreeLessonUsed != nil {
		m.FreeLessonUsed = *r.FreeLessonUsed
	}
	if r.IsVerified != nil {
		m.IsVerified = *r.IsVerified
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

// UpdateProfileRequest — self update (field terbatas)
type UpdateProfileRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=6,max=30"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
}

// IsEmpty — minimal satu field harus diisi
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.UserName == nil && r.Email == nil && r.Phone == nil
}

func (r *UpdateProfileRequest) ApplyToModel(m *uModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
}

// UpdateCreditsRequest — grant kredit oleh admin (delta >= 0)
type UpdateCreditsRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Pool   string    `json:"pool" validate:"required,oneof=private public"`
	Amount int       `json:"amount" validate:"required,gte=0"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — tanpa password dan kolom internal
type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	UserName          string    `json:"user_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Role              string    `json:"role"`
	Age               *int      `json:"age,omitempty"`
	Country           string    `json:"country,omitempty"`
	City              string    `json:"city,omitempty"`
	QuranMemorized    string    `json:"quran_memorized"`
	NumOfPartsOfQuran int       `json:"num_of_parts_of_quran"`
	IsVerified        bool      `json:"is_verified"`
	FreeLessonUsed    bool      `json:"free_lesson_used"`
	PrivateCredits    int       `json:"private_credits"`
	PublicCredits     int       `json:"public_credits"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FromModel — map model ke UserResponse
func FromModel(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:                m.ID,
		UserName:          m.UserName,
		Email:             m.Email,
		Phone:             m.Phone,
		Role:              m.Role,
		Age:               m.Age,
		Country:           m.Country,
		City:              m.City,
		QuranMemorized:    m.QuranMemorized,
		NumOfPartsOfQuran: m.NumOfPartsOfQuran,
		IsVerified:        m.IsVerified,
		FreeLessonUsed:    m.FreeLessonUsed,
		PrivateCredits:    m.PrivateCredits,
		PublicCredits:     m.PublicCredits,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func FromModelList(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
