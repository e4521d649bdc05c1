package dto

import (
	"strings"

	uModel "tahfizhku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName          string `json:"user_name" validate:"required,min=3,max=100"`
	Email             string `json:"email" validate:"required,email,max=255"`
	Password          string `json:"password" validate:"required,min=8"`
	Phone             string `json:"phone" validate:"required,min=6,max=30"`
	Age               *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Country           string `json:"country,omitempty"`
	City              string `json:"city,omitempty"`
	QuranMemorized    string `json:"quran_memorized,omitempty"`
	NumOfPartsOfQuran int    `json:"num_of_parts_of_quran,omitempty" validate:"omitempty,gte=0,lte=30"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.QuranMemorized = strings.TrimSpace(r.QuranMemorized)
}

// ToModel — registrasi publik selalu jadi student belum terverifikasi
func (r *RegisterRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		UserName:          r.UserName,
		Email:             r.Email,
		Password:          r.Password, // hash di service
		Phone:             r.Phone,
		Age:               r.Age,
		Country:           r.Country,
		City:              r.City,
		QuranMemorized:    r.QuranMemorized,
		NumOfPartsOfQuran: r.NumOfPartsOfQuran,
		Role:              uModel.RoleStudent,
		IsActive:          true,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
