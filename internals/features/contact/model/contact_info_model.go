package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactInfoModel: kontak admin yang tampil di halaman publik.
// Tabel ini singleton — hanya satu baris yang dipakai.
type ContactInfoModel struct {
	ContactInfoID uuid.UUID `gorm:"column:contact_info_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_info_id"`

	ContactInfoEmail    string `gorm:"column:contact_info_email;size:255" json:"contact_info_email"`
	ContactInfoPhone    string `gorm:"column:contact_info_phone;size:30" json:"contact_info_phone"`
	ContactInfoAddress  string `gorm:"column:contact_info_address;type:text" json:"contact_info_address"`
	ContactInfoWhatsapp string `gorm:"column:contact_info_whatsapp;size:30" json:"contact_info_whatsapp"`
	ContactInfoTelegram string `gorm:"column:contact_info_telegram;size:255" json:"contact_info_telegram"`
	ContactInfoFacebook string `gorm:"column:contact_info_facebook;size:255" json:"contact_info_facebook"`
	ContactInfoLinkedin string `gorm:"column:contact_info_linkedin;size:255" json:"contact_info_linkedin"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactInfoModel) TableName() string {
	return "contact_info"
}
