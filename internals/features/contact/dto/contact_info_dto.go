package dto

import (
	"strings"

	contactModel "tahfizhku_backend/internals/features/contact/model"
)

// UpdateContactInfoRequest — admin, partial update: hanya field yang dikirim
// yang ditimpa
type UpdateContactInfoRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address  *string `json:"address,omitempty"`
	Whatsapp *string `json:"whatsapp,omitempty" validate:"omitempty,max=30"`
	Telegram *string `json:"telegram,omitempty" validate:"omitempty,url"`
	Facebook *string `json:"facebook,omitempty" validate:"omitempty,url"`
	Linkedin *string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

func (r *UpdateContactInfoRequest) Normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Email)
	trim(r.Phone)
	trim(r.Address)
	trim(r.Whatsapp)
	trim(r.Telegram)
	trim(r.Facebook)
	trim(r.Linkedin)
	if r.Email != nil {
		*r.Email = strings.ToLower(*r.Email)
	}
}

func (r *UpdateContactInfoRequest) IsEmpty() bool {
	return r.Email == nil && r.Phone == nil && r.Address == nil &&
		r.Whatsapp == nil && r.Telegram == nil && r.Facebook == nil && r.Linkedin == nil
}

func (r *UpdateContactInfoRequest) ApplyToModel(m *contactModel.ContactInfoModel) {
	if r.Email != nil {
		m.ContactInfoEmail = *r.Email
	}
	if r.Phone != nil {
		m.ContactInfoPhone = *r.Phone
	}
	if r.Address != nil {
		m.ContactInfoAddress = *r.Address
	}
	if r.Whatsapp != nil {
		m.ContactInfoWhatsapp = *r.Whatsapp
	}
	if r.Telegram != nil {
		m.ContactInfoTelegram = *r.Telegram
	}
	if r.Facebook != nil {
		m.ContactInfoFacebook = *r.Facebook
	}
	if r.Linkedin != nil {
		m.ContactInfoLinkedin = *r.Linkedin
	}
}
