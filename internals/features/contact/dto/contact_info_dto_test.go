package dto

import (
	"testing"

	contactModel "tahfizhku_backend/internals/features/contact/model"
)

func strPtr(s string) *string { return &s }

func TestUpdateContactInfoRequestNormalize(t *testing.T) {
	req := UpdateContactInfoRequest{
		Email:    strPtr("  Admin@Tahfizhku.ID "),
		Whatsapp: strPtr(" +628123456789 "),
	}
	req.Normalize()

	if *req.Email != "admin@tahfizhku.id" {
		t.Errorf("email = %q, harusnya trim + lowercase", *req.Email)
	}
	if *req.Whatsapp != "+628123456789" {
		t.Errorf("whatsapp = %q, harusnya ter-trim", *req.Whatsapp)
	}
}

func TestUpdateContactInfoRequestIsEmpty(t *testing.T) {
	empty := UpdateContactInfoRequest{}
	if !empty.IsEmpty() {
		t.Error("request kosong harus IsEmpty")
	}

	filled := UpdateContactInfoRequest{Phone: strPtr("0812")}
	if filled.IsEmpty() {
		t.Error("request dengan satu field tidak boleh IsEmpty")
	}
}

func TestUpdateContactInfoRequestApplyToModel(t *testing.T) {
	existing := contactModel.ContactInfoModel{
		ContactInfoEmail:    "lama@tahfizhku.id",
		ContactInfoWhatsapp: "+628000000000",
		ContactInfoTelegram: "https://t.me/tahfizhku",
	}

	req := UpdateContactInfoRequest{
		Email:    strPtr("baru@tahfizhku.id"),
		Whatsapp: strPtr("+628111111111"),
	}
	req.ApplyToModel(&existing)

	if existing.ContactInfoEmail != "baru@tahfizhku.id" {
		t.Errorf("email = %q, want field terkirim ditimpa", existing.ContactInfoEmail)
	}
	if existing.ContactInfoWhatsapp != "+628111111111" {
		t.Errorf("whatsapp = %q, want field terkirim ditimpa", existing.ContactInfoWhatsapp)
	}
	if existing.ContactInfoTelegram != "https://t.me/tahfizhku" {
		t.Errorf("telegram = %q, field yang tidak dikirim harus tetap", existing.ContactInfoTelegram)
	}
}
