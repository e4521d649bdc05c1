package dto

import (
	"testing"

	uModel "tahfizhku_backend/internals/features/users/user/model"
)

func TestCreateMemberRequestNormalize(t *testing.T) {
	req := CreateMemberRequest{
		UserName: "  Ahmad Fauzi ",
		Email:    " AHMAD@Example.COM ",
		Phone:    " 08123456789 ",
		City:     " Jakarta ",
	}
	req.Normalize()

	if req.UserName != "Ahmad Fauzi" {
		t.Errorf("UserName = %q", req.UserName)
	}
	if req.Email != "ahmad@example.com" {
		t.Errorf("Email = %q, want lowercase tanpa spasi", req.Email)
	}
	if req.Phone != "08123456789" || req.City != "Jakarta" {
		t.Errorf("Phone/City belum di-trim: %q %q", req.Phone, req.City)
	}
}

func TestCreateMemberRequestToModel(t *testing.T) {
	req := CreateMemberRequest{
		UserName: "Ahmad",
		Email:    "ahmad@example.com",
		Password: "rahasia-123",
		Phone:    "0812",
	}
	m := req.ToModel()

	if m.Role != uModel.RoleStudent {
		t.Errorf("Role = %q, want student", m.Role)
	}
	if !m.IsVerified || !m.IsActive {
		t.Error("member buatan admin harus langsung verified & aktif")
	}
	if m.PrivateCredits != 0 || m.PublicCredits != 0 {
		t.Error("saldo awal harus nol")
	}
}

func TestUpdateMemberRequestApplyToModel(t *testing.T) {
	name := "Nama Baru"
	verified := true
	m := uModel.UserModel{UserName: "Lama", Email: "tetap@example.com"}

	req := UpdateMemberRequest{UserName: &name, IsVerified: &verified}
	req.ApplyToModel(&m)

	if m.UserName != "Nama Baru" {
		t.Errorf("UserName = %q", m.UserName)
	}
	if m.Email != "tetap@example.com" {
		t.Error("field yang tidak dikirim tidak boleh berubah")
	}
	if !m.IsVerified {
		t.Error("IsVerified harus ikut berubah")
	}
}

func TestUpdateProfileRequestIsEmpty(t *testing.T) {
	var req UpdateProfileRequest
	if !req.IsEmpty() {
		t.Error("request kosong harus IsEmpty")
	}

	name := "x"
	req.UserName = &name
	if req.IsEmpty() {
		t.Error("request berisi field tidak boleh IsEmpty")
	}
}

func TestFromModelHidesCredentials(t *testing.T) {
	m := uModel.UserModel{
		UserName: "Ahmad",
		Email:    "ahmad@example.com",
		Password: "hash-rahasia",
	}
	resp := FromModel(&m)

	if resp == nil {
		t.Fatal("FromModel(nil model) seharusnya hanya untuk input nil")
	}
	if resp.UserName != "Ahmad" || resp.Email != "ahmad@example.com" {
		t.Error("field publik harus tersalin")
	}

	if FromModel(nil) != nil {
		t.Error("FromModel(nil) harus nil")
	}
}
