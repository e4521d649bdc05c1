package service

import (
	"testing"

	"tahfizhku_backend/internals/configs"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("rahasia-123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "rahasia-123" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}

	if !ComparePassword(hashed, "rahasia-123") {
		t.Error("password benar harus cocok")
	}
	if ComparePassword(hashed, "rahasia-124") {
		t.Error("password salah tidak boleh cocok")
	}
	if ComparePassword("bukan-hash", "rahasia-123") {
		t.Error("hash rusak tidak boleh cocok")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	a, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	b, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if a == b {
		t.Error("dua token berturut-turut tidak boleh sama")
	}
	// 32 byte entropi → 43 karakter base64url tanpa padding
	if len(a) != 43 {
		t.Errorf("panjang token = %d, want 43", len(a))
	}
}

func TestComputeRefreshHash(t *testing.T) {
	old := configs.JWTRefreshSecret
	configs.JWTRefreshSecret = "test-refresh-secret"
	defer func() { configs.JWTRefreshSecret = old }()

	h1 := ComputeRefreshHash("token-a")
	h2 := ComputeRefreshHash("token-a")
	h3 := ComputeRefreshHash("token-b")

	if string(h1) != string(h2) {
		t.Error("hash harus deterministik untuk token yang sama")
	}
	if string(h1) == string(h3) {
		t.Error("token berbeda harus menghasilkan hash berbeda")
	}
	if len(h1) != 32 {
		t.Errorf("panjang hash = %d, want 32 (SHA-256)", len(h1))
	}
}
