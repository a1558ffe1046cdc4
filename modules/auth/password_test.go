package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("Hash() returned the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Hash() = %q, want bcrypt format", hash)
	}

	if !h.Verify("s3cret-pass", hash) {
		t.Error("Verify() = false for correct password")
	}
	if h.Verify("wrong-pass", hash) {
		t.Error("Verify() = true for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical, want distinct salts")
	}
}

func TestVerifyBadHash(t *testing.T) {
	h := NewPasswordHasher()
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Error("Verify() = true for malformed hash")
	}
}
