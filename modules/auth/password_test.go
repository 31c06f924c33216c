package auth

import (
	"testing"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // low cost keeps the test fast

	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("expected hash to differ from the plaintext password")
	}

	if !hasher.Verify("correct horse battery staple", hash) {
		t.Error("expected correct password to verify")
	}
	if hasher.Verify("wrong password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestNewPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(-1)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !hasher.Verify("password123", hash) {
		t.Error("expected hash produced with fallback cost to verify")
	}
}
