package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "secret") {
		t.Fatal("correct password must verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password must not verify")
	}
}

func TestNewSessionToken_Unique(t *testing.T) {
	a := NewSessionToken()
	b := NewSessionToken()
	if a == "" || a == b {
		t.Fatalf("tokens must be non-empty and unique, got %q and %q", a, b)
	}
}
