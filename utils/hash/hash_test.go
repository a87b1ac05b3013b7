package hash_test

import (
	"testing"

	"github.com/valentinalvarez/ecommerce-accounts/utils/hash"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := hash.NewWithCost(bcrypt.MinCost)

	hashed, err := h.Hash("testpassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hashed == "testpassword" || hashed == "" {
		t.Fatalf("Hash() returned plaintext or empty value")
	}

	if !h.Compare("testpassword", hashed) {
		t.Fatal("Compare() = false for matching password")
	}
	if h.Compare("wrongpassword", hashed) {
		t.Fatal("Compare() = true for non-matching password")
	}
}

func TestBcrypt_HashIsSalted(t *testing.T) {
	h := hash.NewWithCost(bcrypt.MinCost)

	first, err := h.Hash("testpassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("testpassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
}
