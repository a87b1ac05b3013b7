package dto_test

import (
	"testing"

	"github.com/valentinalvarez/ecommerce-accounts/dto"
	"github.com/valentinalvarez/ecommerce-accounts/utils/hash"
	"golang.org/x/crypto/bcrypt"
)

func newTransformer(opts ...dto.Option) *dto.Transformer {
	return dto.New(hash.NewWithCost(bcrypt.MinCost), opts...)
}

func TestTransformer_ValidEmail(t *testing.T) {
	tr := newTransformer()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "gmail com", email: "test@gmail.com", want: true},
		{name: "hotmail es", email: "test@hotmail.es", want: true},
		{name: "case insensitive", email: "Test@GMAIL.Com", want: true},
		{name: "segmented local part", email: "first.last-name@outlook.com", want: true},
		{name: "provider with trailing dot only", email: "test@gmail.", want: true},
		{name: "coder provider", email: "dev@coder.com", want: true},
		{name: "github provider", email: "dev@github.com", want: true},
		{name: "provider outside allow-list", email: "test@invalid.com", want: false},
		{name: "unsupported tld", email: "test@gmail.net", want: false},
		{name: "missing local part", email: "@gmail.com", want: false},
		{name: "double separator", email: "first..last@gmail.com", want: false},
		{name: "missing at", email: "testgmail.com", want: false},
		{name: "empty", email: "", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.ValidEmail(tt.email); got != tt.want {
				t.Fatalf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestTransformer_ValidEmail_CustomProviders(t *testing.T) {
	tr := newTransformer(dto.WithEmailProviders([]string{"example"}))

	if !tr.ValidEmail("test@example.com") {
		t.Fatal("configured provider should be accepted")
	}
	if tr.ValidEmail("test@gmail.com") {
		t.Fatal("default provider should no longer be accepted")
	}
}
