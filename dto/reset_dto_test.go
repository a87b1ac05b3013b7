package dto_test

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/dto"
	"github.com/valentinalvarez/ecommerce-accounts/model"
	"github.com/valentinalvarez/ecommerce-accounts/utils/hash"
	"golang.org/x/crypto/bcrypt"
)

func TestTransformer_CreateResetToken(t *testing.T) {
	t.Run("success: 40-char hex token expiring in one hour", func(t *testing.T) {
		issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		tr := newTransformer(dto.WithNow(func() time.Time { return issued }))

		got, errs := tr.CreateResetToken(storedUser(t))
		if errs != nil {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		if len(got.ResetToken) != 40 {
			t.Fatalf("CreateResetToken() token length = %d, want 40", len(got.ResetToken))
		}
		if !got.ResetExpires.Equal(issued.Add(time.Hour)) {
			t.Fatalf("CreateResetToken() expires = %v, want %v", got.ResetExpires, issued.Add(time.Hour))
		}
		if got.Email != "test@gmail.com" || got.Role != "USER" {
			t.Fatalf("CreateResetToken() = %+v", got)
		}
	})

	t.Run("success: successive issuances mint different tokens", func(t *testing.T) {
		tr := newTransformer()
		user := storedUser(t)

		first, errs := tr.CreateResetToken(user)
		if errs != nil {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		second, errs := tr.CreateResetToken(user)
		if errs != nil {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		if first.ResetToken == second.ResetToken {
			t.Fatal("two issuances must not repeat a token")
		}
	})

	t.Run("success: token bytes come from the configured source", func(t *testing.T) {
		tr := newTransformer(dto.WithTokenSource(bytes.NewReader(make([]byte, 20))))

		got, errs := tr.CreateResetToken(storedUser(t))
		if errs != nil {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		want := "0000000000000000000000000000000000000000"
		if got.ResetToken != want {
			t.Fatalf("CreateResetToken() token = %s, want %s", got.ResetToken, want)
		}
	})

	t.Run("error: missing subject short-circuits", func(t *testing.T) {
		got, errs := newTransformer().CreateResetToken(nil)
		if got != nil {
			t.Fatalf("CreateResetToken() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
	})

	t.Run("error: invalid stored email still mints a token", func(t *testing.T) {
		user := storedUser(t)
		user.Email = "test@invalid.com"

		got, errs := newTransformer().CreateResetToken(user)
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgValidEmailRequired}) {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		if got == nil || len(got.ResetToken) != 40 {
			t.Fatalf("CreateResetToken() = %+v, want minted token alongside errors", got)
		}
	})

	t.Run("error: exhausted token source", func(t *testing.T) {
		tr := newTransformer(dto.WithTokenSource(bytes.NewReader(nil)))

		got, errs := tr.CreateResetToken(storedUser(t))
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgTokenUnavailable}) {
			t.Fatalf("CreateResetToken() errors = %v", errs)
		}
		if got == nil {
			t.Fatal("CreateResetToken() projection must survive a source failure")
		}
	})
}

func TestTransformer_ResetPassword(t *testing.T) {
	tr := newTransformer()

	validRequest := func() *model.ResetPasswordRequest {
		return &model.ResetPasswordRequest{
			Token:           "sometoken",
			Email:           "test@gmail.com",
			Password:        "newpassword",
			ConfirmPassword: "newpassword",
		}
	}

	t.Run("success: new password replaces the stored hash", func(t *testing.T) {
		user := storedUser(t)
		expires := time.Now().Add(30 * time.Minute)
		user.PasswordResetToken = "sometoken"
		user.PasswordResetExpires = &expires

		got, errs := tr.ResetPassword(validRequest(), user)
		if errs != nil {
			t.Fatalf("ResetPassword() errors = %v", errs)
		}
		if got.PasswordHash == "" || got.PasswordHash == user.PasswordHash {
			t.Fatal("ResetPassword() must produce a fresh hash")
		}
		if !hash.NewWithCost(bcrypt.MinCost).Compare("newpassword", got.PasswordHash) {
			t.Fatal("ResetPassword() hash does not match the new password")
		}
		// the token pair is carried through untouched; clearing it is the
		// caller's job once the credentials are persisted
		if got.ResetToken != "sometoken" || got.ResetExpires != &expires {
			t.Fatalf("ResetPassword() = %+v", got)
		}
	})

	t.Run("error: missing subject short-circuits", func(t *testing.T) {
		for _, tc := range []struct {
			req  *model.ResetPasswordRequest
			user *model.UserEntity
		}{
			{req: nil, user: storedUser(t)},
			{req: validRequest(), user: nil},
		} {
			got, errs := tr.ResetPassword(tc.req, tc.user)
			if got != nil {
				t.Fatalf("ResetPassword() = %+v, want nil", got)
			}
			if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
				t.Fatalf("ResetPassword() errors = %v", errs)
			}
		}
	})

	t.Run("error: reusing the previous password", func(t *testing.T) {
		req := validRequest()
		req.Password = "testpassword"
		req.ConfirmPassword = "testpassword"

		got, errs := tr.ResetPassword(req, storedUser(t))
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgPasswordReused}) {
			t.Fatalf("ResetPassword() errors = %v", errs)
		}
		// hashing still happened
		if got == nil || got.PasswordHash == "" {
			t.Fatalf("ResetPassword() = %+v, want hashed projection alongside errors", got)
		}
	})

	t.Run("error: short password accumulates with mismatch", func(t *testing.T) {
		req := validRequest()
		req.Password = "1234567"
		req.ConfirmPassword = "7654321"

		_, errs := tr.ResetPassword(req, storedUser(t))
		want := dto.Errors{dto.MsgPasswordTooShort, dto.MsgPasswordsDoNotMatch}
		if !reflect.DeepEqual(errs, want) {
			t.Fatalf("ResetPassword() errors = %v, want %v", errs, want)
		}
	})

	t.Run("error: invalid email is reported first", func(t *testing.T) {
		req := validRequest()
		req.Email = "test@invalid.com"
		req.ConfirmPassword = "otherpassword"

		_, errs := tr.ResetPassword(req, storedUser(t))
		want := dto.Errors{dto.MsgValidEmailRequired, dto.MsgPasswordsDoNotMatch}
		if !reflect.DeepEqual(errs, want) {
			t.Fatalf("ResetPassword() errors = %v, want %v", errs, want)
		}
	})
}
