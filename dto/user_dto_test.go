package dto_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/dto"
	"github.com/valentinalvarez/ecommerce-accounts/model"
	"github.com/valentinalvarez/ecommerce-accounts/utils/hash"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := hash.NewWithCost(bcrypt.MinCost).Hash(password)
	if err != nil {
		t.Fatalf("hash fixture: %v", err)
	}
	return hashed
}

// storedUser builds the persisted record fixtures authenticate against.
func storedUser(t *testing.T) *model.UserEntity {
	t.Helper()
	return &model.UserEntity{
		ID:           1,
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@gmail.com",
		Age:          25,
		PasswordHash: mustHash(t, "testpassword"),
		Role:         "user",
		CreatedAt:    time.Now(),
	}
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           "test@gmail.com",
		Age:             25,
		Password:        "testpassword",
		ConfirmPassword: "testpassword",
	}
}

func TestTransformer_GetUser(t *testing.T) {
	tr := newTransformer()

	tests := []struct {
		name     string
		req      *model.GetUserRequest
		want     *model.UserLookup
		wantErrs dto.Errors
	}{
		{
			name: "success: email and password",
			req:  &model.GetUserRequest{Email: "test@gmail.com", Password: "testpassword"},
			want: &model.UserLookup{Email: "test@gmail.com", Password: "testpassword"},
		},
		{
			name:     "error: nil request short-circuits",
			req:      nil,
			want:     nil,
			wantErrs: dto.Errors{dto.MsgEmailRequired},
		},
		{
			name:     "error: email outside allow-list",
			req:      &model.GetUserRequest{Email: "test@invalid.com"},
			want:     &model.UserLookup{Email: "test@invalid.com"},
			wantErrs: dto.Errors{dto.MsgValidEmailRequired},
		},
		{
			name:     "error: empty email accumulates both rules",
			req:      &model.GetUserRequest{ID: 7},
			want:     &model.UserLookup{ID: 7},
			wantErrs: dto.Errors{dto.MsgEmailRequired, dto.MsgValidEmailRequired},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, errs := tr.GetUser(tt.req)
			if !reflect.DeepEqual(errs, tt.wantErrs) {
				t.Fatalf("GetUser() errors = %v, want %v", errs, tt.wantErrs)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetUser() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTransformer_LoadUser(t *testing.T) {
	tr := newTransformer()
	user := storedUser(t)

	t.Run("success: correct password projects public view", func(t *testing.T) {
		got, errs := tr.LoadUser(&model.LoginRequest{Email: "test@gmail.com", Password: "testpassword"}, user)
		if errs != nil {
			t.Fatalf("LoadUser() errors = %v", errs)
		}
		want := &model.UserProfile{
			ID:        1,
			Email:     "test@gmail.com",
			Age:       25,
			FirstName: "Test",
			LastName:  "User",
			Role:      "USER",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("LoadUser() = %+v, want %+v", got, want)
		}
	})

	t.Run("success: missing password skips the hash comparison", func(t *testing.T) {
		got, errs := tr.LoadUser(&model.LoginRequest{Email: "test@gmail.com"}, user)
		if errs != nil {
			t.Fatalf("LoadUser() errors = %v", errs)
		}
		if got.Email != "test@gmail.com" {
			t.Fatalf("LoadUser() email = %s", got.Email)
		}
	})

	t.Run("error: incorrect password", func(t *testing.T) {
		_, errs := tr.LoadUser(&model.LoginRequest{Email: "test@gmail.com", Password: "wrongpassword"}, user)
		if len(errs) == 0 || errs[0] != dto.MsgIncorrectPassword {
			t.Fatalf("LoadUser() errors = %v, want first %q", errs, dto.MsgIncorrectPassword)
		}
	})

	t.Run("error: nil stored user yields exactly one error", func(t *testing.T) {
		got, errs := tr.LoadUser(&model.LoginRequest{Email: "test@gmail.com"}, nil)
		if got != nil {
			t.Fatalf("LoadUser() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
			t.Fatalf("LoadUser() errors = %v", errs)
		}
	})

	t.Run("error: nil payload yields exactly one error", func(t *testing.T) {
		got, errs := tr.LoadUser(nil, user)
		if got != nil {
			t.Fatalf("LoadUser() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
			t.Fatalf("LoadUser() errors = %v", errs)
		}
	})

	t.Run("error: corrupt stored email is rejected", func(t *testing.T) {
		corrupt := storedUser(t)
		corrupt.Email = "test@invalid.com"
		_, errs := tr.LoadUser(&model.LoginRequest{Email: "test@invalid.com"}, corrupt)
		if len(errs) != 1 || errs[0] != dto.MsgValidEmailRequired {
			t.Fatalf("LoadUser() errors = %v", errs)
		}
	})
}

func TestTransformer_SaveUser(t *testing.T) {
	tr := newTransformer()

	t.Run("success: valid registration", func(t *testing.T) {
		got, errs := tr.SaveUser(registerRequest())
		if errs != nil {
			t.Fatalf("SaveUser() errors = %v", errs)
		}
		if got.Email != "test@gmail.com" {
			t.Fatalf("SaveUser() email = %s", got.Email)
		}
		if got.PasswordHash == "" || got.PasswordHash == "testpassword" {
			t.Fatal("SaveUser() password must be hashed")
		}
		if got.Role != "USER" {
			t.Fatalf("SaveUser() role = %s, want USER", got.Role)
		}
	})

	t.Run("success: email is lower-cased", func(t *testing.T) {
		req := registerRequest()
		req.Email = "Test@Gmail.Com"
		got, errs := tr.SaveUser(req)
		if errs != nil {
			t.Fatalf("SaveUser() errors = %v", errs)
		}
		if got.Email != "test@gmail.com" {
			t.Fatalf("SaveUser() email = %s, want lower-cased", got.Email)
		}
	})

	t.Run("success: premium role is upper-cased", func(t *testing.T) {
		req := registerRequest()
		req.Role = "premium"
		got, errs := tr.SaveUser(req)
		if errs != nil {
			t.Fatalf("SaveUser() errors = %v", errs)
		}
		if got.Role != "PREMIUM" {
			t.Fatalf("SaveUser() role = %s, want PREMIUM", got.Role)
		}
	})

	t.Run("success: phone is optional", func(t *testing.T) {
		req := registerRequest()
		req.Phone = "1234567890"
		got, errs := tr.SaveUser(req)
		if errs != nil {
			t.Fatalf("SaveUser() errors = %v", errs)
		}
		if got.Phone != "1234567890" {
			t.Fatalf("SaveUser() phone = %s", got.Phone)
		}
	})

	t.Run("error: short password", func(t *testing.T) {
		req := registerRequest()
		req.Password = "1234567"
		req.ConfirmPassword = "1234567"
		_, errs := tr.SaveUser(req)
		if len(errs) == 0 || errs[0] != dto.MsgPasswordTooShort {
			t.Fatalf("SaveUser() errors = %v, want first %q", errs, dto.MsgPasswordTooShort)
		}
	})

	t.Run("error: confirmation mismatch is the first error", func(t *testing.T) {
		req := registerRequest()
		req.ConfirmPassword = "otherpassword"
		_, errs := tr.SaveUser(req)
		if len(errs) != 1 || errs[0] != dto.MsgPasswordsDoNotMatch {
			t.Fatalf("SaveUser() errors = %v, want only %q", errs, dto.MsgPasswordsDoNotMatch)
		}
	})

	t.Run("error: email outside allow-list", func(t *testing.T) {
		req := registerRequest()
		req.Email = "test@invalid.com"
		_, errs := tr.SaveUser(req)
		if len(errs) != 1 || errs[0] != dto.MsgValidEmailRequired {
			t.Fatalf("SaveUser() errors = %v, want only %q", errs, dto.MsgValidEmailRequired)
		}
	})

	t.Run("error: empty payload accumulates every required rule in order", func(t *testing.T) {
		got, errs := tr.SaveUser(&model.RegisterRequest{})
		want := dto.Errors{
			dto.MsgFirstNameRequired,
			dto.MsgLastNameRequired,
			dto.MsgEmailRequired,
			dto.MsgAgeRequired,
			dto.MsgPasswordRequired,
			dto.MsgValidEmailRequired,
		}
		if !reflect.DeepEqual(errs, want) {
			t.Fatalf("SaveUser() errors = %v, want %v", errs, want)
		}
		// hashing is not skipped on failure
		if got.PasswordHash == "" {
			t.Fatal("SaveUser() must hash even when validation failed")
		}
	})
}

// A record produced by SaveUser, fed back into LoadUser with the original
// plaintext, must authenticate and expose no password field.
func TestTransformer_SaveLoadRoundTrip(t *testing.T) {
	tr := newTransformer()

	saved, errs := tr.SaveUser(registerRequest())
	if errs != nil {
		t.Fatalf("SaveUser() errors = %v", errs)
	}

	stored := &model.UserEntity{
		ID:           1,
		FirstName:    saved.FirstName,
		LastName:     saved.LastName,
		Email:        saved.Email,
		Age:          saved.Age,
		PasswordHash: saved.PasswordHash,
		Role:         saved.Role,
		Phone:        saved.Phone,
	}

	profile, errs := tr.LoadUser(&model.LoginRequest{Email: "test@gmail.com", Password: "testpassword"}, stored)
	if errs != nil {
		t.Fatalf("LoadUser() errors = %v", errs)
	}
	if profile.Email != "test@gmail.com" || profile.Role != "USER" {
		t.Fatalf("LoadUser() = %+v", profile)
	}
}

func TestTransformer_UpdateUser(t *testing.T) {
	tr := newTransformer()

	t.Run("success: merges supplied fields onto the stored record", func(t *testing.T) {
		user := storedUser(t)
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{
			FirstName: "Updated",
			Phone:     "1234567890",
		}, user)
		if errs != nil {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
		if got.FirstName != "Updated" || got.Phone != "1234567890" {
			t.Fatalf("UpdateUser() = %+v", got)
		}
		if got.Email != "test@gmail.com" || got.LastName != "User" || got.Age != 25 {
			t.Fatalf("UpdateUser() clobbered untouched fields: %+v", got)
		}
		if got.ID != user.ID {
			t.Fatalf("UpdateUser() id = %d, want %d", got.ID, user.ID)
		}
	})

	t.Run("success: password never rotates on update", func(t *testing.T) {
		user := storedUser(t)
		before := user.PasswordHash
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{FirstName: "Updated"}, user)
		if errs != nil {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
		if got.PasswordHash != before {
			t.Fatal("UpdateUser() must keep the stored hash unchanged")
		}
	})

	t.Run("success: correct password passes the re-authentication gate", func(t *testing.T) {
		user := storedUser(t)
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{
			Password: "testpassword",
			Role:     "premium",
		}, user)
		if errs != nil {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
		if got.Role != "PREMIUM" {
			t.Fatalf("UpdateUser() role = %s, want PREMIUM", got.Role)
		}
		if got.PasswordHash != user.PasswordHash {
			t.Fatal("UpdateUser() must keep the stored hash unchanged")
		}
	})

	t.Run("error: missing stored record short-circuits", func(t *testing.T) {
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{FirstName: "Updated"}, nil)
		if got != nil {
			t.Fatalf("UpdateUser() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
	})

	t.Run("error: invalid new email short-circuits before merging", func(t *testing.T) {
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{Email: "test@invalid.com"}, storedUser(t))
		if got != nil {
			t.Fatalf("UpdateUser() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgValidEmailRequired}) {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
	})

	t.Run("error: short new password short-circuits", func(t *testing.T) {
		_, errs := tr.UpdateUser(&model.UpdateUserRequest{Password: "1234567"}, storedUser(t))
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgPasswordTooShort}) {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
	})

	t.Run("error: wrong password still returns the merged projection", func(t *testing.T) {
		user := storedUser(t)
		got, errs := tr.UpdateUser(&model.UpdateUserRequest{
			Password:  "wrongpassword",
			FirstName: "Updated",
		}, user)
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgIncorrectPassword}) {
			t.Fatalf("UpdateUser() errors = %v", errs)
		}
		if got == nil || got.FirstName != "Updated" {
			t.Fatalf("UpdateUser() = %+v, want merged projection alongside errors", got)
		}
	})
}

func TestTransformer_DeleteUser(t *testing.T) {
	tr := newTransformer()

	t.Run("success: valid deletion request", func(t *testing.T) {
		got, errs := tr.DeleteUser(&model.DeleteUserRequest{
			Email:           "test@gmail.com",
			Password:        "testpassword",
			ConfirmPassword: "testpassword",
		}, storedUser(t))
		if errs != nil {
			t.Fatalf("DeleteUser() errors = %v", errs)
		}
		// the plaintext password is echoed for the caller to re-confirm with
		if got.Email != "test@gmail.com" || got.Password != "testpassword" {
			t.Fatalf("DeleteUser() = %+v", got)
		}
	})

	t.Run("error: missing subject short-circuits", func(t *testing.T) {
		for _, tc := range []struct {
			req  *model.DeleteUserRequest
			user *model.UserEntity
		}{
			{req: nil, user: storedUser(t)},
			{req: &model.DeleteUserRequest{Email: "test@gmail.com"}, user: nil},
		} {
			got, errs := tr.DeleteUser(tc.req, tc.user)
			if got != nil {
				t.Fatalf("DeleteUser() = %+v, want nil", got)
			}
			if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
				t.Fatalf("DeleteUser() errors = %v", errs)
			}
		}
	})

	t.Run("error: invalid email", func(t *testing.T) {
		_, errs := tr.DeleteUser(&model.DeleteUserRequest{
			Email:           "test@invalid.com",
			Password:        "testpassword",
			ConfirmPassword: "testpassword",
		}, storedUser(t))
		if len(errs) != 1 || errs[0] != dto.MsgValidEmailRequired {
			t.Fatalf("DeleteUser() errors = %v", errs)
		}
	})

	t.Run("error: confirmation mismatch", func(t *testing.T) {
		_, errs := tr.DeleteUser(&model.DeleteUserRequest{
			Email:           "test@gmail.com",
			Password:        "testpassword",
			ConfirmPassword: "otherpassword",
		}, storedUser(t))
		if len(errs) == 0 || errs[0] != dto.MsgPasswordsDoNotMatch {
			t.Fatalf("DeleteUser() errors = %v", errs)
		}
	})

	t.Run("error: wrong password", func(t *testing.T) {
		_, errs := tr.DeleteUser(&model.DeleteUserRequest{
			Email:           "test@gmail.com",
			Password:        "wrongpassword",
			ConfirmPassword: "wrongpassword",
		}, storedUser(t))
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgIncorrectPassword}) {
			t.Fatalf("DeleteUser() errors = %v", errs)
		}
	})
}

func TestTransformer_LoadAdmin(t *testing.T) {
	tr := newTransformer()

	admin := &model.AdminAccount{
		FirstName: "Admin",
		LastName:  "Root",
		Email:     "admin@gmail.com",
		Password:  mustHash(t, "adminpassword"),
		Role:      "admin",
	}

	t.Run("success: configured credentials", func(t *testing.T) {
		got, errs := tr.LoadAdmin(&model.AdminLoginRequest{
			Email:    "admin@gmail.com",
			Password: "adminpassword",
		}, admin)
		if errs != nil {
			t.Fatalf("LoadAdmin() errors = %v", errs)
		}
		want := &model.AdminProfile{
			Email:     "admin@gmail.com",
			Role:      "ADMIN",
			FirstName: "Admin",
			LastName:  "Root",
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("LoadAdmin() = %+v, want %+v", got, want)
		}
	})

	t.Run("error: missing configured account short-circuits", func(t *testing.T) {
		got, errs := tr.LoadAdmin(&model.AdminLoginRequest{Email: "admin@gmail.com"}, nil)
		if got != nil {
			t.Fatalf("LoadAdmin() = %+v, want nil", got)
		}
		if !reflect.DeepEqual(errs, dto.Errors{dto.MsgUserNotFound}) {
			t.Fatalf("LoadAdmin() errors = %v", errs)
		}
	})

	t.Run("error: email mismatch never mentions the password", func(t *testing.T) {
		_, errs := tr.LoadAdmin(&model.AdminLoginRequest{
			Email:    "admin@invalid.com",
			Password: "invalidpassword",
		}, admin)
		if len(errs) == 0 || errs[0] != dto.MsgUserNotFound {
			t.Fatalf("LoadAdmin() errors = %v, want first %q", errs, dto.MsgUserNotFound)
		}
	})

	t.Run("error: empty credentials accumulate", func(t *testing.T) {
		_, errs := tr.LoadAdmin(&model.AdminLoginRequest{}, admin)
		want := dto.Errors{dto.MsgEmailRequired, dto.MsgPasswordRequired, dto.MsgUserNotFound}
		if !reflect.DeepEqual(errs, want) {
			t.Fatalf("LoadAdmin() errors = %v, want %v", errs, want)
		}
	})
}
