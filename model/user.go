package model

import "time"

// UserEntity represents the user table entity. PasswordHash always carries the
// one-way hash; plaintext passwords never reach storage.
type UserEntity struct {
	ID                   uint64     `db:"id" json:"id"`
	FirstName            string     `db:"first_name" json:"first_name"`
	LastName             string     `db:"last_name" json:"last_name"`
	Email                string     `db:"email" json:"email"`
	Age                  int        `db:"age" json:"age"`
	PasswordHash         string     `db:"password_hash" json:"-"`
	Role                 string     `db:"role" json:"role"`
	Phone                string     `db:"phone" json:"phone,omitempty"`
	PasswordResetToken   string     `db:"password_reset_token" json:"-"`
	PasswordResetExpires *time.Time `db:"password_reset_expires" json:"-"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID         uint64
	Email      string
	ResetToken string
}

// RegisterRequest for user registration. Field rules are owned by the dto
// transformers, not by struct tags, so every violated rule is reported.
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Age             int    `json:"age"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
	Phone           string `json:"phone"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetUserRequest normalizes a lookup by email or full credential payload
type GetUserRequest struct {
	Email    string `json:"email"`
	ID       uint64 `json:"id"`
	Password string `json:"password"`
}

// UpdateUserRequest carries the fields to merge onto the stored record.
// Password is the current password used as a re-authentication gate; this
// operation never rotates the stored hash.
type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// DeleteUserRequest for account deletion
type DeleteUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AdminLoginRequest for the configured administrator account
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts the reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest redeems a reset token
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AdminAccount is the administrator record sourced from configuration,
// never from the document store. Password holds the hash.
type AdminAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UserLookup is the GetUser projection
type UserLookup struct {
	Email    string `json:"email"`
	ID       uint64 `json:"id"`
	Password string `json:"password"`
}

// UserProfile is the public projection of a stored user; it never exposes
// the password hash.
type UserProfile struct {
	ID        uint64 `json:"id"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

// SavedUser is the SaveUser projection, ready to persist
type SavedUser struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Age          int    `json:"age"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
}

// UpdatedUser is the full merged record produced by UpdateUser
type UpdatedUser struct {
	ID                   uint64     `json:"id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	Age                  int        `json:"age"`
	PasswordHash         string     `json:"-"`
	Role                 string     `json:"role"`
	Phone                string     `json:"phone"`
	PasswordResetToken   string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
}

// DeleteConfirmation echoes the credentials the caller re-confirms the
// deletion with; the password stays plaintext here on purpose.
type DeleteConfirmation struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// AdminProfile is the LoadAdmin projection
type AdminProfile struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PasswordReset is the CreateResetToken projection: the full user record
// plus a freshly minted token pair.
type PasswordReset struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	ResetToken   string    `json:"-"`
	ResetExpires time.Time `json:"-"`
}

// NewCredentials is the ResetPassword projection: the stored profile with the
// new password hash and the unchanged token pair.
type NewCredentials struct {
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Age          int        `json:"age"`
	Role         string     `json:"role"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	ResetToken   string     `json:"-"`
	ResetExpires *time.Time `json:"-"`
}

type RegisterResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

type AdminLoginResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}
