package dto

import (
	"encoding/hex"
	"io"
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/model"
)

const (
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

// CreateResetToken mints a password-reset credential bound to a stored user:
// a random hex token and an expiry one hour from issuance. A new issuance
// supersedes any prior pair. Token generation is not skipped when the email
// format check fails; the projection is always complete.
func (t *Transformer) CreateResetToken(user *model.UserEntity) (*model.PasswordReset, Errors) {
	var errs Errors

	if user == nil {
		errs.add(MsgUserNotFound)
		return nil, errs
	}

	if !t.ValidEmail(user.Email) {
		errs.add(MsgValidEmailRequired)
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(t.tokenSource, buf); err != nil {
		errs.add(MsgTokenUnavailable)
	}

	return &model.PasswordReset{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Age:          user.Age,
		Role:         normalizeRole(user.Role),
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		ResetToken:   hex.EncodeToString(buf),
		ResetExpires: t.now().Add(resetTokenTTL),
	}, errs.orNil()
}

// ResetPassword validates and applies a new password to a stored record.
// A candidate that compares equal to the stored hash is rejected: a reset
// must not reinstate the immediately preceding password. The new password is
// hashed even when validation already failed.
func (t *Transformer) ResetPassword(req *model.ResetPasswordRequest, user *model.UserEntity) (*model.NewCredentials, Errors) {
	var errs Errors

	if req == nil || user == nil {
		errs.add(MsgUserNotFound)
		return nil, errs
	}

	if !t.ValidEmail(req.Email) {
		errs.add(MsgValidEmailRequired)
	}
	if len(req.Password) < minPasswordLength {
		errs.add(MsgPasswordTooShort)
	}
	if req.Password != req.ConfirmPassword {
		errs.add(MsgPasswordsDoNotMatch)
	}
	if req.Password != "" && user.PasswordHash != "" && t.hasher.Compare(req.Password, user.PasswordHash) {
		errs.add(MsgPasswordReused)
	}

	hash, err := t.hasher.Hash(req.Password)
	if err != nil {
		errs.add(MsgPasswordUnusable)
	}

	return &model.NewCredentials{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Age:          user.Age,
		Role:         normalizeRole(user.Role),
		Phone:        user.Phone,
		PasswordHash: hash,
		ResetToken:   user.PasswordResetToken,
		ResetExpires: user.PasswordResetExpires,
	}, errs.orNil()
}
