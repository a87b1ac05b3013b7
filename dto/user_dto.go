package dto

import (
	"strings"

	"github.com/valentinalvarez/ecommerce-accounts/model"
)

const minPasswordLength = 8

// GetUser normalizes a lookup request. The projection always carries the
// email, id and password it resolved, even when validation failed.
func (t *Transformer) GetUser(req *model.GetUserRequest) (*model.UserLookup, Errors) {
	var errs Errors

	if req == nil {
		errs.add(MsgEmailRequired)
		return nil, errs
	}

	if req.Email == "" {
		errs.add(MsgEmailRequired)
	}
	if !t.ValidEmail(req.Email) {
		errs.add(MsgValidEmailRequired)
	}

	return &model.UserLookup{
		Email:    req.Email,
		ID:       req.ID,
		Password: req.Password,
	}, errs.orNil()
}

// LoadUser authenticates a login payload against a stored record and projects
// the public view of that record. The stored email is validated, not the
// input one: a record that no longer passes the allow-list is treated as
// corrupt. The projection never includes the password hash.
func (t *Transformer) LoadUser(req *model.LoginRequest, user *model.UserEntity) (*model.UserProfile, Errors) {
	var errs Errors

	if req == nil || user == nil {
		errs.add(MsgUserNotFound)
		return nil, errs
	}

	if req.Password != "" && !t.hasher.Compare(req.Password, user.PasswordHash) {
		errs.add(MsgIncorrectPassword)
	}
	if !t.ValidEmail(user.Email) {
		errs.add(MsgValidEmailRequired)
	}

	return &model.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Age:       user.Age,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      normalizeRole(user.Role),
	}, errs.orNil()
}

// SaveUser validates and normalizes a registration payload into a storable
// record. Phone is the one optional field. The password is hashed even when
// validation already failed, so the projection is always complete.
func (t *Transformer) SaveUser(req *model.RegisterRequest) (*model.SavedUser, Errors) {
	var errs Errors

	if req == nil {
		req = &model.RegisterRequest{}
	}

	if req.FirstName == "" {
		errs.add(MsgFirstNameRequired)
	}
	if req.LastName == "" {
		errs.add(MsgLastNameRequired)
	}
	if req.Email == "" {
		errs.add(MsgEmailRequired)
	}
	if req.Age <= 0 {
		errs.add(MsgAgeRequired)
	}
	if req.Password == "" {
		errs.add(MsgPasswordRequired)
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		errs.add(MsgPasswordTooShort)
	}
	if req.Password != req.ConfirmPassword {
		errs.add(MsgPasswordsDoNotMatch)
	}
	if !t.ValidEmail(req.Email) {
		errs.add(MsgValidEmailRequired)
	}

	hash, err := t.hasher.Hash(req.Password)
	if err != nil {
		errs.add(MsgPasswordUnusable)
	}

	return &model.SavedUser{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(req.Email),
		Age:          req.Age,
		PasswordHash: hash,
		Role:         normalizeRole(req.Role),
		Phone:        req.Phone,
	}, errs.orNil()
}

// UpdateUser merges an update payload onto a stored record and re-validates.
// Format checks run first and short-circuit; the password, when supplied, is
// a re-authentication gate against the existing hash and never rotates it.
// The merged projection is returned even alongside an authentication error.
func (t *Transformer) UpdateUser(req *model.UpdateUserRequest, existing *model.UserEntity) (*model.UpdatedUser, Errors) {
	var errs Errors

	if req == nil {
		req = &model.UpdateUserRequest{}
	}

	if req.Email != "" && !t.ValidEmail(req.Email) {
		errs.add(MsgValidEmailRequired)
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		errs.add(MsgPasswordTooShort)
	}
	if existing == nil {
		errs.add(MsgUserNotFound)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if req.Password != "" && !t.hasher.Compare(req.Password, existing.PasswordHash) {
		errs.add(MsgIncorrectPassword)
	}

	// Merge supplied fields onto a working copy; password and id never merge.
	merged := *existing
	if req.FirstName != "" {
		merged.FirstName = req.FirstName
	}
	if req.LastName != "" {
		merged.LastName = req.LastName
	}
	if req.Email != "" {
		merged.Email = req.Email
	}
	if req.Age > 0 {
		merged.Age = req.Age
	}
	if req.Role != "" {
		merged.Role = req.Role
	}
	if req.Phone != "" {
		merged.Phone = req.Phone
	}

	return &model.UpdatedUser{
		ID:                   merged.ID,
		FirstName:            merged.FirstName,
		LastName:             merged.LastName,
		Email:                merged.Email,
		Age:                  merged.Age,
		PasswordHash:         existing.PasswordHash,
		Role:                 normalizeRole(merged.Role),
		Phone:                merged.Phone,
		PasswordResetToken:   merged.PasswordResetToken,
		PasswordResetExpires: merged.PasswordResetExpires,
	}, errs.orNil()
}

// DeleteUser authenticates and normalizes a deletion request. The projection
// returns the plaintext input password for the caller to re-confirm the
// deletion against the storage layer; it is not re-hashed here.
func (t *Transformer) DeleteUser(req *model.DeleteUserRequest, user *model.UserEntity) (*model.DeleteConfirmation, Errors) {
	var errs Errors

	if req == nil || user == nil {
		errs.add(MsgUserNotFound)
		return nil, errs
	}

	if !t.ValidEmail(req.Email) {
		errs.add(MsgValidEmailRequired)
	}
	if req.Password != req.ConfirmPassword {
		errs.add(MsgPasswordsDoNotMatch)
	}
	if req.Password != "" && !t.hasher.Compare(req.Password, user.PasswordHash) {
		errs.add(MsgIncorrectPassword)
	}

	return &model.DeleteConfirmation{
		Email:    req.Email,
		Password: req.Password,
	}, errs.orNil()
}

// LoadAdmin authenticates a privileged account sourced from configuration.
// An email mismatch reports "user does not exist" rather than a password
// error, so the admin path never reveals which credential was wrong.
func (t *Transformer) LoadAdmin(req *model.AdminLoginRequest, admin *model.AdminAccount) (*model.AdminProfile, Errors) {
	var errs Errors

	if req == nil || admin == nil {
		errs.add(MsgUserNotFound)
		return nil, errs
	}

	if req.Email == "" {
		errs.add(MsgEmailRequired)
	}
	if req.Password == "" {
		errs.add(MsgPasswordRequired)
	}
	if req.Email != admin.Email {
		errs.add(MsgUserNotFound)
	}
	if req.Password != "" && !t.hasher.Compare(req.Password, admin.Password) {
		errs.add(MsgIncorrectPassword)
	}

	return &model.AdminProfile{
		Email:     admin.Email,
		Role:      normalizeRole(admin.Role),
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
	}, errs.orNil()
}
