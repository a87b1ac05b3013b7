// Package dto implements the account validation and transformation pipeline.
//
// Every transformer is a pure, synchronous computation: it takes raw input
// (and, where relevant, a previously stored record) and returns either a
// sanitized projection or the projection alongside an ordered list of
// violation messages. Callers must treat a non-nil Errors value as failure
// and never persist or expose the accompanying projection as authoritative.
//
// Validation accumulates: every rule runs and reports, in a fixed order. The
// single exception is the missing-subject check ("the record this operation
// is about does not exist"), which short-circuits and returns errors only.
package dto

import (
	"crypto/rand"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/valentinalvarez/ecommerce-accounts/constant"
)

// Validation messages, one per rule. Tests rely on their order of
// appearance matching rule evaluation order.
const (
	MsgEmailRequired       = "email is required"
	MsgFirstNameRequired   = "first_name is required"
	MsgLastNameRequired    = "last_name is required"
	MsgAgeRequired         = "age is required"
	MsgPasswordRequired    = "password is required"
	MsgValidEmailRequired  = "a valid email is required"
	MsgPasswordTooShort    = "password must be at least 8 characters"
	MsgPasswordsDoNotMatch = "passwords do not match"
	MsgIncorrectPassword   = "incorrect password"
	MsgUserNotFound        = "user does not exist"
	MsgPasswordReused      = "password must be different from the previous one"
	MsgPasswordUnusable    = "password could not be processed"
	MsgTokenUnavailable    = "reset token could not be generated"
)

// Hasher is the one-way password hashing primitive. Compare must be
// deterministic for equality but the hash is never reversible.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}

// Errors is the ordered list of violation messages accumulated by a
// transformer. A nil Errors signals success.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

func (e *Errors) add(msg string) {
	*e = append(*e, msg)
}

// orNil keeps the nil-on-success contract after accumulation.
func (e Errors) orNil() Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Transformer holds the collaborators the transformers depend on: the hashing
// primitive, the compiled email allow-list, and injectable clock and random
// sources so expiry and token generation are deterministic in tests.
type Transformer struct {
	hasher       Hasher
	emailPattern *regexp.Regexp
	now          func() time.Time
	tokenSource  io.Reader
}

type Option func(*Transformer)

// WithEmailProviders replaces the default provider allow-list used by the
// email validator.
func WithEmailProviders(providers []string) Option {
	return func(t *Transformer) {
		t.emailPattern = compileEmailPattern(providers)
	}
}

// WithNow overrides the wall clock used for reset token expiry.
func WithNow(now func() time.Time) Option {
	return func(t *Transformer) {
		t.now = now
	}
}

// WithTokenSource overrides the random source used for reset token bytes.
func WithTokenSource(src io.Reader) Option {
	return func(t *Transformer) {
		t.tokenSource = src
	}
}

func New(hasher Hasher, opts ...Option) *Transformer {
	t := &Transformer{
		hasher:       hasher,
		emailPattern: compileEmailPattern(DefaultEmailProviders),
		now:          time.Now,
		tokenSource:  rand.Reader,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// normalizeRole upper-cases a stored role and defaults to USER when absent.
func normalizeRole(role string) string {
	if role == "" {
		return constant.RoleUser
	}
	return strings.ToUpper(role)
}
