package dto

import (
	"regexp"
	"strings"
)

// DefaultEmailProviders is the provider allow-list accepted by the email
// validator. This is a deliberate allow-list, not general RFC validation:
// registration is restricted to these providers unless the list is replaced
// through configuration.
var DefaultEmailProviders = []string{"hotmail", "outlook", "gmail", "coder", "github"}

// compileEmailPattern builds the validator regexp: a word-character local
// part optionally segmented by single '.' or '-', an '@', one of the allowed
// providers, a dot, and an optional com/es suffix.
func compileEmailPattern(providers []string) *regexp.Regexp {
	escaped := make([]string, len(providers))
	for i, p := range providers {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)^\w+([.-]?\w+)*@(?:` + strings.Join(escaped, "|") + `)\.(?:com|es)?$`)
}

// ValidEmail reports whether the candidate matches the allow-list pattern.
func (t *Transformer) ValidEmail(email string) bool {
	return t.emailPattern.MatchString(email)
}
