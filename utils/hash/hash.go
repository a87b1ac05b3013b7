// Package hash provides the one-way password hashing primitive used by the
// dto transformers.
package hash

import "golang.org/x/crypto/bcrypt"

type Bcrypt struct {
	cost int
}

func New() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// NewWithCost is meant for tests that run many hash rounds.
func NewWithCost(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (b *Bcrypt) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
