// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is used when a non-positive cost is configured.
const DefaultCost = 12

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

// ErrTooLong is returned for passwords longer than MaxLength bytes.
var ErrTooLong = errors.New("password must be at most 72 bytes")

// Bcrypt hashes passwords with a per-call random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost, clamped to bcrypt's allowed range.
func NewBcrypt(cost int) *Bcrypt {
	switch {
	case cost <= 0:
		cost = DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. Two calls never return the same hash.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. bcrypt only reads the first
// MaxLength bytes, so longer candidates never match.
func (b *Bcrypt) Verify(plaintext, hash string) bool {
	if len(plaintext) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
