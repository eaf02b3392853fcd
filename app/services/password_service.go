// Package services provides technical concerns like token signing, password hashing, and file export
package services

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies credentials. The stored value is always a
// salted bcrypt hash; the plaintext never leaves this boundary.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, candidate string) bool
}

// PasswordServiceImpl implements PasswordService using bcrypt
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a password service with the configured bcrypt cost
func NewPasswordService(cost int) PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordServiceImpl{cost: cost}
}

// Hash generates a salted hash. The salt is random per call, so hashing the
// same password twice never yields the same output.
func (s *PasswordServiceImpl) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify recomputes against the salt embedded in the stored hash. Any failure,
// including internal bcrypt errors, reads as a wrong credential so the caller
// cannot distinguish the cause.
func (s *PasswordServiceImpl) Verify(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
