package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used in production. Cost 12
// keeps offline brute force expensive; tests pass bcrypt.MinCost.
const DefaultHashCost = 12

// PasswordHasher performs one-way salted hashing of credentials. The
// bcrypt output embeds its own salt and cost, so verification needs no
// side channel.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = DefaultHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the plaintext. The plaintext is never
// logged or stored.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func (h *PasswordHasher) Verify(plaintext, hashedCredential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedCredential), []byte(plaintext)) == nil
}
