package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a fixed bcrypt hash used only to equalize timing. Login
// attempts for unknown emails are compared against it so the failure takes
// the same time as a wrong password; the result is always discarded.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// PasswordHasher hashes passwords on registration and compares them on
// login. The cost factor is fixed at construction, never user-controlled.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
func NewPasswordHasher(cost int) PasswordHasher {
	return PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. The plaintext itself is never
// stored or logged.
func (h PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// VerifyDummy burns one bcrypt comparison against a fixed hash, discarding
// the result.
func (h PasswordHasher) VerifyDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
