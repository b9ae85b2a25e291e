// Package auth holds the credential primitives for idea ownership and
// private-idea passwords: an opaque creator token generated once per idea,
// and bcrypt hashing for stored passwords.
package auth

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// GenerateCreatorToken returns a random 128-bit hex token. Possession of the
// token is the ownership proof for an idea; it is issued once at creation and
// never regenerated.
func GenerateCreatorToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword returns a bcrypt hash of the plaintext with a fresh salt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored bcrypt
// hash. A malformed hash counts as a mismatch.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
