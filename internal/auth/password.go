package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters match Node's scryptSync defaults so digests written
// by the previous deployment keep verifying.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	DigestLength = 64
	SaltLength   = 16
)

// ErrDigestLength is returned when a stored digest is malformed or has the wrong size.
var ErrDigestLength = errors.New("stored digest has unexpected length")

// PasswordHasher derives and checks salted scrypt digests.
type PasswordHasher struct {
	n, r, p int
}

// NewPasswordHasher returns a hasher using the production scrypt cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{n: scryptN, r: scryptR, p: scryptP}
}

// NewSalt returns a fresh random salt, hex encoded.
func (h *PasswordHasher) NewSalt() (string, error) {
	b := make([]byte, SaltLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash derives the digest of password under salt.
func (h *PasswordHasher) Hash(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, DigestLength)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	return key, nil
}

// HashHex is Hash with the hex encoding used for storage.
func (h *PasswordHasher) HashHex(password, salt string) (string, error) {
	key, err := h.Hash(password, salt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// Verify recomputes the digest and compares it in constant time.
func (h *PasswordHasher) Verify(password, salt, expectedHex string) (bool, error) {
	expected, err := hex.DecodeString(expectedHex)
	if err != nil || len(expected) != DigestLength {
		return false, ErrDigestLength
	}
	actual, err := h.Hash(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}
