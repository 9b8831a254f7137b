package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Stored hashes come in two tagged variants: bcrypt (the default, no tag)
// and a legacy "sha256:" prefixed hex digest. Verification dispatches on the
// stored tag; new hashes are always bcrypt.
const sha256Prefix = "sha256:"

func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", errors.New("password must be at least 6 characters")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// HashPasswordSHA256 produces the legacy tagged variant. Kept only so
// migrations and tests can construct rows in the old format.
func HashPasswordSHA256(password string) string {
	digest := sha256.Sum256([]byte(password))
	return sha256Prefix + hex.EncodeToString(digest[:])
}

func CheckPassword(password, hashedPassword string) error {
	if strings.HasPrefix(hashedPassword, sha256Prefix) {
		digest := sha256.Sum256([]byte(password))
		candidate := sha256Prefix + hex.EncodeToString(digest[:])
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(hashedPassword)) != 1 {
			return errors.New("password mismatch")
		}
		return nil
	}

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
