package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently ignores everything past this length.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password using bcrypt. Passwords bcrypt
// would truncate are rejected as a validation error.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash. Accounts without a
// local password (Google sign-in) never match.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSecureRandomString returns n random bytes encoded as unpadded
// URL-safe base64, suitable for OAuth state values.
func GenerateSecureRandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("random string length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
