package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bikeshop_backoffice/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", ""))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-42", "secret", time.Hour, "bikeshop-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "bikeshop-test", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, a, 22)
	assert.NotContains(t, a, "=")
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestPosthogWrapperNoop(t *testing.T) {
	var w *PosthogClientWrapper
	assert.False(t, w.IsInitialized())
	w.Enqueue("u", "e", nil)
	w.Close()

	empty := &PosthogClientWrapper{}
	assert.False(t, empty.IsInitialized())
}
