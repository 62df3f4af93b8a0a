package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "bmefuto.portal.test",
	})
}

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateAdminToken(42, "admin")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, int64(42), claims.AdminID)
	assert.Equal(t, "admin", claims.Subject)
	assert.Empty(t, claims.RegNumber)
}

func TestStudentTokenRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, _, err := svc.GenerateStudentToken("20211234567")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, claims.Role)
	assert.Equal(t, "20211234567", claims.RegNumber)
	assert.Equal(t, "20211234567", claims.Subject)
	assert.Zero(t, claims.AdminID)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateStudentToken("20211234567")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	token, _, err := svc.GenerateAdminToken(1, "admin")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
