package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(sessionExp, resetExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: sessionExp,
		ResetTokenExp:   resetExp,
		TokenIssuer:     "placement-portal-test",
	})
}

func TestGenerateSessionToken(t *testing.T) {
	svc := newTestJWTService(24*time.Hour, time.Hour)

	token, expiresIn, err := svc.GenerateSessionToken("user-1", "student", "college-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64((24 * time.Hour).Seconds()), expiresIn)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "college-1", claims.CollegeID)
	assert.Equal(t, PurposeSession, claims.Purpose)
}

func TestGenerateResetToken(t *testing.T) {
	svc := newTestJWTService(24*time.Hour, time.Hour)

	token, err := svc.GenerateResetToken("user-1")
	require.NoError(t, err)

	claims, err := svc.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, PurposePasswordReset, claims.Purpose)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.CollegeID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute, time.Hour)

	token, _, err := svc.GenerateSessionToken("user-1", "student", "college-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := newTestJWTService(24*time.Hour, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(24*time.Hour, time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		SessionTokenExp: 24 * time.Hour,
		ResetTokenExp:   time.Hour,
		TokenIssuer:     "placement-portal-test",
	})

	token, _, err := svc.GenerateSessionToken("user-1", "admin", "college-1")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_PurposeMismatch(t *testing.T) {
	svc := newTestJWTService(24*time.Hour, time.Hour)

	sessionToken, _, err := svc.GenerateSessionToken("user-1", "student", "college-1")
	require.NoError(t, err)
	resetToken, err := svc.GenerateResetToken("user-1")
	require.NoError(t, err)

	// A session token must not pass as a reset token, and vice versa.
	_, err = svc.ValidateResetToken(sessionToken)
	assert.ErrorIs(t, err, ErrWrongTokenPurpose)

	_, err = svc.ValidateSessionToken(resetToken)
	assert.ErrorIs(t, err, ErrWrongTokenPurpose)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
