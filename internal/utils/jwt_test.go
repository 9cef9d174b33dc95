package utils

import (
	"testing"
	"time"

	"onboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedUser() *models.User {
	return &models.User{
		UserID:      "u1",
		PhoneNumber: "+91999",
		Email:       "a@b.com",
		Status:      models.StatusLabel(models.StatusApprovePending),
		StatusCode:  models.StatusApprovePending,
	}
}

func TestGenerateToken_Claims(t *testing.T) {
	token, err := GenerateToken("secret", 7*24*time.Hour, approvedUser())
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)

	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "+91999", claims.PhoneNumber)
	assert.Equal(t, "active", claims.Status)

	expiry := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), expiry.Seconds(), 60)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateToken("", time.Hour, approvedUser())
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, approvedUser())
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", -time.Minute, approvedUser())
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}
