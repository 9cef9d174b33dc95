package utils

import (
	"errors"
	"time"

	"onboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints the signed credential for an approved record.
// The token asserts the user's identity and active status and expires
// after ttl; expiry is the only invalidation path.
func GenerateToken(secret string, ttl time.Duration, user *models.User) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	now := time.Now()
	claims := &models.OnboardingClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:      user.UserID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Status:      models.StatusLabel(models.StatusActive),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken validates a credential and returns its claims.
func ParseToken(secret, tokenString string) (*models.OnboardingClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.OnboardingClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.OnboardingClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
