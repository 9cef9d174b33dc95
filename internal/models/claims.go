package models

import "github.com/golang-jwt/jwt/v5"

// OnboardingClaims is the payload of the credential issued when a
// record reaches the active stage.
type OnboardingClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
}
