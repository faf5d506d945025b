package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by the identity provider's
// access tokens. Only UserID is required; the rest is informational.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
