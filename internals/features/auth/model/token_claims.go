package model

import "github.com/golang-jwt/jwt/v4"

// TokenClaims: payload JWT admin {sub, email, clubId}
type TokenClaims struct {
	Email  string `json:"email"`
	ClubID string `json:"clubId"`
	jwt.RegisteredClaims
}
