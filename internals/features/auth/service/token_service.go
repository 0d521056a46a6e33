package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"courtbeat_backend/internals/features/auth/model"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// TokenIssuer: sign & verifikasi JWT admin (HS256, stateless).
type TokenIssuer struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenIssuer(secret string, expiresIn time.Duration) *TokenIssuer {
	if expiresIn <= 0 {
		expiresIn = 7 * 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiresIn: expiresIn}
}

func (t *TokenIssuer) Issue(admin *model.ClubAdminModel, now time.Time) (string, error) {
	claims := model.TokenClaims{
		Email:  admin.Email,
		ClubID: admin.ClubID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiresIn)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifikasi algoritma, signature, exp. Error apa pun dikembalikan apa adanya;
// service yang menyeragamkan jadi "Invalid token".
func (t *TokenIssuer) Parse(raw string) (*model.TokenClaims, error) {
	claims := &model.TokenClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token not valid")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no exp")
	}
	return claims, nil
}
