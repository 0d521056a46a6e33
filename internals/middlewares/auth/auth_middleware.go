// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	authModel "courtbeat_backend/internals/features/auth/model"
)

// TokenValidator dipenuhi oleh auth service (ValidateToken).
type TokenValidator interface {
	ValidateToken(token string) (*authModel.TokenClaims, error)
}

type AuthJWTOpts struct {
	Validator TokenValidator
}

// AuthJWT: wajib Bearer token valid. Semua kegagalan → 401 "Invalid token"
// (kecuali header kosong).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	if o.Validator == nil {
		panic("AuthJWT: Validator wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			if err == errNoToken {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, err := o.Validator.ValidateToken(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(LocClaims, claims)
		c.Locals(LocAdminID, claims.Subject)
		c.Locals(LocClubID, claims.ClubID)
		c.Locals(LocEmail, claims.Email)
		return c.Next()
	}
}
