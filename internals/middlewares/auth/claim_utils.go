// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authModel "courtbeat_backend/internals/features/auth/model"
)

// Locals keys yang diisi AuthJWT
const (
	LocClaims  = "jwt_claims"
	LocAdminID = "admin_id"
	LocClubID  = "club_id"
	LocEmail   = "email"
)

var (
	errNoToken       = errors.New("no token provided")
	errInvalidFormat = errors.New("invalid token format")
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errNoToken
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errInvalidFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

// ClaimsFrom ambil claims hasil AuthJWT dari context request.
func ClaimsFrom(c *fiber.Ctx) (*authModel.TokenClaims, bool) {
	cl, ok := c.Locals(LocClaims).(*authModel.TokenClaims)
	return cl, ok && cl != nil
}
