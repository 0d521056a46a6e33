package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// QueryFlag: hanya string "true" yang dianggap true
func QueryFlag(c *fiber.Ctx, key string) bool {
	return strings.TrimSpace(c.Query(key)) == "true"
}

// QueryFlagDefault: seperti QueryFlag tapi param kosong → def
func QueryFlagDefault(c *fiber.Ctx, key string, def bool) bool {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	return v == "true"
}

// QueryInt: param kosong → def, bukan angka → error
func QueryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
