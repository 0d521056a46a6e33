package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// FromFiberError mengubah error dari service (biasanya *fiber.Error)
// menjadi response JSON konsisten via JsonError.
// Jika bukan *fiber.Error, fallback ke 500 tanpa bocorin pesan internal.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler dipasang di fiber.Config untuk error yang lolos dari handler/middleware.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"reqid":  c.Locals("reqid"),
			}).WithError(err).Error("❌ unhandled error")
		}
		return FromFiberError(c, err)
	}
}
