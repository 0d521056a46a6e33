package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/observability"
)

// MetricsMiddleware catat jumlah & latency request per route template.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil && errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		observability.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
