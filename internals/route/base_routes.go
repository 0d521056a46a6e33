package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthTimeout = 2 * time.Second

// Pinger: cek koneksi DB untuk /health
type Pinger func(ctx context.Context) error

func BaseRoutes(app *fiber.App, ping Pinger, environment string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CourtBeat API is running 🎾")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		dbStatus := "connected"
		serverStatus := "ok"
		httpStatus := fiber.StatusOK

		if err := ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "down"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    environment,
		})
	})
}
