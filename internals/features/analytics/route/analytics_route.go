package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/analytics/controller"
)

// AnalyticsRoutes: /api/analytics
func AnalyticsRoutes(r fiber.Router, ctl *controller.AnalyticsController) {
	g := r.Group("/analytics")
	g.Post("/track", ctl.TrackEvent)
	g.Get("/club/:clubId/stats", ctl.GetClubStats)
}
