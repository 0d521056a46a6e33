package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/schedules/controller"
)

// ScheduleRoutes: /api/schedules
func ScheduleRoutes(r fiber.Router, ctl *controller.ScheduleController) {
	g := r.Group("/schedules")
	g.Post("/", ctl.Create)
	g.Get("/club/:clubId", ctl.FindByClub)
	g.Patch("/:id/complete", ctl.MarkComplete)
	g.Get("/:id", ctl.FindOne)
	g.Delete("/:id", ctl.Remove)
}
