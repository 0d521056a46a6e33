package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/workouts/controller"
)

// WorkoutRoutes: /api/workouts
func WorkoutRoutes(r fiber.Router, ctl *controller.WorkoutController) {
	g := r.Group("/workouts")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.FindAll)
	g.Get("/popular", ctl.GetPopular)
	g.Get("/:id", ctl.FindOne)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Remove)
	g.Post("/:id/thumbnail", ctl.SetThumbnail)
}
