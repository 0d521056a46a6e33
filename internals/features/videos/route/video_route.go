package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/videos/controller"
)

// VideoRoutes: /api/videos
func VideoRoutes(r fiber.Router, ctl *controller.VideoController) {
	g := r.Group("/videos")
	g.Post("/upload/:workoutId", ctl.Upload)
	g.Get("/", ctl.FindAll)
	g.Get("/workout/:workoutId", ctl.FindByWorkout)
	g.Get("/:id", ctl.FindOne)
	g.Delete("/:id", ctl.Remove)
}
