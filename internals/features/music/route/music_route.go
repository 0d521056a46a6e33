package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/music/controller"
)

// MusicRoutes: /api/music
func MusicRoutes(r fiber.Router, ctl *controller.MusicController) {
	g := r.Group("/music")
	g.Get("/", ctl.FindAll)
	g.Post("/", ctl.Create)
}
