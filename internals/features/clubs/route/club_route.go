package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/clubs/controller"
)

// ClubRoutes: /api/clubs
func ClubRoutes(r fiber.Router, ctl *controller.ClubController) {
	g := r.Group("/clubs")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.FindAll)
	g.Get("/access/:code", ctl.FindByAccessCode)
	g.Get("/:id/stats", ctl.GetStats)
	g.Get("/:id", ctl.FindOne)
	g.Patch("/:id/upgrade", ctl.UpgradeToPremium)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Remove)
}
