package route

import (
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/auth/controller"
	"courtbeat_backend/internals/middlewares"
	authMw "courtbeat_backend/internals/middlewares/auth"
)

// AuthRoutes: /api/auth
func AuthRoutes(r fiber.Router, ctl *controller.AuthController) {
	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Get("/me", authMw.AuthJWT(authMw.AuthJWTOpts{Validator: ctl.Service}), ctl.Me)
}
