package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/auth/dto"
	"courtbeat_backend/internals/features/auth/service"
	helper "courtbeat_backend/internals/helpers"
	authMw "courtbeat_backend/internals/middlewares/auth"
)

type AuthController struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(svc *service.AuthService, v *validator.Validate) *AuthController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AuthController{Service: svc, Validate: v}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	req.Normalize()

	res, err := ctl.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login successful", res)
}

// GET /api/auth/me (butuh AuthJWT)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	claims, ok := authMw.ClaimsFrom(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	res, err := ctl.Service.Me(c.UserContext(), claims)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", res)
}
