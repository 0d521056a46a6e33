package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/clubs/dto"
	"courtbeat_backend/internals/features/clubs/service"
	helper "courtbeat_backend/internals/helpers"
)

type ClubController struct {
	Service  *service.ClubService
	Validate *validator.Validate
}

func NewClubController(svc *service.ClubService, v *validator.Validate) *ClubController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ClubController{Service: svc, Validate: v}
}

// POST /api/clubs
func (ctl *ClubController) Create(c *fiber.Ctx) error {
	var req dto.CreateClubRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Club created successfully", m)
}

// GET /api/clubs?includeInactive=true
func (ctl *ClubController) FindAll(c *fiber.Ctx) error {
	out, err := ctl.Service.FindAll(c.UserContext(), helper.QueryFlag(c, "includeInactive"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/clubs/access/:code (akses member tanpa akun)
func (ctl *ClubController) FindByAccessCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Access code is required")
	}
	m, err := ctl.Service.FindByAccessCode(c.UserContext(), code)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// GET /api/clubs/:id
func (ctl *ClubController) FindOne(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	out, err := ctl.Service.FindOne(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/clubs/:id/stats
func (ctl *ClubController) GetStats(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	out, err := ctl.Service.GetStats(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// PATCH /api/clubs/:id
func (ctl *ClubController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	var req dto.UpdateClubRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Club updated successfully", m)
}

// PATCH /api/clubs/:id/upgrade
func (ctl *ClubController) UpgradeToPremium(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	m, err := ctl.Service.UpgradeToPremium(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Club upgraded to premium", m)
}

// DELETE /api/clubs/:id (soft delete)
func (ctl *ClubController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	m, err := ctl.Service.Remove(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Club deactivated", m)
}
