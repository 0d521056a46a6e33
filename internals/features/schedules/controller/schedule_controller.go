package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/schedules/dto"
	"courtbeat_backend/internals/features/schedules/service"
	helper "courtbeat_backend/internals/helpers"
)

type ScheduleController struct {
	Service  *service.ScheduleService
	Validate *validator.Validate
}

func NewScheduleController(svc *service.ScheduleService, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &ScheduleController{Service: svc, Validate: v}
}

// POST /api/schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Schedule created successfully", m)
}

// GET /api/schedules/club/:clubId?upcoming=false
func (ctl *ScheduleController) FindByClub(c *fiber.Ctx) error {
	clubID, err := helper.ParseUUIDParam(c, "clubId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	out, err := ctl.Service.FindByClub(c.UserContext(), clubID, helper.QueryFlagDefault(c, "upcoming", true))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/schedules/:id
func (ctl *ScheduleController) FindOne(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	m, err := ctl.Service.FindOne(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// PATCH /api/schedules/:id/complete
func (ctl *ScheduleController) MarkComplete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	m, err := ctl.Service.MarkComplete(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Schedule marked as completed", m)
}

// DELETE /api/schedules/:id
func (ctl *ScheduleController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	if err := ctl.Service.Remove(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"id": id})
}
