package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/workouts/dto"
	model "courtbeat_backend/internals/features/workouts/model"
	"courtbeat_backend/internals/features/workouts/service"
	helper "courtbeat_backend/internals/helpers"
)

const maxThumbnailBytes = 10 << 20

type WorkoutController struct {
	Service  *service.WorkoutService
	Validate *validator.Validate
}

func NewWorkoutController(svc *service.WorkoutService, v *validator.Validate) *WorkoutController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &WorkoutController{Service: svc, Validate: v}
}

// POST /api/workouts
func (ctl *WorkoutController) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkoutRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Workout created successfully", m)
}

// GET /api/workouts?type=&sportType=&difficulty=&requiresReformer=&hasReformerAccess=
func (ctl *WorkoutController) FindAll(c *fiber.Ctx) error {
	f := parseFilter(c)
	if err := ctl.Validate.Struct(f); err != nil {
		return helper.ValidationError(c, err)
	}
	out, err := ctl.Service.FindAll(c.UserContext(), f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/workouts/popular?limit=10
func (ctl *WorkoutController) GetPopular(c *fiber.Ctx) error {
	limit, err := helper.QueryInt(c, "limit", service.DefaultPopularLimit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "limit must be a number")
	}
	out, err := ctl.Service.GetPopular(c.UserContext(), limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/workouts/:id
func (ctl *WorkoutController) FindOne(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}
	out, err := ctl.Service.FindOne(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// PATCH /api/workouts/:id
func (ctl *WorkoutController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}
	var req dto.UpdateWorkoutRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Workout updated successfully", m)
}

// DELETE /api/workouts/:id (soft delete)
func (ctl *WorkoutController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}
	m, err := ctl.Service.Remove(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Workout deactivated", m)
}

// POST /api/workouts/:id/thumbnail (multipart field "file")
func (ctl *WorkoutController) SetThumbnail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}
	if fh.Size > maxThumbnailBytes {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image is too large")
	}
	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	m, err := ctl.Service.SetThumbnail(c.UserContext(), id, src)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Thumbnail updated", m)
}

// parseFilter: enum apa adanya (divalidasi kemudian), boolean pakai semantik == "true"
func parseFilter(c *fiber.Ctx) dto.WorkoutFilter {
	var f dto.WorkoutFilter
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		t := model.WorkoutType(v)
		f.Type = &t
	}
	if v := strings.TrimSpace(c.Query("sportType")); v != "" {
		st := model.SportType(v)
		f.SportType = &st
	}
	if v := strings.TrimSpace(c.Query("difficulty")); v != "" {
		d := model.Difficulty(v)
		f.Difficulty = &d
	}
	if v := strings.TrimSpace(c.Query("requiresReformer")); v != "" {
		b := v == "true"
		f.RequiresReformer = &b
	}
	if v := strings.TrimSpace(c.Query("hasReformerAccess")); v != "" {
		b := v == "true"
		f.HasReformerAccess = &b
	}
	return f
}
