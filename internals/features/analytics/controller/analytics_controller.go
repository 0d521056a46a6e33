package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/analytics/dto"
	"courtbeat_backend/internals/features/analytics/service"
	helper "courtbeat_backend/internals/helpers"
)

type AnalyticsController struct {
	Service  *service.AnalyticsService
	Validate *validator.Validate
}

func NewAnalyticsController(svc *service.AnalyticsService, v *validator.Validate) *AnalyticsController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &AnalyticsController{Service: svc, Validate: v}
}

// POST /api/analytics/track
func (ctl *AnalyticsController) TrackEvent(c *fiber.Ctx) error {
	var req dto.TrackEventRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.TrackEvent(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Event tracked", m)
}

// GET /api/analytics/club/:clubId/stats?days=30
func (ctl *AnalyticsController) GetClubStats(c *fiber.Ctx) error {
	clubID, err := helper.ParseUUIDParam(c, "clubId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}
	days, err := helper.QueryInt(c, "days", service.DefaultStatsDays)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "days must be a number")
	}
	out, err := ctl.Service.GetClubStats(c.UserContext(), clubID, days)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
