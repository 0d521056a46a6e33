package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/music/dto"
	"courtbeat_backend/internals/features/music/service"
	helper "courtbeat_backend/internals/helpers"
)

type MusicController struct {
	Service  *service.MusicService
	Validate *validator.Validate
}

func NewMusicController(svc *service.MusicService, v *validator.Validate) *MusicController {
	if v == nil {
		v = helper.NewValidator()
	}
	return &MusicController{Service: svc, Validate: v}
}

// GET /api/music?energy=high
func (ctl *MusicController) FindAll(c *fiber.Ctx) error {
	var (
		out any
		n   int
	)
	if energy := strings.ToLower(strings.TrimSpace(c.Query("energy"))); energy != "" {
		rows, err := ctl.Service.FindByEnergy(c.UserContext(), energy)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		out, n = rows, len(rows)
	} else {
		rows, err := ctl.Service.FindAll(c.UserContext())
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		out, n = rows, len(rows)
	}
	return helper.JsonList(c, "ok", out, n)
}

// POST /api/music
func (ctl *MusicController) Create(c *fiber.Ctx) error {
	var req dto.CreateMusicTrackRequest
	if ok, err := helper.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}
	m, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Music track created", m)
}
