package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"courtbeat_backend/internals/features/videos/dto"
	"courtbeat_backend/internals/features/videos/service"
	helper "courtbeat_backend/internals/helpers"
)

// upload file besar melewati deadline request default (5s)
const uploadTimeout = 2 * time.Minute

type VideoController struct {
	Service        *service.VideoService
	MaxUploadBytes int64
}

func NewVideoController(svc *service.VideoService, maxUploadBytes int64) *VideoController {
	return &VideoController{Service: svc, MaxUploadBytes: maxUploadBytes}
}

// POST /api/videos/upload/:workoutId (multipart field "file")
func (ctl *VideoController) Upload(c *fiber.Ctx) error {
	workoutID, err := helper.ParseUUIDParam(c, "workoutId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}
	if ctl.MaxUploadBytes > 0 && fh.Size > ctl.MaxUploadBytes {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("File is too large (max %d MB)", ctl.MaxUploadBytes>>20))
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	m, _, err := ctl.Service.Create(ctx, workoutID, dto.Upload{FileName: fh.Filename, Size: fh.Size, Body: src})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Video uploaded, processing started", m)
}

// GET /api/videos
func (ctl *VideoController) FindAll(c *fiber.Ctx) error {
	out, err := ctl.Service.FindAll(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/videos/workout/:workoutId
func (ctl *VideoController) FindByWorkout(c *fiber.Ctx) error {
	workoutID, err := helper.ParseUUIDParam(c, "workoutId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}
	out, err := ctl.Service.FindByWorkout(c.UserContext(), workoutID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out))
}

// GET /api/videos/:id
func (ctl *VideoController) FindOne(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}
	m, err := ctl.Service.FindOne(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", m)
}

// DELETE /api/videos/:id (hard delete)
func (ctl *VideoController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}
	m, err := ctl.Service.Remove(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Video deleted", m)
}
