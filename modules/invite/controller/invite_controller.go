package controller

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/controller"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InviteController struct {
	controller.BaseController
	service service.InviteServiceInterface
}

func NewInviteController(svc service.InviteServiceInterface) *InviteController {
	return &InviteController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// List handles GET /invites. The archive query flag switches between
// upcoming and past invites.
func (c *InviteController) List(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	archived := ctx.QueryParam("archive") == "true"

	resp, appErr := c.service.GetInvites(ctx.Request().Context(), claims.UserID, claims.Timezone, archived)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Invites retrieved")
}

// Get handles GET /invite/:id
func (c *InviteController) Get(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	inviteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid invite ID")
	}

	resp, appErr := c.service.GetInvite(ctx.Request().Context(), claims.UserID, claims.Timezone, inviteID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Invite retrieved")
}

// Edit handles POST /invite/:id
func (c *InviteController) Edit(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	inviteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid invite ID")
	}

	var req dto.OverrideRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}

	if appErr := c.service.EditOverride(ctx.Request().Context(), claims.UserID, inviteID, &req); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Invite updated")
}

// Restore handles POST /invite/:id/restore
func (c *InviteController) Restore(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	inviteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid invite ID")
	}

	if appErr := c.service.RestoreInvite(ctx.Request().Context(), claims.UserID, inviteID); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Invite restored")
}

// Attendance handles POST /invite/:id/attendance
func (c *InviteController) Attendance(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	inviteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid invite ID")
	}

	var req dto.AttendanceRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	if appErr := c.service.SetAttendance(ctx.Request().Context(), claims.UserID, inviteID, &req); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Attendance updated")
}
