package controller

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/controller"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	service service.CalendarServiceInterface
}

func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Create handles PUT /calendar
func (c *CalendarController) Create(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	var req dto.CalendarRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.CreateCalendar(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Calendar created")
}

// List handles GET /calendars
func (c *CalendarController) List(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	resp, appErr := c.service.GetCalendars(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Calendars retrieved")
}

// Edit handles POST /calendar/:id
func (c *CalendarController) Edit(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	calendarID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid calendar ID")
	}

	var req dto.CalendarRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	if appErr := c.service.EditCalendar(ctx.Request().Context(), claims.UserID, calendarID, &req); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Calendar updated")
}

// Delete handles DELETE /calendar/:id
func (c *CalendarController) Delete(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	calendarID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid calendar ID")
	}

	if appErr := c.service.DeleteCalendar(ctx.Request().Context(), claims.UserID, calendarID); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Calendar deleted")
}

// Share handles PUT /calendar/:id/share
func (c *CalendarController) Share(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	calendarID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid calendar ID")
	}

	var req dto.ShareRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.ShareCalendar(ctx.Request().Context(), claims.UserID, calendarID, &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Calendar shared")
}

// ListShares handles GET /shares
func (c *CalendarController) ListShares(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	resp, appErr := c.service.GetShares(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Shares retrieved")
}

// UpdateShare handles POST /share/:id
func (c *CalendarController) UpdateShare(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	shareID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid share ID")
	}

	var req dto.UpdateShareRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}

	if appErr := c.service.UpdateShare(ctx.Request().Context(), claims.UserID, shareID, &req); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Share updated")
}

// DeleteShare handles DELETE /share/:id
func (c *CalendarController) DeleteShare(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	shareID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid share ID")
	}

	if appErr := c.service.DeleteShare(ctx.Request().Context(), claims.UserID, shareID); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Share deleted")
}
