package controller

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/controller"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Create handles PUT /calendar/:id/event
func (c *EventController) Create(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	calendarID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid calendar ID")
	}

	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.CreateEvent(ctx.Request().Context(), claims.UserID, calendarID, &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Event created")
}

// Get handles GET /event/:id
func (c *EventController) Get(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid event ID")
	}

	resp, appErr := c.service.GetEvent(ctx.Request().Context(), claims.UserID, claims.Timezone, eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Event retrieved")
}

// ListForCalendar handles GET /calendar/:id
func (c *EventController) ListForCalendar(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	calendarID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid calendar ID")
	}

	resp, appErr := c.service.GetCalendarEvents(ctx.Request().Context(), claims.UserID, claims.Timezone, calendarID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Events retrieved")
}

// Edit handles POST /event/:id
func (c *EventController) Edit(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid event ID")
	}

	var req dto.EventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	if appErr := c.service.EditEvent(ctx.Request().Context(), claims.UserID, eventID, &req); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Event updated")
}

// Delete handles DELETE /event/:id
func (c *EventController) Delete(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid event ID")
	}

	if appErr := c.service.DeleteEvent(ctx.Request().Context(), claims.UserID, eventID); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Event deleted")
}

// Invite handles PUT /event/:id/invite
func (c *EventController) Invite(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid event ID")
	}

	var req dto.InviteUserRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.InviteUser(ctx.Request().Context(), claims.UserID, eventID, &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "User invited")
}

// Guests handles GET /event/:id/guests
func (c *EventController) Guests(ctx echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Unauthorized")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.Malformed(ctx, "Invalid event ID")
	}

	resp, appErr := c.service.GetGuests(ctx.Request().Context(), claims.UserID, eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Guests retrieved")
}
