package controller

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/controller"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/core/utils"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/dto"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	service service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Register handles PUT /user
func (c *UserController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "User registered")
}

// Login handles POST /auth
func (c *UserController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.Malformed(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.Malformed(ctx, "Missing required field")
	}

	resp, appErr := c.service.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Authenticated")
}

// Logout handles POST /logout
func (c *UserController) Logout(ctx echo.Context) error {
	claims, _ := middleware.ClaimsFromContext(ctx)

	token, err := utils.GetTokenFromHeader(ctx.Request().Header.Get("Authorization"))
	if err != nil {
		return c.Unauthorized(ctx, "missing or malformed authorization header")
	}

	if appErr := c.service.Logout(ctx.Request().Context(), token, claims); appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, nil, "Logged out")
}

// Search handles GET /users/:pattern
func (c *UserController) Search(ctx echo.Context) error {
	pattern := ctx.Param("pattern")
	if pattern == "" {
		return c.Malformed(ctx, "Missing search pattern")
	}

	resp, appErr := c.service.SearchUsers(ctx.Request().Context(), pattern)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}
	return c.Success(ctx, resp, "Users retrieved")
}
