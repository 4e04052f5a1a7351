package router

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/controller"

	"github.com/labstack/echo/v4"
)

// UserRouter handles account routes
type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

// Setup registers account routes. Registration and login are the only
// unauthenticated endpoints.
func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.PUT("/user", r.UserController.Register)
	v1.POST("/auth", r.UserController.Login)

	v1.POST("/logout", r.UserController.Logout, mw.AuthMiddleware())
	v1.GET("/users/:pattern", r.UserController.Search, mw.AuthMiddleware())
}
