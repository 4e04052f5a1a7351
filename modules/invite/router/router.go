package router

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/controller"

	"github.com/labstack/echo/v4"
)

// InviteRouter handles invite routes
type InviteRouter struct {
	InviteController *controller.InviteController
}

func NewInviteRouter(inviteController *controller.InviteController) *InviteRouter {
	return &InviteRouter{InviteController: inviteController}
}

// Setup registers invite routes. All of them require authentication.
func (r *InviteRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1", mw.AuthMiddleware())

	v1.GET("/invites", r.InviteController.List)
	v1.GET("/invite/:id", r.InviteController.Get)
	v1.POST("/invite/:id", r.InviteController.Edit)
	v1.POST("/invite/:id/restore", r.InviteController.Restore)
	v1.POST("/invite/:id/attendance", r.InviteController.Attendance)
}
