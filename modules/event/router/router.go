package router

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event and guest routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

// Setup registers event routes. All of them require authentication.
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1", mw.AuthMiddleware())

	v1.GET("/calendar/:id", r.EventController.ListForCalendar)
	v1.PUT("/calendar/:id/event", r.EventController.Create)

	v1.GET("/event/:id", r.EventController.Get)
	v1.POST("/event/:id", r.EventController.Edit)
	v1.DELETE("/event/:id", r.EventController.Delete)

	v1.PUT("/event/:id/invite", r.EventController.Invite)
	v1.GET("/event/:id/guests", r.EventController.Guests)
}
