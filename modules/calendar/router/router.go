package router

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

// CalendarRouter handles calendar and share routes
type CalendarRouter struct {
	CalendarController *controller.CalendarController
}

func NewCalendarRouter(calendarController *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{CalendarController: calendarController}
}

// Setup registers calendar routes. All of them require authentication.
func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1", mw.AuthMiddleware())

	v1.PUT("/calendar", r.CalendarController.Create)
	v1.GET("/calendars", r.CalendarController.List)
	v1.POST("/calendar/:id", r.CalendarController.Edit)
	v1.DELETE("/calendar/:id", r.CalendarController.Delete)

	v1.PUT("/calendar/:id/share", r.CalendarController.Share)
	v1.GET("/shares", r.CalendarController.ListShares)
	v1.POST("/share/:id", r.CalendarController.UpdateShare)
	v1.DELETE("/share/:id", r.CalendarController.DeleteShare)
}
