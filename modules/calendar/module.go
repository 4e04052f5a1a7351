package calendar

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/controller"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/repository"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/router"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewCalendarRepository(db)
	privileges := service.NewPrivilegeService(repo)
	svc := service.NewCalendarService(repo, privileges)
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e, mw)
}

// GetPrivilegeService exposes the permission resolver to modules that gate
// access through calendar privileges, such as events and invites.
func GetPrivilegeService(db database.IDatabase) *service.PrivilegeService {
	return service.NewPrivilegeService(repository.NewCalendarRepository(db))
}
