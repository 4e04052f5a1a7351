package event

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	calendarservice "github.com/MFrackowiak/mf-simple-calendar/modules/calendar/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/controller"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/repository"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/router"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event/service"
	inviterepo "github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The returned
// service is handed to the invite module for owner delegation.
func Init(e *echo.Echo, db database.IDatabase, privilege *calendarservice.PrivilegeService, mw *middleware.Middleware) service.EventServiceInterface {
	repo := repository.NewEventRepository(db)
	invites := inviterepo.NewInviteRepository(db)
	svc := service.NewEventService(repo, invites, privilege)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
