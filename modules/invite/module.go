package invite

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	eventservice "github.com/MFrackowiak/mf-simple-calendar/modules/event/service"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/controller"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/repository"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/router"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the invite module and registers routes. Owner edits are
// delegated to the event service, so it comes in from the outside.
func Init(e *echo.Echo, db database.IDatabase, events eventservice.EventServiceInterface, mw *middleware.Middleware) {
	repo := repository.NewInviteRepository(db)
	svc := service.NewInviteService(repo, events)
	ctrl := controller.NewInviteController(svc)
	rtr := router.NewInviteRouter(ctrl)

	rtr.Setup(e, mw)
}
