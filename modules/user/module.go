package user

import (
	"github.com/MFrackowiak/mf-simple-calendar/core/cache"
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/controller"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/repository"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/router"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, c)
	ctrl := controller.NewUserController(svc)
	rtr := router.NewUserRouter(ctrl)

	rtr.Setup(e, mw)
}
