package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/cache"
	"github.com/MFrackowiak/mf-simple-calendar/core/config"
	"github.com/MFrackowiak/mf-simple-calendar/core/database"
	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/core/middleware"
	"github.com/MFrackowiak/mf-simple-calendar/modules/calendar"
	"github.com/MFrackowiak/mf-simple-calendar/modules/event"
	"github.com/MFrackowiak/mf-simple-calendar/modules/invite"
	"github.com/MFrackowiak/mf-simple-calendar/modules/user"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestValidator adapts go-playground/validator to echo's Validator hook.
type RequestValidator struct {
	validator *validator.Validate
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Run wires configuration, storage, cache and every module together, then
// serves until interrupted.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Init(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}
	defer c.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &RequestValidator{validator: validator.New()}

	e.Use(echomw.Recover())

	mw := middleware.NewMiddleware(c)
	e.Use(mw.RequestID())

	user.Init(e, db, c, mw)
	calendar.Init(e, db, mw)

	privileges := calendar.GetPrivilegeService(db)
	events := event.Init(e, db, privileges, mw)
	invite.Init(e, db, events, mw)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
