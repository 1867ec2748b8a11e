// Package server exposes the ordering API and the kitchen-display streams
// over HTTP.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/app"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/config"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       *app.OrderService
	clock     clockwork.Clock
	limits    *ConnectionLimits
	startTime time.Time
}

func NewServer(cfg *config.Config, orders *app.OrderService, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       orders,
		clock:     clock,
		limits:    NewConnectionLimits(cfg.MaxStreamConns, cfg.MaxStreamPerIP, cfg.StreamConnsPerSec, cfg.StreamConnsBurst),
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
