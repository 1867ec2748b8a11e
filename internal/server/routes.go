package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Ordering API
	s.echo.GET("/api/menu", s.handleGetMenu)
	s.echo.POST("/api/orders", s.handleCreateOrder)
	s.echo.GET("/api/orders", s.handleListOrders)
	s.echo.GET("/api/orders/:id", s.handleGetOrder)

	// Kitchen display streams (long-lived, connection-limited)
	s.echo.GET("/api/orders/stream", s.handleOrderStream)
	s.echo.GET("/ws/orders", s.handleOrderSocket)
}
