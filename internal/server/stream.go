package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/metrics"
)

// handleOrderStream relays new orders to a kitchen display over Server-Sent
// Events. Each frame carries one order as JSON; a comment frame is written
// every keepalive interval so idle connections survive proxies. The stream is
// not restartable: a reconnecting display gets a fresh subscription with no
// backfill and should hydrate from GET /api/orders first.
func (s *Server) handleOrderStream(c echo.Context) error {
	ip := c.RealIP()
	if ok, reason := s.limits.Acquire(ip); !ok {
		return rejectStream(c, reason)
	}
	defer s.limits.Release(ip)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	sub := s.app.SubscribeDisplay()
	defer s.app.UnsubscribeDisplay(sub)

	logger := slog.With("subscriber_id", sub.ID().String(), "remote_ip", ip)
	logger.Info("Display stream connected", "transport", "sse")

	ticker := s.clock.NewTicker(s.config.KeepaliveInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Display stream disconnected", "transport", "sse")
			return nil
		case frame, ok := <-sub.Events():
			if !ok {
				// Hub evicted us or is shutting down.
				logger.Info("Display stream closed by hub", "transport", "sse")
				return nil
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", frame); err != nil {
				return nil
			}
			res.Flush()
		case <-ticker.Chan():
			if _, err := fmt.Fprint(res, ": keepalive\n\n"); err != nil {
				return nil
			}
			res.Flush()
			metrics.StreamKeepalivesTotal.WithLabelValues("sse").Inc()
		}
	}
}

// rejectStream answers a refused stream connection: capacity limits get 503,
// rate limits get 429.
func rejectStream(c echo.Context, reason LimitReason) error {
	metrics.StreamConnectionsRejectedTotal.WithLabelValues(string(reason)).Inc()
	slog.Warn("Rejecting display stream", "remote_ip", c.RealIP(), "reason", reason)

	status := http.StatusServiceUnavailable
	if reason == LimitReasonRate {
		status = http.StatusTooManyRequests
	}
	return c.JSON(status, map[string]string{"error": "too many stream connections"})
}
