package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/metrics"
)

const writeDeadline = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleOrderSocket relays new orders to a kitchen display over WebSocket:
// one text frame per order, ping control frames as keepalive. Same delivery
// semantics as the SSE stream.
func (s *Server) handleOrderSocket(c echo.Context) error {
	ip := c.RealIP()
	if ok, reason := s.limits.Acquire(ip); !ok {
		return rejectStream(c, reason)
	}
	defer s.limits.Release(ip)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrader has already written the error response.
		return nil
	}
	defer conn.Close()

	sub := s.app.SubscribeDisplay()
	defer s.app.UnsubscribeDisplay(sub)

	logger := slog.With("subscriber_id", sub.ID().String(), "remote_ip", ip)
	logger.Info("Display stream connected", "transport", "websocket")

	// Read loop detects the client going away; displays never send data.
	readClosed := make(chan struct{})
	go func() {
		defer close(readClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := s.clock.NewTicker(s.config.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-readClosed:
			logger.Info("Display stream disconnected", "transport", "websocket")
			return nil
		case frame, ok := <-sub.Events():
			if !ok {
				logger.Info("Display stream closed by hub", "transport", "websocket")
				return nil
			}
			_ = conn.SetWriteDeadline(s.clock.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return nil
			}
		case <-ticker.Chan():
			_ = conn.SetWriteDeadline(s.clock.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
			metrics.StreamKeepalivesTotal.WithLabelValues("websocket").Inc()
		}
	}
}
