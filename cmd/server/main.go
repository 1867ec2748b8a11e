package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/app"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/config"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/hub"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/ledger"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/logging"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/server"
)

func runGracefulShutdown(srv *server.Server, orders *app.OrderService) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		orders.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	orderLedger := ledger.New(clock)
	orderHub := hub.New(cfg.SubscriberBuffer)
	orders := app.NewOrderService(orderLedger, orderHub)

	srv := server.NewServer(cfg, orders, clock)

	done := runGracefulShutdown(srv, orders)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
