package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamarena/paypal-gateway/internal/application/services"
	"github.com/teamarena/paypal-gateway/internal/config"
	"github.com/teamarena/paypal-gateway/internal/infrastructure/paypal"
	"github.com/teamarena/paypal-gateway/internal/interfaces/rest/handlers"
	"github.com/teamarena/paypal-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment gateway",
		"port", cfg.Server.Port,
		"paypal_env", cfg.PayPal.Env,
		"credentials_present", cfg.PayPal.HasCredentials(),
	)

	paypalClient := paypal.NewClient(cfg.PayPal, logger)

	createService := services.NewCreateOrderService(cfg.PayPal, cfg.CORS, paypalClient, logger)
	captureService := services.NewCaptureService(cfg.PayPal, paypalClient, logger)

	h := handlers.NewHandlers(createService, captureService, logger)

	mux := http.NewServeMux()
	h.Register(mux)

	handler := http.Handler(mux)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)
	handler = middleware.CORS(cfg.CORS)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
