package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CalvinKoushik/ecom-backend/internal/api"
	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/internal/razorpay"
	"github.com/CalvinKoushik/ecom-backend/internal/service"
	"github.com/CalvinKoushik/ecom-backend/internal/shiprocket"
)

func main() {
	// .env is optional, the process environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gateway := razorpay.NewClient(cfg.Razorpay, cfg.HTTPTimeout, logger)
	shipping := shiprocket.NewClient(cfg.Shiprocket, cfg.HTTPTimeout, logger)
	tokens := shiprocket.NewTokenCache(shipping, cfg.Shiprocket.TokenTTL, logger)

	svcs := &api.Services{
		Checkout: service.NewCheckoutService(
			cfg.Razorpay.KeySecret,
			shiprocket.NewPayloadBuilder(cfg.Shiprocket.PickupLocation),
			tokens,
			shipping,
			logger,
		),
		Orders: service.NewOrderService(gateway, logger),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(cfg, svcs, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
