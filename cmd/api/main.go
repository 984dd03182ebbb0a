package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dennysfredericci/gosu-prompt-generator/config"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/bootstrap"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/logging"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	logging.SetDefault(logger)

	shutdownTelemetry, err := telemetry.NewProvider(context.Background(), cfg.App.Name, cfg.App.Version, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		logger.Fatal("telemetry", zap.Error(err))
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("telemetry shutdown", zap.Error(err))
		}
	}()

	bootstrap.SetGinMode(cfg.App.Environment)

	aug, err := bootstrap.NewAugmentor(cfg.Augmentor)
	if err != nil {
		logger.Fatal("augmentor", zap.Error(err))
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		Backend:        cfg.Augmentor.Backend,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Augmentor:      aug,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("augmentor", cfg.Augmentor.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
