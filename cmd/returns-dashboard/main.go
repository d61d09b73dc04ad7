package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/99minutos/returns-dashboard/internal/api"
	"github.com/99minutos/returns-dashboard/internal/core/service"
	"github.com/99minutos/returns-dashboard/internal/infrastructure/config"
	redisdb "github.com/99minutos/returns-dashboard/internal/infrastructure/db/redis"
	"github.com/99minutos/returns-dashboard/internal/infrastructure/export"
	"github.com/99minutos/returns-dashboard/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it the refresh throttle is disabled and
	// the dashboard still works.
	var rdb *goredis.Client
	var throttle service.RefreshThrottle
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, refresh throttle disabled")
		} else {
			rdb = client
			throttle = redisdb.NewRefreshThrottle(client, cfg.Export.RefreshMinInterval)
		}
	}

	source := export.NewClient(cfg.Export.PayloadURL, cfg.Export.MetadataURL, cfg.Export.Timeout)
	svc := service.NewDashboardService(source, throttle, log)

	// Initial load runs in the background; the dashboard shows its loading
	// state until the first load settles.
	go func() {
		if err := svc.Load(context.Background()); err != nil {
			log.Warn().Err(err).Msg("initial load failed")
		}
	}()

	e := api.NewRouter(svc, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("payload_url", cfg.Export.PayloadURL).Msg("returns dashboard started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
