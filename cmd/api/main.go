package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"todo-service/config"
	_ "todo-service/docs" // Swagger docs
	"todo-service/internal/httpserver"
	"todo-service/internal/middleware"
	"todo-service/pkg/log"
	pkgRedis "todo-service/pkg/redis"
)

// @title       Todo Task Store API
// @description Task list backend: create, list, filter, update, complete, delete and progress stats.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Task Store...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Task store
	taskRepo, closeStore, err := openTaskRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open task store: ", err)
		return
	}
	defer closeStore()

	// 4. Rate limiter backend (optional)
	var redisClient *goredis.Client
	if cfg.RateLimit.Enabled && cfg.RateLimit.RedisAddr != "" {
		redisClient, err = pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis rate limiter not available, using in-process limiter: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Infof(ctx, "Redis rate limiter connected at %s", cfg.RateLimit.RedisAddr)
		}
	}

	perMin := 0
	if cfg.RateLimit.Enabled {
		perMin = cfg.RateLimit.PerMin
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: perMin,
			Redis:           redisClient,
		},
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		TaskRepository: taskRepo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
