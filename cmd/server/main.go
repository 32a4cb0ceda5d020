package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"kickmyb/docs"
	"kickmyb/internal/auth"
	"kickmyb/internal/cache"
	"kickmyb/internal/config"
	"kickmyb/internal/db"
	"kickmyb/internal/handler"
	"kickmyb/internal/logger"
	"kickmyb/internal/metrics"
	"kickmyb/internal/repository"
	"kickmyb/internal/router"
	"kickmyb/internal/service"
)

// @title KickMyB API
// @version 1.0
// @description Personal task tracking with JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, running without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancelPing()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	accountService := service.NewAccountService(userRepo, jwtService, tokenStore)
	var taskService service.TaskService
	taskService = service.NewTaskService(taskRepo, userRepo, cacheClient)
	taskService = service.NewLoggingTaskService(log, taskService)
	taskService = m.Instrument(taskService)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		jwtService,
		log,
		m.Handler(),
		handler.NewAuthHandler(accountService),
		handler.NewTaskHandler(taskService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Info("swagger documentation available", zap.String("path", "/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
