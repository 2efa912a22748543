package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap-service/api"
	"skillswap-service/internal/auth"
	"skillswap-service/internal/cache"
	"skillswap-service/internal/config"
	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
	"skillswap-service/internal/handler"
	"skillswap-service/internal/metrics"
	"skillswap-service/internal/repository"
	"skillswap-service/internal/telemetry"
	"skillswap-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if errors.Is(err, config.ErrDotEnvNotLoaded) {
		logger.Warnf(".env not found: %v", err)
	} else if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	// Трейсинг
	shutdownTracing, err := telemetry.InitTracing(telemetry.TracingConfig{
		ServiceName:  cfg.ServiceName,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		logger.Fatalf("Tracing init failed: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Кэш навыков (необязателен)
	var skillCache domain.SkillCache
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, skill cache disabled")
		} else {
			defer redisClient.Close()
			skillCache = cache.NewSkillCache(redisClient, cfg.SkillCacheTTL, logger)
			logger.Info("Redis connected")
		}
	}

	// SQLC queries
	queries := database.New(db)

	// Репозитории
	skillRepo := repository.NewSkillRepository(queries)
	userRepo := repository.NewUserRepository(queries)
	postingRepo := repository.NewPostingRepository(queries)
	agreementRepo := repository.NewAgreementRepository(queries)
	sessionRepo := repository.NewSessionRepository(db, queries)
	statsRepo := repository.NewStatsRepository(queries)
	profileRepo := repository.NewProfileRepository(db, queries)

	// Use Cases
	skillUC := usecase.NewSkillUseCase(skillRepo, skillCache)
	userUC := usecase.NewUserUseCase(userRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo, userRepo, skillUC)
	postingUC := usecase.NewPostingUseCase(postingRepo, userRepo, skillRepo)
	agreementUC := usecase.NewAgreementUseCase(agreementRepo, userRepo, skillRepo, postingRepo)
	sessionUC := usecase.NewSessionUseCase(sessionRepo, agreementRepo, time.Now)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is empty, admin routes are disabled")
	}

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.AuthMiddleware(tokens))
	e.Use(handler.AdminMiddleware(cfg.AdminToken))

	// Handlers
	apiHandler := handler.NewAPIHandler(skillUC, userUC, profileUC, postingUC, agreementUC, sessionUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Errorf("Tracing shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
