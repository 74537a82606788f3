package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/raigen-dev/plan-scheduling/internal/config"
	"github.com/raigen-dev/plan-scheduling/internal/handler"
	"github.com/raigen-dev/plan-scheduling/internal/health"
	"github.com/raigen-dev/plan-scheduling/internal/infra/calendar"
	"github.com/raigen-dev/plan-scheduling/internal/infra/planrecorder"
	"github.com/raigen-dev/plan-scheduling/internal/infra/push"
	"github.com/raigen-dev/plan-scheduling/internal/infra/rationale"
	"github.com/raigen-dev/plan-scheduling/internal/infra/repository"
	"github.com/raigen-dev/plan-scheduling/internal/observability"
	"github.com/raigen-dev/plan-scheduling/internal/observability/metrics"
	"github.com/raigen-dev/plan-scheduling/internal/observability/middleware"
	"github.com/raigen-dev/plan-scheduling/internal/service/budget"
	"github.com/raigen-dev/plan-scheduling/internal/service/plan"
	"github.com/raigen-dev/plan-scheduling/internal/service/proposer"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "plan-scheduling"
	}
	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		LogLevel:       cfg.LogLevel,
		SamplingRate:   1.0,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	planMetrics, err := metrics.NewPlanMetrics()
	if err != nil {
		slog.Error("failed to initialize plan metrics", slog.String("error", err.Error()))
		return 1
	}

	resultRecorder, err := planrecorder.NewRecorder(ctx, planrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize plan result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close plan result recorder", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	planRepo := repository.NewPlanRepository(redisClient)
	budgetRepo := repository.NewBudgetRepository(redisClient)
	goalRepo := repository.NewGoalRepository(redisClient)
	userRepo := repository.NewUserRepository(redisClient)

	var calendarSource calendar.Source
	if cfg.Calendar.Enabled() {
		calendarSource = calendar.NewGoogleSource(calendar.GoogleConfig{
			ClientID:     cfg.Calendar.GoogleClientID,
			ClientSecret: cfg.Calendar.GoogleClientSecret,
			Timeout:      cfg.Calendar.Timeout,
		})
		slog.Info("google calendar source initialized")
	} else {
		slog.Warn("google calendar not configured, free windows must be supplied by callers")
	}

	var rationaleGen rationale.Generator
	if cfg.Rationale.Enabled() {
		gemini, err := rationale.NewGemini(ctx, rationale.GeminiConfig{
			APIKey: cfg.Rationale.GeminiAPIKey,
			Model:  cfg.Rationale.GeminiModel,
		})
		if err != nil {
			slog.Error("failed to initialize rationale generator", slog.String("error", err.Error()))
			return 1
		}
		defer func() {
			if err := gemini.Close(); err != nil {
				slog.Warn("failed to close rationale generator", slog.String("error", err.Error()))
			}
		}()
		rationaleGen = gemini
		slog.Info("gemini rationale generator initialized")
	} else {
		slog.Warn("GEMINI_API_KEY not set, plans will carry the fallback rationale")
	}

	var notifier push.Notifier
	if !cfg.Push.Disabled {
		notifier = push.NewExpo(userRepo, push.ExpoConfig{
			Endpoint: cfg.Push.Endpoint,
			Timeout:  cfg.Push.Timeout,
		})
	} else {
		slog.Info("push notifications disabled")
	}

	budgetGate := budget.New(budgetRepo, nil)
	planService := plan.New(plan.Deps{
		Plans:     planRepo,
		Users:     userRepo,
		Proposer:  proposer.New(goalRepo),
		Calendar:  calendarSource,
		Budget:    budgetGate,
		Rationale: rationaleGen,
		Notifier:  notifier,
		Recorder:  resultRecorder,
		Metrics:   planMetrics,
	})

	planHandler := handler.NewPlanHandler(planService)
	budgetHandler := handler.NewBudgetHandler(budgetGate)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/plan/generate", planHandler.HandleGenerate)
		v1.GET("/plan/today", planHandler.HandleToday)
		v1.POST("/plan/complete", planHandler.HandleComplete)
		v1.GET("/budgets/current", budgetHandler.HandleCurrent)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting",
			slog.String("port", cfg.Port),
			slog.String("version", Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("server error", slog.String("error", err.Error()))
		return 1
	case sig := <-sigCh:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("server stopped")
	return 0
}
