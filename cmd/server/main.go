package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	feed_service "studentoffice-service/internal/application/service/feed"
	membership_service "studentoffice-service/internal/application/service/membership"
	menuitem_service "studentoffice-service/internal/application/service/menuitem"
	post_service "studentoffice-service/internal/application/service/post"
	session_service "studentoffice-service/internal/application/service/session"
	studentoffice_service "studentoffice-service/internal/application/service/studentoffice"
	user_service "studentoffice-service/internal/application/service/user"
	vote_service "studentoffice-service/internal/application/service/vote"
	"studentoffice-service/internal/infrastructure/config"
	inbound_grpc "studentoffice-service/internal/infrastructure/inbound/grpc"
	inbound_http "studentoffice-service/internal/infrastructure/inbound/http"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	"studentoffice-service/internal/infrastructure/inbound/http/validation"
	metrics_server "studentoffice-service/internal/infrastructure/inbound/metrics"
	"studentoffice-service/internal/infrastructure/logger"
	redis_cache "studentoffice-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "studentoffice-service/internal/infrastructure/outbound/metrics/prometheus"
	"studentoffice-service/internal/infrastructure/outbound/password"
	menuitem_postgres "studentoffice-service/internal/infrastructure/outbound/repository/menuitem/postgres"
	post_postgres "studentoffice-service/internal/infrastructure/outbound/repository/post/postgres"
	"studentoffice-service/internal/infrastructure/outbound/repository/postgres"
	studentoffice_postgres "studentoffice-service/internal/infrastructure/outbound/repository/studentoffice/postgres"
	user_postgres "studentoffice-service/internal/infrastructure/outbound/repository/user/postgres"
	vote_postgres "studentoffice-service/internal/infrastructure/outbound/repository/vote/postgres"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.NewWithFile(cfg.Env, logger.FileOptions{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})

	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.DSN(), log); err != nil {
			log.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	voteRepo := vote_postgres.NewVoteRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)
	officeRepo := studentoffice_postgres.NewStudentOfficeRepository(pool, log, metrics)
	menuItemRepo := menuitem_postgres.NewMenuItemRepository(pool, log, metrics)
	sessionStore := redis_cache.NewSessionStore(redisClient, log, metrics)

	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)
	guard := membership_service.NewMembershipGuard(userRepo, officeRepo, log)

	feedService, err := feed_service.NewFeedService(postRepo, cfg.Feed.PaginationSize, log, metrics)
	if err != nil {
		log.Error("Failed to create feed service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	services := inbound_http.Services{
		Feed:          feedService,
		Post:          post_service.NewPostService(postRepo, log, metrics),
		Vote:          vote_service.NewVoteService(unitOfWork, voteRepo, log, metrics),
		User:          user_service.NewUserService(userRepo, guard, hasher, log, metrics),
		Session:       session_service.NewSessionService(sessionStore, userRepo, cfg.Session.TTL, log),
		StudentOffice: studentoffice_service.NewStudentOfficeService(unitOfWork, officeRepo, guard, hasher, log, metrics),
		MenuItem:      menuitem_service.NewMenuItemService(menuItemRepo, log, metrics),
	}

	cookie := middleware.NewSessionCookie(cfg.Session, log)
	router := inbound_http.NewRouter(cfg, services, cookie, validation.New(), log, metrics)

	httpServer := inbound_http.NewServer(cfg.HTTPServer, router, log)
	grpcServer := inbound_grpc.NewServer(cfg.GRPCServer.Address, cfg.GRPCServer.Port, log, metrics)
	metricsServer := metrics_server.NewServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	httpDone := make(chan bool, 1)
	grpcDone := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		httpDone <- true
	}()

	go func() {
		if err := grpcServer.Run(); err != nil {
			log.Error("gRPC server error", slog.String("error", err.Error()))
		}
		grpcDone <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	if err := pool.Ping(ctx); err != nil {
		log.Error("Postgres is not reachable", slog.String("error", err.Error()))
	} else if err := redisClient.Ping(ctx); err != nil {
		log.Error("Redis is not reachable", slog.String("error", err.Error()))
	} else {
		grpcServer.SetServing(true)
	}

	<-quit
	log.Info("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := grpcServer.Shutdown(); err != nil {
		log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-httpDone
	<-grpcDone
	<-metricsDone

	log.Info("Server exited")
}
