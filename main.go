package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/amarasa/lead-shield/internal/api/rest"
	"github.com/amarasa/lead-shield/internal/infrastructure/config"
	"github.com/amarasa/lead-shield/internal/infrastructure/repository"
	"github.com/amarasa/lead-shield/internal/infrastructure/settings"
	"github.com/amarasa/lead-shield/internal/infrastructure/telemetry"
	"github.com/amarasa/lead-shield/internal/service/notification"
	"github.com/amarasa/lead-shield/internal/service/validation"
	"github.com/amarasa/lead-shield/internal/service/validation/providers"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		runMigrate = flag.Bool("migrate", false, "Run database migrations and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := telemetry.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logger.Sync()

	if *runMigrate {
		if err := runMigrations(cfg); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations completed")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("service failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting lead-shield",
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Environment),
		zap.Int("port", cfg.Server.Port))

	store, err := settings.NewRedisStore(&cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("initializing settings store: %w", err)
	}

	// The audit log is optional; without a database URL verdicts are not
	// persisted and GET /api/v1/checks reports unavailable.
	var resultRepo validation.ResultRepository
	if cfg.Database.URL != "" {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("parsing database config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		resultRepo = repository.NewVerificationRepository(pool)
		logger.Info("verification audit log enabled")
	}

	emailClient := providers.NewEmailListVerifyClient(providers.EmailListVerifyConfig{
		BaseURL: cfg.EmailVerify.BaseURL,
		Timeout: cfg.EmailVerify.Timeout,
	}, logger)

	phoneClient := providers.NewNumVerifyClient(providers.NumVerifyConfig{
		BaseURL: cfg.PhoneVerify.BaseURL,
		Timeout: cfg.PhoneVerify.Timeout,
	}, logger)

	notifier := notification.NewWebhookNotifier(notification.Config{
		Timeout: cfg.Alerting.Timeout,
	}, logger)

	svc, err := validation.NewService(
		logger,
		&validation.Config{
			SiteDomain:     cfg.SiteDomain,
			AcceptStatuses: cfg.EmailVerify.AcceptStatuses,
			CountryPrefix:  cfg.PhoneVerify.CountryPrefix,
		},
		store,
		emailClient,
		phoneClient,
		notifier,
		resultRepo,
	)
	if err != nil {
		return fmt.Errorf("initializing validation service: %w", err)
	}

	server, err := rest.NewServer(cfg, logger, svc, resultRepo)
	if err != nil {
		return fmt.Errorf("initializing http server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return err
	}

	logger.Info("shut down cleanly")
	return nil
}

func runMigrations(cfg *config.Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required for migrations")
	}

	m, err := migrate.New("file://migrations", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("initializing migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}
