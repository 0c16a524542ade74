package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/ticketsla/ticketsla/internal/infrastructure/cache"
	"github.com/ticketsla/ticketsla/internal/infrastructure/config"
	"github.com/ticketsla/ticketsla/internal/infrastructure/database"
	"github.com/ticketsla/ticketsla/internal/infrastructure/metrics"
	"github.com/ticketsla/ticketsla/internal/infrastructure/migration"
	"github.com/ticketsla/ticketsla/internal/infrastructure/repository"
	"github.com/ticketsla/ticketsla/internal/infrastructure/scheduler"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/ticketsla/ticketsla/internal/interfaces/http"
	"github.com/ticketsla/ticketsla/internal/shared/goroutine"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/version"
)

var skipImport bool

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long: `Start the dashboard server. The schema is migrated and the configured
ticket export is imported into an empty store before the listener opens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *flags)
		},
	}

	cmd.Flags().BoolVar(&skipImport, "skip-import", false, "Do not import the ticket export on startup")

	return cmd
}

func run(ctx context.Context, flags bootstrap.Flags) error {
	cfg, log, err := bootstrap.Init(flags)
	if err != nil {
		return err
	}
	defer bootstrap.Close(log)

	log.Infow("starting server",
		"environment", cfg.App.Environment,
		"version", version.Display(cfg.App.Version),
		"commit", cfg.App.Commit)

	if gin.Mode() != gin.DebugMode {
		gin.DefaultWriter = io.Discard
	}
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debugw("route registered", "method", httpMethod, "path", absolutePath)
	}

	gormDB := database.Get()

	if err := migration.NewManager(cfg.Database.AutoMigrate, database.CurrentDialect(), log).Migrate(gormDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	redisClient := connectRedis(ctx, cfg, log)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warnw("failed to close redis client", "error", err)
			}
		}()
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	if err := importTickets(ctx, cfg, m, log); err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(httpRouter.Deps{
		Config:  cfg,
		DB:      gormDB,
		Redis:   redisClient,
		Metrics: m,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.Handler(),
		ReadTimeout:       seconds(cfg.Server.ReadTimeout, 15),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      seconds(cfg.Server.WriteTimeout, 15),
		IdleTimeout:       seconds(cfg.Server.IdleTimeout, 60),
	}

	if cleanup := startSessionCleanup(ctx, cfg, redisClient, log); cleanup != nil {
		defer cleanup.Stop()
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		defer close(serveErr)
		log.Infow("server listening", "address", srv.Addr, "mode", gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Server.ShutdownTimeout, 30))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// importTickets loads the configured export. Any ingestion error aborts startup.
func importTickets(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log logger.Interface) error {
	if skipImport || cfg.Ingestion.SourcePath == "" {
		log.Infow("ticket import skipped on startup", "source", cfg.Ingestion.SourcePath)
		return nil
	}

	result, err := bootstrap.NewImporter(database.Get(), cfg, m, log).Run(ctx, cfg.Ingestion.SourcePath, false)
	if err != nil {
		return fmt.Errorf("ticket import failed: %w", err)
	}
	if result.Stale {
		log.Warnw("dashboard is serving tickets from an older export", "source", result.Source)
	}
	return nil
}

// startSessionCleanup runs the periodic purge when sessions live in the
// database. Redis expires its keys on its own.
func startSessionCleanup(ctx context.Context, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *scheduler.SessionCleanupScheduler {
	usesRedis := cfg.Auth.Session.Store == "redis" && redisClient != nil
	if usesRedis || cfg.Auth.Session.CleanupInterval() <= 0 {
		return nil
	}

	s := scheduler.NewSessionCleanupScheduler(
		repository.NewSessionRepository(database.Get()),
		cfg.Auth.Session.CleanupInterval(),
		log,
	)
	goroutine.SafeGo(log, "session-cleanup", func() { s.Start(ctx) })
	return s
}

// connectRedis returns nil when Redis is disabled or unreachable; callers
// then fall back to database sessions and no rate limiting.
func connectRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, continuing without it", "error", err)
		return nil
	}
	log.Infow("redis connected")
	return client
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
