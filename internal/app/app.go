package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/food"
	"github.com/heartmarshall/foodcatalog-backend/internal/adapter/postgres/foodtype"
	"github.com/heartmarshall/foodcatalog-backend/internal/auth"
	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/internal/metrics"
	"github.com/heartmarshall/foodcatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/foodcatalog-backend/internal/transport/rest"
)

var _ catalog.MutationRecorder = (*metrics.Collector)(nil)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	deps := RouterDeps{
		Config: *cfg,
		Log:    logger,
		Health: rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: pool.Ping}),
	}

	var recorder catalog.MutationRecorder
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewCollector(cfg.Metrics.Namespace)
		recorder = deps.Metrics
	}

	deps.Catalog = catalog.NewService(logger, food.New(pool), foodtype.New(pool), txm, recorder, cfg.Catalog)

	if cfg.Auth.Enabled {
		deps.Tokens = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	}

	if cfg.RateLimit.Enabled {
		deps.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer deps.RateLimiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
