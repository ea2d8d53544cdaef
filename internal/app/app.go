package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moreminutes-backend/internal/adapter/metrics"
	"github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres"
	actionrepo "github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres/action"
	eventrepo "github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres/event"
	userrepo "github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moreminutes-backend/internal/adapter/redis"
	"github.com/heartmarshall/moreminutes-backend/internal/auth"
	"github.com/heartmarshall/moreminutes-backend/internal/config"
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/catalog"
	"github.com/heartmarshall/moreminutes-backend/internal/service/ledger"
	"github.com/heartmarshall/moreminutes-backend/internal/service/tracker"
	usersvc "github.com/heartmarshall/moreminutes-backend/internal/service/user"
	"github.com/heartmarshall/moreminutes-backend/internal/transport/middleware"
	"github.com/heartmarshall/moreminutes-backend/internal/transport/rest"
	"github.com/heartmarshall/moreminutes-backend/migrations"
)

// recorder is what the services and the HTTP layer report to.
type recorder interface {
	ActionLogged(origin string, minutes int)
	ActionRejected(reason string)
	Reset(kind string, minutesRemoved int)
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

type catalogCache interface {
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, gen int64) ([]domain.ActionDefinition, error)
	Set(ctx context.Context, userID uuid.UUID, gen int64, defs []domain.ActionDefinition) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logCloser := NewLogger(cfg.Log)
	defer logCloser.Close() //nolint:errcheck

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	checks := map[string]rest.Pinger{"database": pool}

	var cache catalogCache = redis.NoopCache{}
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer client.Close() //nolint:errcheck

		cache = redis.NewCatalogCache(client, cfg.Redis.CatalogTTL)
		checks["redis"] = redisPinger(client)
		logger.Info("catalog cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	var rec recorder = metrics.Nop{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		r := metrics.New()
		rec, metricsHandler = r, r.Handler()
	}

	// Repositories and services.
	users := userrepo.New(pool)
	actions := actionrepo.New(pool)
	events := eventrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	catalogSvc := catalog.NewService(logger, actions, users, txm, cache)
	ledgerSvc := ledger.NewService(logger, events, users, txm, rec)
	trackerSvc := tracker.NewService(logger, catalogSvc, ledgerSvc, users, txm, rec)
	userSvc := usersvc.NewService(logger, users, events, tokens, hasher, cfg.Auth)

	// HTTP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(BuildVersion(), checks),
		Auth:    rest.NewAuthHandler(userSvc, logger),
		Actions: rest.NewActionsHandler(catalogSvc, trackerSvc, logger),
		Time:    rest.NewTimeHandler(ledgerSvc, trackerSvc, logger),
		Admin:   rest.NewAdminHandler(userSvc, ledgerSvc, logger),
	}, rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Metrics(rec),
			middleware.CORS(cfg.CORS),
		},
		Authenticate: middleware.Auth(tokens),
		AuthLimit:    limiter.Limit(cfg.RateLimit.AuthPerMinute),
		Metrics:      metricsHandler,
		MetricsPath:  cfg.Metrics.Path,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close() //nolint:errcheck

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("app: migrate: %w", err)
	}
	logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}

func redisPinger(client *goredis.Client) rest.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
