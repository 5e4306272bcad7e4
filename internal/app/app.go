package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
	"github.com/varadarohokale/boxing-arena/internal/config"
	"github.com/varadarohokale/boxing-arena/internal/db/repository"
	"github.com/varadarohokale/boxing-arena/internal/leaderboard"
	"github.com/varadarohokale/boxing-arena/internal/logging"
	"github.com/varadarohokale/boxing-arena/internal/random"
	"github.com/varadarohokale/boxing-arena/internal/ring"
	"github.com/varadarohokale/boxing-arena/internal/server"
	"github.com/varadarohokale/boxing-arena/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	boxerRepo := repository.NewBoxerRepository(pool)
	fightRepo := repository.NewFightRepository(pool)

	lbCache := leaderboard.NewCache(redisClient, cfg.Leaderboard.CacheTTL)
	lbService := leaderboard.NewService(boxerRepo, lbCache, logger)

	boxerService := boxer.NewService(boxerRepo, lbService, logger)

	hub := ws.NewHub(logger)
	feed := server.NewFightFeed(hub, logger)

	rng := random.NewClient(cfg.Random.URL, &http.Client{Timeout: cfg.Random.Timeout})
	ringService := ring.NewService(ring.New(logger), boxerRepo, fightRepo, rng, lbService, feed, logger)

	boxerHandlers := boxer.NewHTTPHandlers(boxerService, logger)
	ringHandlers := ring.NewHTTPHandlers(ringService, logger)
	lbHandler := leaderboard.NewHTTPHandler(lbService, logger)

	apiServer := server.NewHTTPServer(cfg, logger, boxerHandlers, ringHandlers, lbHandler, feed)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
