package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"andrasnagy-data/taskboard/internal/server/migrations"
	"andrasnagy-data/taskboard/internal/shared/config"
)

// NewPgxPool creates a PostgreSQL connection pool with production-ready settings
// and runs pending schema migrations. The first ping is retried with exponential
// backoff for a bounded number of attempts so the service survives a database
// that is still starting up; after the last failed attempt the error is fatal.
// Pool settings: max 10 connections, min 5 connections, 1-hour max lifetime, 30-min idle timeout.
func NewPgxPool(cfg *config.Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	logger.Debug().Msg("Initializing database connection pool")

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse database URL")
		return nil, err
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = time.Minute * 30

	logger.Debug().
		Int32("max_conns", poolCfg.MaxConns).
		Int32("min_conns", poolCfg.MinConns).
		Dur("max_conns_lifetime", poolCfg.MaxConnLifetime).
		Dur("max_conns_idletime", poolCfg.MaxConnIdleTime).
		Msg("Database connection pool configuration")

	ctx := context.Background()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create database connection pool")
		return nil, err
	}

	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(time.Second))

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := pool.Ping(ctx); err != nil {
			logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("max_attempts", attempts).
				Msg("Database not reachable yet")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		pool.Close()
		logger.Error().Err(err).Msg("Giving up connecting to database")
		return nil, err
	}

	if err := runMigrations(ctx, cfg.DatabaseURL, logger); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Debug().Msg("Database connection pool created successfully")
	return pool, nil
}

// runMigrations applies the embedded goose migrations over a short-lived
// database/sql connection (goose does not speak pgxpool).
func runMigrations(ctx context.Context, databaseURL string, logger zerolog.Logger) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open migration connection")
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		logger.Error().Err(err).Msg("Failed to run database migrations")
		return err
	}

	logger.Debug().Msg("Database migrations applied")
	return nil
}
