package store

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
)

// DSN builds a PostgreSQL connection URL from cfg. Credentials and database
// name are escaped.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}

	return u.String()
}

// NewConnectPostgres opens and pings a PostgreSQL connection described by
// cfg. When cfg.LoggingEnabled is set every query is logged through log.
// Migrations are not applied.
func NewConnectPostgres(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(DSN(cfg))
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database config")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabaseConfig, err)
	}

	if cfg.LoggingEnabled {
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   newQueryLogger(log),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	// establish connection
	conn := stdlib.OpenDB(*connConfig)

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).
			Str("func", "NewConnectPostgres").
			Str("pg_code", postgresError(err)).
			Msg("error connecting database (ping)")
		return nil, classifyConnectError(err)
	}

	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Bool("query_logging", cfg.LoggingEnabled).
		Strs("entity_discovery_paths", cfg.EntityDiscoveryPaths).
		Msg("connected to database successfully")

	return NewDB(conn, log), nil
}
