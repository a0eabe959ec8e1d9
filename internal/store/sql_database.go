package store

import (
	"database/sql"

	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/MKhiriev/go-api-boilerplate/migrations"
)

// DB is an open database handle together with the logger it reports to.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened *sql.DB.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Migrate applies all pending migrations. It is never called on server
// startup.
func (db *DB) Migrate() error {
	db.logger.Info().Msg("applying database migrations")
	return migrations.Migrate(db.DB)
}
