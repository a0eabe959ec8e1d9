package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/MKhiriev/go-api-boilerplate/internal/store"
)

// connectPostgres is replaced in tests.
var connectPostgres = store.NewConnectPostgres

func main() {
	log := logger.NewLogger("go-api-migrate", false)

	if err := run(context.Background(), os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("migrations applied")
}

// run applies all pending migrations. Any error must end the process with a
// non-zero status.
func run(ctx context.Context, args []string, log *logger.Logger) error {
	opts, err := config.GetOptions(args)
	if err != nil {
		return fmt.Errorf("error getting options: %w", err)
	}

	env, err := config.LoadEnvironment(opts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("error loading environment: %w", err)
	}

	dbCfg, err := config.NewAPIConfig(env).DatabaseConfig()
	if err != nil {
		return err
	}

	db, err := connectPostgres(ctx, dbCfg, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	return db.Migrate()
}
