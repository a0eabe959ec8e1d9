// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the API together: environment, logger, database
// connection, token keys, metrics, HTTP handler and server.
//
// Every configuration error is returned from [New] so the entry point can
// abort with a non-zero exit status.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-boilerplate/internal/auth"
	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	handler "github.com/MKhiriev/go-api-boilerplate/internal/handler/http"
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/MKhiriev/go-api-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-api-boilerplate/internal/server"
	"github.com/MKhiriev/go-api-boilerplate/internal/store"
	"github.com/MKhiriev/go-api-boilerplate/models"
)

const (
	role             = "go-api-server"
	metricsNamespace = "api"
)

// connectPostgres is replaced in tests.
var connectPostgres = store.NewConnectPostgres

// App is a fully wired API process.
type App struct {
	Logger *logger.Logger
	Keys   *auth.KeyPair

	db     *store.DB
	server server.Server
}

// New loads the environment from the process and opts.EnvFiles and builds
// the application.
func New(ctx context.Context, opts *config.Options, buildInfo models.AppBuildInfo) (*App, error) {
	env, err := config.LoadEnvironment(opts.EnvFiles...)
	if err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	return newApp(ctx, opts, env, buildInfo)
}

func newApp(ctx context.Context, opts *config.Options, env config.Environment, buildInfo models.AppBuildInfo) (*App, error) {
	cfg := config.NewAPIConfig(env)
	log := logger.NewLogger(role, cfg.IsDevelopment())

	dbCfg, err := cfg.DatabaseConfig()
	if err != nil {
		return nil, err
	}

	authCfg, err := cfg.AuthConfig()
	if err != nil {
		return nil, err
	}

	keys, err := auth.NewKeyPair(authCfg)
	if err != nil {
		return nil, fmt.Errorf("error loading token keys: %w", err)
	}

	port, err := server.ResolvePort(cfg.AppConfig())
	if err != nil {
		return nil, err
	}

	db, err := connectPostgres(ctx, dbCfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if dbCfg.MigrationsRunOnStartup {
		if err = db.Migrate(); err != nil {
			return nil, errors.Join(err, db.Close())
		}
	}

	h, err := handler.NewHandler(db, buildInfo, metrics.NewCollector(metricsNamespace), log)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	srv, err := server.NewServer(h.Init(), port, opts.ShutdownTimeout, log)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &App{
		Logger: log,
		Keys:   keys,
		db:     db,
		server: srv,
	}, nil
}

// Run serves HTTP until ctx is done or a stop signal arrives, then closes
// the database connection.
func (a *App) Run(ctx context.Context) error {
	runErr := a.server.Run(ctx)

	if err := a.Close(); err != nil {
		a.Logger.Err(err).Msg("error closing database connection")
	}

	return runErr
}

// URL returns the address the server is bound to once it is listening.
func (a *App) URL() string {
	return a.server.URL()
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}
