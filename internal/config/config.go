// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Environment variable names that need handling beyond a presence check.
const (
	keyDBPort            = "DB_PORT"
	keyEnableORMLogs     = "ENABLE_ORM_LOGS"
	keyJWTExpirationTime = "JWT_EXPIRATION_TIME"
)

// Raw configuration groups as read from the environment snapshot with
// caarlos0/env. Fields stay strings: presence is checked here, coercion is
// done by [APIConfig].
type (
	rawDatabaseEnv struct {
		Host     string `env:"DB_HOST,required"`
		Port     string `env:"DB_PORT,required"`
		Username string `env:"DB_USERNAME,required"`
		Password string `env:"DB_PASSWORD,required"`
		Database string `env:"DB_DATABASE,required"`
		ORMLogs  string `env:"ENABLE_ORM_LOGS,required"`
	}

	rawAuthEnv struct {
		PrivateKey string `env:"JWT_PRIVATE_KEY,required"`
		PublicKey  string `env:"JWT_PUBLIC_KEY,required"`
		Expiration string `env:"JWT_EXPIRATION_TIME,required"`
	}

	rawAppEnv struct {
		Port string `env:"PORT,required"`
	}

	// rawNodeEnv is optional for IsDevelopment and required for NodeEnv.
	rawNodeEnv struct {
		NodeEnv string `env:"NODE_ENV"`
	}
)

const developmentEnv = "development"

// entityDiscoveryPaths are the glob patterns, relative to the working
// directory, under which the persistence layer looks for entity definitions.
var entityDiscoveryPaths = []string{
	"modules/**/**/**/*.entity.sql",
	"modules/**/**/**/*.view-entity.sql",
}

// DatabaseConfig holds the PostgreSQL connection settings consumed by the
// store package.
type DatabaseConfig struct {
	// Host is the database server host name or IP address.
	// Env: DB_HOST
	Host string

	// Port is the TCP port of the database server.
	// Env: DB_PORT
	Port int

	// Username and Password are the database credentials.
	// Env: DB_USERNAME, DB_PASSWORD
	Username string
	Password string

	// Database is the name of the database to connect to.
	// Env: DB_DATABASE
	Database string

	// LoggingEnabled turns on query logging for the connection.
	// Env: ENABLE_ORM_LOGS
	LoggingEnabled bool

	// EntityDiscoveryPaths are glob patterns locating entity definition
	// files. Not environment-derived.
	EntityDiscoveryPaths []string

	// MigrationsRunOnStartup is always false: migrations are applied only by
	// the migrate command.
	MigrationsRunOnStartup bool
}

// AuthConfig holds the token signing key material and token lifetime.
type AuthConfig struct {
	// PrivateKey is the PEM-encoded signing key.
	// Env: JWT_PRIVATE_KEY
	PrivateKey string

	// PublicKey is the PEM-encoded verification key.
	// Env: JWT_PUBLIC_KEY
	PublicKey string

	// TokenExpirationSeconds is the token lifetime in seconds.
	// Env: JWT_EXPIRATION_TIME
	TokenExpirationSeconds int64
}

// TokenTTL returns TokenExpirationSeconds as a [time.Duration].
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpirationSeconds) * time.Second
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	// Port is the TCP port the HTTP server listens on, kept as a string.
	// Env: PORT
	Port string
}
