// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by [GetOptions] to fields left empty by every source.
const (
	DefaultEnvFile         = ".env"
	DefaultShutdownTimeout = 10 * time.Second
)

// Options holds process-level settings that control how the application
// boots, as opposed to the application configuration read by [APIConfig].
//
// Struct tags:
//   - env:          environment variable name (caarlos0/env).
//   - envSeparator: separator for list values.
type Options struct {
	// EnvFiles are the dotenv files merged under the process environment,
	// in priority order.
	// Env: ENV_FILE (comma separated)
	EnvFiles []string `env:"ENV_FILE" envSeparator:","`

	// ShutdownTimeout bounds graceful HTTP server shutdown (e.g. "10s").
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func defaultOptions() *Options {
	return &Options{
		EnvFiles:        []string{DefaultEnvFile},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// GetOptions loads runtime options from the following sources, the first
// non-zero value of each field winning:
//  1. Command-line flags (args, without the program name)
//  2. Process environment variables
//  3. Defaults
//
// Values declared in dotenv files never apply here: the options choose
// which files [LoadEnvironment] reads.
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withFlags(args).
		withEnv(ProcessEnvironment()).
		withDefaults().
		build()
}
