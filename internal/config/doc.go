// Package config provides environment snapshot loading, typed application
// configuration, and runtime options for the application.
//
// Application configuration is read through [APIConfig] from an
// [Environment] snapshot, typically built by [LoadEnvironment] from the
// process environment and optional dotenv files. Required variables that
// are not set, or hold malformed values, fail with [ErrMissingConfig],
// [ErrInvalidNumber] or [ErrInvalidBoolean] wrapped in a [*KeyError].
//
// Runtime options (dotenv file list, shutdown timeout) are assembled by
// [GetOptions] from command-line flags, environment variables and defaults.
package config
