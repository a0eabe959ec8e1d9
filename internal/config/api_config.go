// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// decimalNumber matches a decimal numeral: optional sign, digits with an
// optional fraction, optional exponent.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// APIConfig exposes typed configuration groups derived from an
// [Environment] snapshot. Every accessor re-reads the snapshot; nothing is
// cached. An APIConfig is safe for concurrent use.
type APIConfig struct {
	env Environment
}

// NewAPIConfig returns an accessor over a private copy of env.
func NewAPIConfig(env Environment) *APIConfig {
	snapshot := env.Clone()
	if snapshot == nil {
		// a nil map would make caarlos0/env fall back to os.Environ
		snapshot = Environment{}
	}

	return &APIConfig{env: snapshot}
}

// IsDevelopment reports whether NODE_ENV is exactly "development". An unset
// NODE_ENV is not an error here.
func (c *APIConfig) IsDevelopment() bool {
	var raw rawNodeEnv
	if err := env.ParseWithOptions(&raw, env.Options{Environment: c.env}); err != nil {
		return false
	}

	return normalizeNewlines(raw.NodeEnv) == developmentEnv
}

// NodeEnv returns the NODE_ENV value. Unlike [APIConfig.IsDevelopment] it
// fails when the variable is not set.
func (c *APIConfig) NodeEnv() (string, error) {
	var raw rawNodeEnv
	if err := c.parse(&raw, env.Options{RequiredIfNoDef: true}).err(); err != nil {
		return "", err
	}

	return normalizeNewlines(raw.NodeEnv), nil
}

// DatabaseConfig reads the DB_* variables and ENABLE_ORM_LOGS. Every missing
// or malformed variable of the group is reported, joined into one error; no
// partial config is returned.
func (c *APIConfig) DatabaseConfig() (DatabaseConfig, error) {
	var raw rawDatabaseEnv
	report := c.parse(&raw, env.Options{}, keyEnableORMLogs)

	port := report.integer(keyDBPort, raw.Port)
	logging := report.boolean(keyEnableORMLogs)

	if err := report.err(); err != nil {
		return DatabaseConfig{}, fmt.Errorf("error getting database config: %w", err)
	}

	return DatabaseConfig{
		Host:                   normalizeNewlines(raw.Host),
		Port:                   int(port),
		Username:               normalizeNewlines(raw.Username),
		Password:               normalizeNewlines(raw.Password),
		Database:               normalizeNewlines(raw.Database),
		LoggingEnabled:         logging,
		EntityDiscoveryPaths:   slices.Clone(entityDiscoveryPaths),
		MigrationsRunOnStartup: false,
	}, nil
}

// AuthConfig reads the JWT_* variables. Literal "\n" sequences in the keys
// are turned into newlines so PEM keys can be stored on a single line.
func (c *APIConfig) AuthConfig() (AuthConfig, error) {
	var raw rawAuthEnv
	report := c.parse(&raw, env.Options{})

	expiration := report.integer(keyJWTExpirationTime, raw.Expiration)

	if err := report.err(); err != nil {
		return AuthConfig{}, fmt.Errorf("error getting auth config: %w", err)
	}

	return AuthConfig{
		PrivateKey:             normalizeNewlines(raw.PrivateKey),
		PublicKey:              normalizeNewlines(raw.PublicKey),
		TokenExpirationSeconds: expiration,
	}, nil
}

// AppConfig reads PORT. The value is not parsed; callers decide how to
// default it.
func (c *APIConfig) AppConfig() (AppConfig, error) {
	var raw rawAppEnv
	if err := c.parse(&raw, env.Options{}).err(); err != nil {
		return AppConfig{}, fmt.Errorf("error getting app config: %w", err)
	}

	return AppConfig{Port: normalizeNewlines(raw.Port)}, nil
}

// parse fills raw from the snapshot. Each variable that is not set becomes a
// *KeyError wrapping ErrMissingConfig; for booleanKeys that error is in turn
// wrapped in ErrInvalidBoolean.
func (c *APIConfig) parse(raw any, opts env.Options, booleanKeys ...string) *readReport {
	report := &readReport{missing: make(map[string]bool)}

	opts.Environment = c.env
	err := env.ParseWithOptions(raw, opts)
	if err == nil {
		return report
	}

	var aggErr env.AggregateError
	if !errors.As(err, &aggErr) {
		report.errs = append(report.errs, err)
		return report
	}

	for _, fieldErr := range aggErr.Errors {
		var notSet env.VarIsNotSetError
		if !errors.As(fieldErr, &notSet) {
			report.errs = append(report.errs, fieldErr)
			continue
		}

		report.missing[notSet.Key] = true
		keyErr := newKeyError(notSet.Key, ErrMissingConfig, nil)
		if slices.Contains(booleanKeys, notSet.Key) {
			keyErr = newKeyError(notSet.Key, ErrInvalidBoolean, keyErr)
		}
		report.errs = append(report.errs, keyErr)
	}

	return report
}

// readReport collects the failures of one configuration group in field
// order.
type readReport struct {
	missing map[string]bool
	errs    []error
}

// integer coerces value of a set variable, recording a failure.
func (r *readReport) integer(key, value string) int64 {
	if r.missing[key] {
		return 0
	}

	n, err := parseInteger(key, value)
	if err != nil {
		r.errs = append(r.errs, err)
	}

	return n
}

// boolean does not interpret the value: any set variable reads as true.
func (r *readReport) boolean(key string) bool {
	return !r.missing[key]
}

func (r *readReport) err() error {
	return errors.Join(r.errs...)
}

func parseNumber(key, value string) (float64, error) {
	value = strings.TrimSpace(normalizeNewlines(value))
	if !decimalNumber.MatchString(value) {
		return 0, newKeyError(key, ErrInvalidNumber, nil)
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, newKeyError(key, ErrInvalidNumber, err)
	}

	return number, nil
}

// parseInteger parses plain integers exactly and falls back to the decimal
// form (exponent, zero fraction) for everything else.
func parseInteger(key, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(normalizeNewlines(value)), 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, newKeyError(key, ErrInvalidNumber, err)
	}

	number, err := parseNumber(key, value)
	if err != nil {
		return 0, err
	}

	if number != math.Trunc(number) || number >= math.MaxInt64 || number < math.MinInt64 {
		return 0, newKeyError(key, ErrInvalidNumber, nil)
	}

	return int64(number), nil
}

func normalizeNewlines(value string) string {
	return strings.ReplaceAll(value, `\n`, "\n")
}
