// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseOptionsEnv fills opts from the `env` tags of [Options], reading only
// snapshot.
func parseOptionsEnv(opts *Options, snapshot Environment) error {
	if snapshot == nil {
		snapshot = Environment{}
	}

	if err := env.ParseWithOptions(opts, env.Options{Environment: snapshot}); err != nil {
		return fmt.Errorf("error reading options from environment: %w", err)
	}

	return nil
}
