// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [Options] before they are used at startup.
func (o *Options) validate() error {
	if o.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, o.ShutdownTimeout)
	}

	return nil
}
