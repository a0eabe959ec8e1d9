// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNilPinger is returned by [NewHandler] when no database handle is given.
	ErrNilPinger = errors.New("http handler requires a database pinger")

	// ErrNilCollector is returned by [NewHandler] when no metrics collector is given.
	ErrNilCollector = errors.New("http handler requires a metrics collector")
)
