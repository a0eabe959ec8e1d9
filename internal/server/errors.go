// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler        = errors.New("no HTTP handler is given")
	errAlreadyListening = errors.New("server is already listening")
	errNotListening     = errors.New("server is not listening")
)
