// Package server runs the application's HTTP server.
//
// It binds the configured port (or [DefaultPort]), logs the bound URL,
// handles stop signals and shuts the server down gracefully.
package server
