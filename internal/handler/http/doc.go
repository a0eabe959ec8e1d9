// Package http implements the HTTP transport layer of the application.
//
// It wires the chi router, the request tracing, metrics and access logging
// middleware, and the operational endpoints (health, version and metrics).
// Business routes are mounted by feature modules on top of [Handler.Init].
package http
