package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
	logger   *logger.Logger
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) listening() bool {
	return h.listener != nil
}

// Listen binds the TCP address; a port of "0" picks a free one.
func (h *httpServer) Listen() error {
	if h.listening() {
		return errAlreadyListening
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %q: %w", h.server.Addr, err)
	}
	h.listener = ln

	return nil
}

// Serve blocks until the server is shut down. A graceful shutdown is not
// reported as an error.
func (h *httpServer) Serve() error {
	if !h.listening() {
		return errNotListening
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server Serve")
		return err
	}

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}

	return nil
}

// URL returns the base URL of the bound listener, or "" before Listen.
func (h *httpServer) URL() string {
	if !h.listening() {
		return ""
	}

	return listenURL(h.listener.Addr())
}

// listenURL formats addr as an http URL, writing unspecified hosts as
// localhost.
func listenURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}

	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port)
}
