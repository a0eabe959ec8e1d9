package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
)

// DefaultPort is used when PORT is not set.
const DefaultPort = "3000"

// ResolvePort returns the port to listen on from the result of
// [config.APIConfig.AppConfig]: its Port, or [DefaultPort] when PORT is not
// set. Any other error is returned unchanged.
func ResolvePort(cfg config.AppConfig, err error) (string, error) {
	if errors.Is(err, config.ErrMissingConfig) {
		return DefaultPort, nil
	}
	if err != nil {
		return "", err
	}

	return cfg.Port, nil
}

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates an HTTP server listening on all interfaces at port.
func NewServer(handler http.Handler, port string, shutdownTimeout time.Duration, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}

	logger.Info().Msg("creating new server...")

	return &server{
		httpServer:      newHTTPServer(handler, ":"+port, logger),
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) Listen() error {
	return s.httpServer.Listen()
}

func (s *server) URL() string {
	return s.httpServer.URL()
}

// Run listens (unless Listen was already called), serves until ctx is done
// or a stop signal arrives, then shuts down gracefully.
func (s *server) Run(ctx context.Context) error {
	if !s.httpServer.listening() {
		if err := s.httpServer.Listen(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve()
	}()

	s.logger.Info().Msgf("server running on %s", s.httpServer.URL())

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server...")
	if err := s.Shutdown(); err != nil {
		return err
	}

	if err := <-serveErr; err != nil {
		return fmt.Errorf("HTTP server stopped: %w", err)
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
