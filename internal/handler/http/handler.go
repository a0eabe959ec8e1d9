package http

import (
	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/MKhiriev/go-api-boilerplate/internal/metrics"
	"github.com/MKhiriev/go-api-boilerplate/models"
)

type Handler struct {
	db        Pinger
	buildInfo models.AppBuildInfo
	metrics   *metrics.Collector

	logger *logger.Logger
}

func NewHandler(db Pinger, buildInfo models.AppBuildInfo, collector *metrics.Collector, logger *logger.Logger) (*Handler, error) {
	if db == nil {
		return nil, ErrNilPinger
	}
	if collector == nil {
		return nil, ErrNilCollector
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		db:        db,
		buildInfo: buildInfo,
		metrics:   collector,
		logger:    logger,
	}, nil
}
