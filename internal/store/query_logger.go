package store

import (
	"context"

	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// queryLogger adapts *logger.Logger to [tracelog.Logger].
type queryLogger struct {
	logger *logger.Logger
}

func newQueryLogger(log *logger.Logger) *queryLogger {
	return &queryLogger{logger: log}
}

// Log implements [tracelog.Logger].
func (l *queryLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelError:
		event = l.logger.Error()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	default:
		event = l.logger.Debug()
	}

	event.
		Str("component", "pgx").
		Str("pgx_level", level.String()).
		Fields(data).
		Msg(msg)
}
