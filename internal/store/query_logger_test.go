package store

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-api-boilerplate/internal/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryLogger_Log(t *testing.T) {
	tests := []struct {
		name      string
		level     tracelog.LogLevel
		wantLevel string
	}{
		{name: "error", level: tracelog.LogLevelError, wantLevel: "error"},
		{name: "warn", level: tracelog.LogLevelWarn, wantLevel: "warn"},
		{name: "info", level: tracelog.LogLevelInfo, wantLevel: "info"},
		{name: "debug", level: tracelog.LogLevelDebug, wantLevel: "debug"},
		{name: "trace", level: tracelog.LogLevelTrace, wantLevel: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.TraceLevel)}

			newQueryLogger(l).Log(context.Background(), tt.level, "Query", map[string]any{"sql": "SELECT 1"})

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "Query", entry["message"])
			assert.Equal(t, "SELECT 1", entry["sql"])
			assert.Equal(t, "pgx", entry["component"])
			assert.Equal(t, tt.level.String(), entry["pgx_level"])
		})
	}
}
