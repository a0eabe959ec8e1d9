package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		expectPing bool
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/health", expectPing: true, wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{name: "unsupported method is hidden", method: http.MethodPost, path: "/api/health", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pinger := newTestHandler(t)
			if tt.expectPing {
				pinger.EXPECT().PingContext(gomock.Any()).Return(nil)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInit_SetsTraceID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestInit_RecoversPanics(t *testing.T) {
	h, pinger := newTestHandler(t)
	pinger.EXPECT().PingContext(gomock.Any()).DoAndReturn(func(any) error {
		panic("driver exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { h.Init().ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
