package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "invalid password", err: &pgconn.PgError{Code: pgerrcode.InvalidPassword}, want: ErrInvalidCredentials},
		{name: "invalid authorization", err: &pgconn.PgError{Code: pgerrcode.InvalidAuthorizationSpecification}, want: ErrInvalidCredentials},
		{name: "unknown database", err: &pgconn.PgError{Code: pgerrcode.InvalidCatalogName}, want: ErrDatabaseDoesNotExist},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: ErrDatabaseUnavailable},
		{name: "wrapped pg error", err: fmt.Errorf("connect: %w", &pgconn.PgError{Code: pgerrcode.InvalidCatalogName}), want: ErrDatabaseDoesNotExist},
		{name: "network error", err: errors.New("dial tcp: connection refused"), want: ErrDatabaseUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyConnectError(tt.err)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.InvalidPassword, postgresError(&pgconn.PgError{Code: pgerrcode.InvalidPassword}))
	assert.Empty(t, postgresError(errors.New("plain")))
}
