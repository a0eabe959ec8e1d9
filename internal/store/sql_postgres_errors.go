package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyConnectError maps a failed connection attempt to one of the
// connection sentinel errors, keeping the original error in the chain.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func classifyConnectError(err error) error {
	return fmt.Errorf("%w: %w", connectErrorKind(err), err)
}

func connectErrorKind(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrDatabaseUnavailable
	}

	switch pgErr.Code {
	// Class 28: invalid authorization specification
	case pgerrcode.InvalidAuthorizationSpecification,
		pgerrcode.InvalidPassword:
		return ErrInvalidCredentials

	// Class 3D: invalid catalog name
	case pgerrcode.InvalidCatalogName:
		return ErrDatabaseDoesNotExist
	}

	return ErrDatabaseUnavailable
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
