package store

import "errors"

// Connection errors returned by [NewConnectPostgres]. Callers should use
// [errors.Is] to match against these values; the driver error stays in the
// chain.
var (
	// ErrInvalidDatabaseConfig is returned when the connection settings
	// cannot be turned into a driver configuration.
	ErrInvalidDatabaseConfig = errors.New("invalid database configuration")

	// ErrInvalidCredentials is returned when the server rejects
	// DB_USERNAME / DB_PASSWORD.
	ErrInvalidCredentials = errors.New("invalid database credentials")

	// ErrDatabaseDoesNotExist is returned when DB_DATABASE names a database
	// that does not exist on the server.
	ErrDatabaseDoesNotExist = errors.New("database does not exist")

	// ErrDatabaseUnavailable is returned for every other connection failure
	// (unreachable host, server starting up, etc.).
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
