package http

import "context"

//go:generate mockgen -source=interfaces.go -destination=../../mock/mock_pinger.go -package=mock

// Pinger reports whether a backing dependency is reachable. *store.DB
// satisfies it through the embedded *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}
