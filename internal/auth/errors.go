package auth

import "errors"

// Errors returned by [NewKeyPair].
var (
	ErrInvalidPrivateKey = errors.New("invalid JWT private key")
	ErrInvalidPublicKey  = errors.New("invalid JWT public key")
	ErrKeyMismatch       = errors.New("JWT public key does not match private key")
	ErrInvalidExpiration = errors.New("JWT expiration time must be positive")
)
