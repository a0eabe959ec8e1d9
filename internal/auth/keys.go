// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth turns [config.AuthConfig] into usable token key material.
// It does not issue or verify tokens.
package auth

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// KeyPair holds the parsed RSA signing and verification keys and the token
// lifetime.
type KeyPair struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	tokenTTL   time.Duration
}

// NewKeyPair parses the PEM-encoded keys of cfg. The private key may be
// PKCS#1 or PKCS#8; the public key PKIX, PKCS#1 or a certificate. The public
// key must belong to the private key and the expiration must be positive.
func NewKeyPair(cfg config.AuthConfig) (*KeyPair, error) {
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, ErrKeyMismatch
	}

	if cfg.TokenExpirationSeconds <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExpiration, cfg.TokenExpirationSeconds)
	}

	return &KeyPair{
		privateKey: privateKey,
		publicKey:  publicKey,
		tokenTTL:   cfg.TokenTTL(),
	}, nil
}

// PrivateKey returns the signing key.
func (k *KeyPair) PrivateKey() *rsa.PrivateKey {
	return k.privateKey
}

// PublicKey returns the verification key.
func (k *KeyPair) PublicKey() *rsa.PublicKey {
	return k.publicKey
}

// TokenTTL returns how long an issued token stays valid.
func (k *KeyPair) TokenTTL() time.Duration {
	return k.tokenTTL
}

// SigningMethod returns the JWT signing method matching the key type.
func (k *KeyPair) SigningMethod() jwt.SigningMethod {
	return jwt.SigningMethodRS256
}
