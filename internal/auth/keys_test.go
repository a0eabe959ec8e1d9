package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-boilerplate/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pemPair struct {
	private string
	public  string
}

func generatePEMPair(t *testing.T) pemPair {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privateDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return pemPair{
		private: string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateDER})),
		public:  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})),
	}
}

// escape stores a multi-line PEM the way it is kept in a single-line
// environment variable.
func escape(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

func TestNewKeyPair_Success(t *testing.T) {
	pair := generatePEMPair(t)

	keys, err := NewKeyPair(config.AuthConfig{
		PrivateKey:             pair.private,
		PublicKey:              pair.public,
		TokenExpirationSeconds: 900,
	})

	require.NoError(t, err)
	assert.NotNil(t, keys.PrivateKey())
	assert.True(t, keys.PrivateKey().PublicKey.Equal(keys.PublicKey()))
	assert.Equal(t, 15*time.Minute, keys.TokenTTL())
	assert.Equal(t, jwt.SigningMethodRS256, keys.SigningMethod())
}

// Keys read through the accessor from single-line variables are usable.
func TestNewKeyPair_FromEnvironment(t *testing.T) {
	pair := generatePEMPair(t)
	env := config.Environment{
		"JWT_PRIVATE_KEY":     escape(pair.private),
		"JWT_PUBLIC_KEY":      escape(pair.public),
		"JWT_EXPIRATION_TIME": "3600",
	}

	cfg, err := config.NewAPIConfig(env).AuthConfig()
	require.NoError(t, err)

	keys, err := NewKeyPair(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, keys.TokenTTL())
}

func TestNewKeyPair_KeysSignAndVerify(t *testing.T) {
	pair := generatePEMPair(t)
	keys, err := NewKeyPair(config.AuthConfig{PrivateKey: pair.private, PublicKey: pair.public, TokenExpirationSeconds: 60})
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(keys.SigningMethod(), jwt.RegisteredClaims{Subject: "42"}).SignedString(keys.PrivateKey())
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) { return keys.PublicKey(), nil })
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestNewKeyPair_Errors(t *testing.T) {
	pair := generatePEMPair(t)
	other := generatePEMPair(t)

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr error
	}{
		{
			name:    "invalid private key",
			cfg:     config.AuthConfig{PrivateKey: "not a pem", PublicKey: pair.public, TokenExpirationSeconds: 60},
			wantErr: ErrInvalidPrivateKey,
		},
		{
			name:    "still escaped private key",
			cfg:     config.AuthConfig{PrivateKey: escape(pair.private), PublicKey: pair.public, TokenExpirationSeconds: 60},
			wantErr: ErrInvalidPrivateKey,
		},
		{
			name:    "invalid public key",
			cfg:     config.AuthConfig{PrivateKey: pair.private, PublicKey: "not a pem", TokenExpirationSeconds: 60},
			wantErr: ErrInvalidPublicKey,
		},
		{
			name:    "mismatched keys",
			cfg:     config.AuthConfig{PrivateKey: pair.private, PublicKey: other.public, TokenExpirationSeconds: 60},
			wantErr: ErrKeyMismatch,
		},
		{
			name:    "zero expiration",
			cfg:     config.AuthConfig{PrivateKey: pair.private, PublicKey: pair.public},
			wantErr: ErrInvalidExpiration,
		},
		{
			name:    "negative expiration",
			cfg:     config.AuthConfig{PrivateKey: pair.private, PublicKey: pair.public, TokenExpirationSeconds: -1},
			wantErr: ErrInvalidExpiration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := NewKeyPair(tt.cfg)

			assert.Nil(t, keys)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
