package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundvine/collectibles-indexer/internal/api/middleware"
	"github.com/soundvine/collectibles-indexer/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testKeyPair generates an RSA key pair and returns the private key plus the
// public key in PEM form
func testKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})
	return key, string(pubPEM)
}

func signedToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticate_ValidJWT(t *testing.T) {
	key, pubPEM := testKeyPair(t)

	token := signedToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: pubPEM})
	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "user-123", result.AuthSubject)
}

func TestAuthenticate_ExpiredJWT(t *testing.T) {
	key, pubPEM := testKeyPair(t)

	token := signedToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: pubPEM})
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_JWTNotYetValid(t *testing.T) {
	key, pubPEM := testKeyPair(t)

	token := signedToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-123",
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: pubPEM})
	assert.False(t, result.Success)
}

func TestAuthenticate_JWTWrongKey(t *testing.T) {
	key, _ := testKeyPair(t)
	_, otherPEM := testKeyPair(t)

	token := signedToken(t, key, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: otherPEM})
	assert.False(t, result.Success)
}

func TestAuthenticate_JWTNoKeyConfigured(t *testing.T) {
	result := middleware.Authenticate("Bearer some-token", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_ValidAPIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one", "key-two"}}

	result := middleware.Authenticate("ApiKey key-two", cfg)
	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)
}

func TestAuthenticate_InvalidAPIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one"}}

	result := middleware.Authenticate("ApiKey wrong", cfg)
	assert.False(t, result.Success)
}

func TestAuthenticate_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{""}}

	result := middleware.Authenticate("ApiKey ", cfg)
	assert.False(t, result.Success)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	result := middleware.Authenticate("", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	result := middleware.Authenticate("Bearer", middleware.AuthConfig{})
	assert.False(t, result.Success)
}

func TestAuthenticate_UnsupportedScheme(t *testing.T) {
	result := middleware.Authenticate("Basic dXNlcjpwYXNz", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}
