package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/middleware"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := newKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"k1", ""}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "admin@tec",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+valid, cfg)
	assert.True(t, result.Success)
	assert.Equal(t, middleware.AUTH_TYPE_JWT, result.AuthType)
	assert.Equal(t, "admin@tec", result.AuthSubject)

	result = middleware.Authenticate("ApiKey k1", cfg)
	assert.True(t, result.Success)
	assert.Equal(t, middleware.AUTH_TYPE_APIKEY, result.AuthType)

	for _, header := range []string{"", "Bearer", "Bearer " + expired, "ApiKey nope", "Basic abc"} {
		result = middleware.Authenticate(header, cfg)
		assert.False(t, result.Success, header)
		assert.Error(t, result.Error, header)
	}
}

func TestAuthenticate_WrongKey(t *testing.T) {
	key, _ := newKeyPair(t)
	_, otherPEM := newKeyPair(t)

	token := signToken(t, key, jwt.RegisteredClaims{Subject: "x"})
	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: otherPEM})
	assert.False(t, result.Success)
}

func TestAuthenticate_RejectsUnsignedToken(t *testing.T) {
	_, publicPEM := newKeyPair(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{JWTPublicKey: publicPEM})
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_NoKeysConfigured(t *testing.T) {
	result := middleware.Authenticate("ApiKey k1", middleware.AuthConfig{APIKeys: []string{""}})
	assert.False(t, result.Success)
	assert.EqualError(t, result.Error, "no API keys configured")
}

func TestRequireAuthType(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: false}))
	gin.SetMode(gin.TestMode)

	key, publicPEM := newKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"k1"}}

	router := gin.New()
	router.PUT("/settings", middleware.Auth(cfg), middleware.RequireAuthType(middleware.AUTH_TYPE_APIKEY), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	serve := func(header string) int {
		req := httptest.NewRequest(http.MethodPut, "/settings", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	token := signToken(t, key, jwt.RegisteredClaims{Subject: "viewer"})
	assert.Equal(t, http.StatusForbidden, serve("Bearer "+token))
	assert.Equal(t, http.StatusNoContent, serve("ApiKey k1"))
	assert.Equal(t, http.StatusUnauthorized, serve("ApiKey k2"))
}
