package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func jwksFor(key *rsa.PrivateKey, kid string) map[string]any {
	pub := key.Public().(*rsa.PublicKey)
	return map[string]any{
		"keys": []map[string]any{
			{
				"kid": kid,
				"kty": "RSA",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			},
		},
	}
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestVerifierAcceptsValidToken(t *testing.T) {
	key := generateKey(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(jwksFor(key, "key-1"))
	}))
	defer server.Close()

	verifier := NewVerifier(NewKeyCache(server.URL, time.Hour))
	tokenString := signToken(t, key, "key-1", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scope: "ops-agent:read ops-agent:write",
	})

	claims, err := verifier.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "analyst-7", claims.Performer())
	assert.True(t, claims.HasScope(ScopeRead))
	assert.True(t, claims.HasScope(ScopeWrite))
	assert.False(t, claims.HasScope("ops-agent:admin"))
}

func TestVerifierRejectsExpiredToken(t *testing.T) {
	key := generateKey(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(jwksFor(key, "key-1"))
	}))
	defer server.Close()

	verifier := NewVerifier(NewKeyCache(server.URL, time.Hour))
	tokenString := signToken(t, key, "key-1", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifierRejectsWrongKey(t *testing.T) {
	key := generateKey(t)
	otherKey := generateKey(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(jwksFor(key, "key-1"))
	}))
	defer server.Close()

	verifier := NewVerifier(NewKeyCache(server.URL, time.Hour))
	tokenString := signToken(t, otherKey, "key-1", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(tokenString)
	assert.Error(t, err)
}

func TestKeyCacheServesStaleKeysWhenRefreshFails(t *testing.T) {
	key := generateKey(t)
	var fetches atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fetches.Add(1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(jwksFor(key, "key-1"))
	}))
	defer server.Close()

	// TTL of zero forces a refresh attempt on every lookup.
	verifier := NewVerifier(NewKeyCache(server.URL, 0))
	tokenString := signToken(t, key, "key-1", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(tokenString)
	require.NoError(t, err)

	// Second lookup hits the failing endpoint and falls back to stale keys.
	_, err = verifier.Verify(tokenString)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fetches.Load(), int64(2))
}

func TestKeyCacheCachesWithinTTL(t *testing.T) {
	key := generateKey(t)
	var fetches atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		_ = json.NewEncoder(w).Encode(jwksFor(key, "key-1"))
	}))
	defer server.Close()

	verifier := NewVerifier(NewKeyCache(server.URL, time.Hour))
	tokenString := signToken(t, key, "key-1", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	for range 5 {
		_, err := verifier.Verify(tokenString)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), fetches.Load())
}
