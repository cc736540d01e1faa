// Package auth validates bearer tokens against a JWKS endpoint.
// The key set is cached with a TTL; a failed refresh falls back to the
// stale keys so a flapping identity provider does not take the API down.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwk is one RSA key from the JWKS document.
type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// KeyCache caches the JWKS key set. Refresh is single-flight: the lock
// prevents a thundering herd when the TTL expires under load.
type KeyCache struct {
	url        string
	ttl        time.Duration
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewKeyCache creates a KeyCache for the given JWKS URL.
func NewKeyCache(url string, ttl time.Duration) *KeyCache {
	return &KeyCache{
		url:        url,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Keyfunc resolves the signing key for a token by kid. Suitable for
// jwt.ParseWithClaims.
func (c *KeyCache) Keyfunc(token *jwt.Token) (any, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}
	key, err := c.key(kid)
	if err != nil {
		return nil, err
	}
	return key, nil
}

func (c *KeyCache) key(kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, found := c.keys[kid]
	fresh := time.Since(c.fetchedAt) < c.ttl
	c.mu.RUnlock()
	if found && fresh {
		return key, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if key, found := c.keys[kid]; found && time.Since(c.fetchedAt) < c.ttl {
		return key, nil
	}

	if err := c.refreshLocked(); err != nil {
		// Stale keys beat no keys.
		if key, found := c.keys[kid]; found {
			return key, nil
		}
		return nil, err
	}

	key, found = c.keys[kid]
	if !found {
		return nil, fmt.Errorf("no key with kid %q in JWKS", kid)
	}
	return key, nil
}

func (c *KeyCache) refreshLocked() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build JWKS request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("JWKS fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS fetch returned status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode JWKS document: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			return fmt.Errorf("invalid JWKS key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return fmt.Errorf("JWKS document contains no usable RSA keys")
	}

	c.keys = keys
	c.fetchedAt = time.Now()
	return nil
}

func (k jwk) publicKey() (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("bad modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("bad exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
