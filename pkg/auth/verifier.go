package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes required by the API surface.
const (
	ScopeRead  = "ops-agent:read"
	ScopeWrite = "ops-agent:write"
)

// Claims are the token claims the API cares about. Scope is the
// OAuth2-style space-delimited scope string.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// HasScope reports whether the token carries the scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range strings.Fields(c.Scope) {
		if s == scope {
			return true
		}
	}
	return false
}

// Performer returns the identity to record in audit entries.
func (c *Claims) Performer() string {
	if c.Subject != "" {
		return c.Subject
	}
	return "api-client"
}

// Verifier validates RS256 bearer tokens against the cached key set.
type Verifier struct {
	keys *KeyCache
}

// NewVerifier creates a Verifier.
func NewVerifier(keys *KeyCache) *Verifier {
	return &Verifier{keys: keys}
}

// Verify parses and validates a bearer token, returning its claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keys.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
