package tmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenSkew is subtracted from expires_in so a token is refreshed before
// it actually lapses.
const tokenSkew = 60 * time.Second

type contextKey string

const userTokenKey contextKey = "tm_user_token"

// WithUserToken returns a context carrying a forwarded end-user token.
// When present it takes precedence over the cached M2M token.
func WithUserToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, userTokenKey, token)
}

// UserTokenFromContext extracts a forwarded user token, if any.
func UserTokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userTokenKey).(string); ok {
		return v
	}
	return ""
}

// m2mTokenCache caches the machine-to-machine access token until
// expires_in − 60s. The mutex prevents a thundering herd of token
// requests when the token lapses under load.
type m2mTokenCache struct {
	tokenURL     string
	clientID     string
	clientSecret string
	audience     string
	httpClient   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func newM2MTokenCache(tokenURL, clientID, clientSecret, audience string, httpClient *http.Client) *m2mTokenCache {
	return &m2mTokenCache{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		audience:     audience,
		httpClient:   httpClient,
	}
}

// Token returns a valid cached token, fetching a fresh one if needed.
func (c *m2mTokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	if c.audience != "" {
		form.Set("audience", c.audience)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned empty access_token")
	}

	c.token = body.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - tokenSkew)
	return c.token, nil
}
