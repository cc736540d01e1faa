// Package tmapi is the client for the transaction-monitoring platform
// ("TM API"). It is the only network dependency of the deterministic
// tools: transaction context, card history, and merchant history all come
// from here. The client translates TM wire field names into internal
// names, retries transient failures with exponential backoff, and opens a
// circuit breaker after repeated exhausted retries so a degraded TM
// deployment fails fast instead of burning the investigation deadline.
package tmapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/fraudops/opsagent/pkg/metrics"
	"github.com/fraudops/opsagent/pkg/models"
)

const (
	// pageSize is the TM API page size for history endpoints.
	pageSize = 500
	// maxPages caps pagination so a pathological card cannot stall a step.
	maxPages = 3
	// maxRetries per call before the failure counts against the breaker.
	maxRetries = 3
)

// ErrUnavailable is returned when the circuit breaker is open.
var ErrUnavailable = errors.New("TM API circuit breaker is open")

// HTTPError is a non-2xx response from the TM API.
type HTTPError struct {
	StatusCode int
	Endpoint   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("TM API %s returned status %d", e.Endpoint, e.StatusCode)
}

// Overview is the translated response of the transaction overview
// endpoint: the anchor transaction plus whatever surrounding context TM
// returns inline.
type Overview struct {
	Transaction  models.Transaction
	MatchedRules []models.MatchedRule
	Review       map[string]any
	Notes        []map[string]any
	Case         map[string]any
}

// Client calls the TM API. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	tokens     *m2mTokenCache
	logger     *slog.Logger
}

// Config for the TM API client.
type Config struct {
	BaseURL                 string
	Timeout                 time.Duration
	CircuitBreakerThreshold uint32
	CircuitBreakerCooldown  time.Duration
	TokenURL                string
	M2MClientID             string
	M2MClientSecret         string
	M2MAudience             string
}

// NewClient creates a TM API client.
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	threshold := cfg.CircuitBreakerThreshold
	if threshold == 0 {
		threshold = 3
	}
	cooldown := cfg.CircuitBreakerCooldown
	if cooldown == 0 {
		cooldown = 60 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "tm-api",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("TM API circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		breaker:    breaker,
		tokens:     newM2MTokenCache(cfg.TokenURL, cfg.M2MClientID, cfg.M2MClientSecret, cfg.M2MAudience, httpClient),
		logger:     slog.Default().With("component", "tmapi"),
	}
}

// TransactionOverview fetches the anchor transaction and its surrounding
// context. includeRules asks TM to inline the matched monitoring rules.
func (c *Client) TransactionOverview(ctx context.Context, transactionID string, includeRules bool) (*Overview, error) {
	query := url.Values{}
	if includeRules {
		query.Set("include_rules", "true")
	}
	raw, err := c.getJSON(ctx, "transaction_overview", "/api/v1/transactions/"+url.PathEscape(transactionID), query)
	if err != nil {
		return nil, err
	}

	overview := &Overview{}
	if txnRaw, ok := raw["transaction"].(map[string]any); ok {
		overview.Transaction, err = decodeTransaction(txnRaw)
		if err != nil {
			return nil, err
		}
	} else {
		// Some TM deployments return the transaction fields at the top
		// level rather than nested.
		overview.Transaction, err = decodeTransaction(raw)
		if err != nil {
			return nil, err
		}
	}
	if overview.Transaction.TransactionID == "" {
		return nil, fmt.Errorf("TM API overview for %s is missing a transaction", transactionID)
	}

	if rules, ok := raw["matched_rules"].([]any); ok {
		for _, r := range rules {
			obj, ok := r.(map[string]any)
			if !ok {
				continue
			}
			var rule models.MatchedRule
			if buf, err := json.Marshal(obj); err == nil {
				_ = json.Unmarshal(buf, &rule)
			}
			overview.MatchedRules = append(overview.MatchedRules, rule)
		}
	}
	if review, ok := raw["review"].(map[string]any); ok {
		overview.Review = review
	}
	if caseObj, ok := raw["case"].(map[string]any); ok {
		overview.Case = caseObj
	}
	if notes, ok := raw["notes"].([]any); ok {
		for _, n := range notes {
			if obj, ok := n.(map[string]any); ok {
				overview.Notes = append(overview.Notes, obj)
			}
		}
	}
	return overview, nil
}

// CardHistory returns transactions on the card within the trailing
// window, newest first, paginated up to maxPages.
func (c *Client) CardHistory(ctx context.Context, cardID string, hoursBack int) ([]models.Transaction, error) {
	return c.history(ctx, "card_history", "/api/v1/cards/"+url.PathEscape(cardID)+"/transactions", hoursBack)
}

// MerchantHistory returns transactions at the merchant within the
// trailing window, newest first, paginated up to maxPages.
func (c *Client) MerchantHistory(ctx context.Context, merchantID string, hoursBack int) ([]models.Transaction, error) {
	return c.history(ctx, "merchant_history", "/api/v1/merchants/"+url.PathEscape(merchantID)+"/transactions", hoursBack)
}

// Health probes the TM API health endpoint without going through the
// breaker, so readiness checks keep reporting while the breaker is open.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("TM API health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &HTTPError{StatusCode: resp.StatusCode, Endpoint: "/api/v1/health"}
	}
	return nil
}

func (c *Client) history(ctx context.Context, endpoint, path string, hoursBack int) ([]models.Transaction, error) {
	var all []models.Transaction
	for page := 1; page <= maxPages; page++ {
		query := url.Values{
			"hours_back": {strconv.Itoa(hoursBack)},
			"page":       {strconv.Itoa(page)},
			"page_size":  {strconv.Itoa(pageSize)},
		}
		raw, err := c.getJSON(ctx, endpoint, path, query)
		if err != nil {
			return nil, err
		}
		items, ok := raw["items"].([]any)
		if !ok {
			return nil, fmt.Errorf("TM API %s returned a malformed page", path)
		}
		objs := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if obj, ok := item.(map[string]any); ok {
				objs = append(objs, obj)
			}
		}
		txns, err := decodeTransactions(objs)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
		if len(items) < pageSize {
			break
		}
	}
	return all, nil
}

// getJSON runs one GET through the breaker. Inside the breaker the call
// is retried with backoff on transport errors and 5xx; 4xx fails
// immediately. Only an exhausted retry loop counts as a breaker failure.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values) (map[string]any, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		var out map[string]any
		op := func() error {
			var opErr error
			out, opErr = c.doGet(ctx, path, query)
			return opErr
		}
		policy := backoff.WithMaxRetries(backoff.WithContext(newBackoff(), ctx), maxRetries)
		if err := backoff.Retry(op, policy); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.TMRequests.WithLabelValues(endpoint, "unavailable").Inc()
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
		}
		metrics.TMRequests.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}
	metrics.TMRequests.WithLabelValues(endpoint, "success").Inc()
	return result.(map[string]any), nil
}

func (c *Client) doGet(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build TM API request: %w", err))
	}

	token := UserTokenFromContext(ctx)
	if token == "" && c.tokens.tokenURL != "" {
		token, err = c.tokens.Token(ctx)
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("failed to obtain TM API token: %w", err))
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TM API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Endpoint: path}
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, backoff.Permanent(&HTTPError{StatusCode: resp.StatusCode, Endpoint: path})
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to decode TM API response: %w", err))
	}
	return out, nil
}

func newBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	return b
}
