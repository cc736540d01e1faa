package tmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, threshold uint32) *Client {
	return NewClient(Config{
		BaseURL:                 baseURL,
		Timeout:                 5 * time.Second,
		CircuitBreakerThreshold: threshold,
		CircuitBreakerCooldown:  time.Minute,
	})
}

func TestTranslateFields(t *testing.T) {
	raw := map[string]any{
		"txn_id":          "txn-1",
		"card_token":      "4111222233334444",
		"merchant_ref":    "m-1",
		"txn_amount":      12.5,
		"decision":        "DECLINED",
		"three_ds_result": true,
		"custom_field":    "kept",
	}

	out := translateFields(raw)

	assert.Equal(t, "txn-1", out["transaction_id"])
	assert.Equal(t, "4111222233334444", out["card_id"])
	assert.Equal(t, "m-1", out["merchant_id"])
	assert.Equal(t, 12.5, out["amount"])
	assert.Equal(t, "declined", out["status"], "decision should be lowercased")
	assert.Equal(t, true, out["3ds_verified"])
	assert.Equal(t, "kept", out["custom_field"], "unknown keys pass through")
	assert.NotContains(t, out, "txn_id")
}

func TestTransactionOverview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions/txn-1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_rules"))
		json.NewEncoder(w).Encode(map[string]any{
			"transaction": map[string]any{
				"txn_id":       "txn-1",
				"card_token":   "card-1",
				"merchant_ref": "m-1",
				"txn_amount":   99.0,
				"decision":     "APPROVED",
				"occurred_at":  "2026-08-01T12:00:00Z",
			},
			"matched_rules": []map[string]any{
				{"rule_id": "r-1", "rule_name": "velocity", "action": "flag"},
			},
			"review": map[string]any{"status": "pending"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	overview, err := client.TransactionOverview(context.Background(), "txn-1", true)
	require.NoError(t, err)

	assert.Equal(t, "txn-1", overview.Transaction.TransactionID)
	assert.Equal(t, "card-1", overview.Transaction.CardID)
	assert.Equal(t, 99.0, overview.Transaction.Amount)
	assert.Equal(t, "approved", overview.Transaction.Status)
	require.Len(t, overview.MatchedRules, 1)
	assert.Equal(t, "r-1", overview.MatchedRules[0].RuleID)
	assert.Equal(t, "pending", overview.Review["status"])
}

func TestCardHistoryPagination(t *testing.T) {
	var pagesServed atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed.Add(1)
		page := r.URL.Query().Get("page")
		assert.Equal(t, "500", r.URL.Query().Get("page_size"))
		assert.Equal(t, "72", r.URL.Query().Get("hours_back"))

		items := make([]map[string]any, 0, pageSize)
		count := pageSize
		if page == "2" {
			count = 2 // short page terminates pagination
		}
		for i := 0; i < count; i++ {
			items = append(items, map[string]any{
				"txn_id":     fmt.Sprintf("txn-%s-%d", page, i),
				"card_token": "card-1",
				"txn_amount": 1.0,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{"items": items})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	txns, err := client.CardHistory(context.Background(), "card-1", 72)
	require.NoError(t, err)

	assert.Equal(t, int32(2), pagesServed.Load())
	assert.Len(t, txns, pageSize+2)
	assert.Equal(t, "txn-1-0", txns[0].TransactionID)
}

func TestCardHistoryPaginationCap(t *testing.T) {
	var pagesServed atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed.Add(1)
		items := make([]map[string]any, pageSize)
		for i := range items {
			items[i] = map[string]any{"txn_id": fmt.Sprintf("txn-%d", i)}
		}
		json.NewEncoder(w).Encode(map[string]any{"items": items})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	txns, err := client.CardHistory(context.Background(), "card-1", 72)
	require.NoError(t, err)

	assert.Equal(t, int32(maxPages), pagesServed.Load(), "pagination must stop at the page cap")
	assert.Len(t, txns, maxPages*pageSize)
}

func TestRetryOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"transaction": map[string]any{"txn_id": "txn-1"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	overview, err := client.TransactionOverview(context.Background(), "txn-1", false)
	require.NoError(t, err)

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "txn-1", overview.Transaction.TransactionID)
}

func TestNoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	_, err := client.TransactionOverview(context.Background(), "txn-missing", false)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestCircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)

	// Each call exhausts its retries and counts one breaker failure.
	for i := 0; i < 2; i++ {
		_, err := client.TransactionOverview(context.Background(), "txn-1", false)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	_, err := client.TransactionOverview(context.Background(), "txn-1", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestForwardedUserToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer analyst-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"transaction": map[string]any{"txn_id": "txn-1"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 3)
	ctx := WithUserToken(context.Background(), "analyst-token")
	_, err := client.TransactionOverview(ctx, "txn-1", false)
	require.NoError(t, err)
}

func TestM2MTokenCache(t *testing.T) {
	var tokenCalls atomic.Int32
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "svc-id", r.Form.Get("client_id"))
		n := tokenCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": fmt.Sprintf("token-%d", n),
			"expires_in":   3600,
		})
	}))
	defer tokenServer.Close()

	cache := newM2MTokenCache(tokenServer.URL, "svc-id", "svc-secret", "", http.DefaultClient)

	first, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	second, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", second, "token must be served from cache")
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestM2MTokenRefreshAfterExpiry(t *testing.T) {
	var tokenCalls atomic.Int32
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := tokenCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": fmt.Sprintf("token-%d", n),
			"expires_in":   30, // under the refresh skew, expires immediately
		})
	}))
	defer tokenServer.Close()

	cache := newM2MTokenCache(tokenServer.URL, "svc-id", "svc-secret", "", http.DefaultClient)

	_, err := cache.Token(context.Background())
	require.NoError(t, err)
	second, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", second)
}
