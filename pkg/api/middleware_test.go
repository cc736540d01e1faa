package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fraudops/opsagent/pkg/auth"
)

func middlewareRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/probe", chain...)
	return router
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	verifier := auth.NewVerifier(auth.NewKeyCache("http://127.0.0.1:0/jwks", 0))
	router := middlewareRouter(requireAuth(verifier, false))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSkipValidation(t *testing.T) {
	router := middlewareRouter(requireAuth(nil, true), requireScope(auth.ScopeWrite))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireScopeForbidden(t *testing.T) {
	setClaims := func(c *gin.Context) {
		c.Set(claimsContextKey, &auth.Claims{Scope: auth.ScopeRead})
		c.Next()
	}
	router := middlewareRouter(setClaims, requireScope(auth.ScopeWrite))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), CodeScopeForbidden)
}

func TestMetricsGuard(t *testing.T) {
	router := middlewareRouter(metricsGuard("scrape-secret"))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "missing token is rejected")

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Metrics-Token", "wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong token is rejected")

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Metrics-Token", "scrape-secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsGuardUnconfigured(t *testing.T) {
	router := middlewareRouter(metricsGuard(""))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Metrics-Token", "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "no configured token disables scraping")
}

func TestSecurityHeaders(t *testing.T) {
	router := middlewareRouter(securityHeaders())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
