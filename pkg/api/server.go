package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/auth"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/database"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/version"
)

// InvestigationAPI is the investigation surface the handlers need.
type InvestigationAPI interface {
	Run(ctx context.Context, req *models.RunInvestigationRequest) (*models.InvestigationEnvelope, error)
	Resume(ctx context.Context, investigationID string) (*models.InvestigationEnvelope, error)
	Get(ctx context.Context, investigationID string) (*models.InvestigationEnvelope, error)
	GetRuleDraft(ctx context.Context, investigationID string) (*ent.RuleDraft, error)
}

// InsightAPI serves persisted insights.
type InsightAPI interface {
	InsightsForTransaction(ctx context.Context, transactionID string) ([]models.InsightView, error)
}

// WorklistAPI serves the recommendation worklist.
type WorklistAPI interface {
	Worklist(ctx context.Context, filters models.WorklistFilters) (*models.WorklistResponse, error)
	UpdateStatusWithGuard(ctx context.Context, id string, next, expected recommendation.Status, comment, performedBy string) (*ent.Recommendation, error)
}

// Server is the HTTP server.
type Server struct {
	settings       *config.Settings
	db             *database.Client
	investigations InvestigationAPI
	insights       InsightAPI
	worklist       WorklistAPI
	verifier       *auth.Verifier

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(settings *config.Settings, db *database.Client, investigations InvestigationAPI, insights InsightAPI, worklist WorklistAPI, verifier *auth.Verifier) *Server {
	return &Server{
		settings:       settings,
		db:             db,
		investigations: investigations,
		insights:       insights,
		worklist:       worklist,
		verifier:       verifier,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if !s.settings.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.health)
	router.GET("/metrics", metricsGuard(s.settings.MetricsToken), gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1/ops-agent")
	v1.Use(requireAuth(s.verifier, s.settings.SkipJWTValidation))
	{
		v1.POST("/investigations/run", requireScope(auth.ScopeWrite), s.runInvestigation)
		v1.GET("/investigations/:id", requireScope(auth.ScopeRead), s.getInvestigation)
		v1.POST("/investigations/:id/resume", requireScope(auth.ScopeWrite), s.resumeInvestigation)
		v1.GET("/investigations/:id/rule-draft", requireScope(auth.ScopeRead), s.getRuleDraft)
		v1.GET("/transactions/:transaction_id/insights", requireScope(auth.ScopeRead), s.getInsights)
		v1.GET("/worklist/recommendations", requireScope(auth.ScopeRead), s.getWorklist)
		v1.POST("/worklist/recommendations/:id/acknowledge", requireScope(auth.ScopeWrite), s.acknowledgeRecommendation)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
