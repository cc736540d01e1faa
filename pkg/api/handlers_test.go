package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/services"
)

type fakeInvestigations struct {
	envelope  *models.InvestigationEnvelope
	ruleDraft *ent.RuleDraft
	err       error
	lastReq   *models.RunInvestigationRequest
	lastID    string
}

func (f *fakeInvestigations) Run(_ context.Context, req *models.RunInvestigationRequest) (*models.InvestigationEnvelope, error) {
	f.lastReq = req
	return f.envelope, f.err
}

func (f *fakeInvestigations) Resume(_ context.Context, id string) (*models.InvestigationEnvelope, error) {
	f.lastID = id
	return f.envelope, f.err
}

func (f *fakeInvestigations) Get(_ context.Context, id string) (*models.InvestigationEnvelope, error) {
	f.lastID = id
	return f.envelope, f.err
}

func (f *fakeInvestigations) GetRuleDraft(_ context.Context, id string) (*ent.RuleDraft, error) {
	f.lastID = id
	if f.ruleDraft == nil {
		return nil, services.ErrNotFound
	}
	return f.ruleDraft, f.err
}

type fakeInsights struct {
	views []models.InsightView
	err   error
}

func (f *fakeInsights) InsightsForTransaction(_ context.Context, _ string) ([]models.InsightView, error) {
	return f.views, f.err
}

type fakeWorklist struct {
	page     *models.WorklistResponse
	row      *ent.Recommendation
	err      error
	lastNext recommendation.Status
	lastID   string
}

func (f *fakeWorklist) Worklist(_ context.Context, _ models.WorklistFilters) (*models.WorklistResponse, error) {
	return f.page, f.err
}

func (f *fakeWorklist) UpdateStatusWithGuard(_ context.Context, id string, next, _ recommendation.Status, _, _ string) (*ent.Recommendation, error) {
	f.lastID = id
	f.lastNext = next
	return f.row, f.err
}

func testSettings() *config.Settings {
	return &config.Settings{
		Environment:       config.EnvLocal,
		SkipJWTValidation: true,
	}
}

func newTestRouter(investigations *fakeInvestigations, insights *fakeInsights, worklist *fakeWorklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := NewServer(testSettings(), nil, investigations, insights, worklist, nil)
	return server.Router()
}

func testEnvelope() *models.InvestigationEnvelope {
	return &models.InvestigationEnvelope{
		InvestigationID: "inv-1",
		TransactionID:   "txn-1",
		Status:          models.StatusCompleted,
		Severity:        models.SeverityHigh,
		ConfidenceScore: 0.72,
	}
}

func TestRunInvestigation(t *testing.T) {
	investigations := &fakeInvestigations{envelope: testEnvelope()}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	body := bytes.NewBufferString(`{"transaction_id":"txn-1","mode":"FULL"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/investigations/run", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, investigations.lastReq)
	assert.Equal(t, "txn-1", investigations.lastReq.TransactionID)

	var envelope models.InvestigationEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "inv-1", envelope.InvestigationID)
	assert.Equal(t, models.SeverityHigh, envelope.Severity)
}

func TestRunInvestigationRejectsMissingTransactionID(t *testing.T) {
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, &fakeWorklist{})

	body := bytes.NewBufferString(`{"mode":"FULL"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/investigations/run", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeInvalidRequest, resp.Code)
}

func TestRunInvestigationConflict(t *testing.T) {
	investigations := &fakeInvestigations{err: &services.ConflictError{
		TransactionID:           "txn-1",
		ExistingInvestigationID: "inv-0",
	}}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	body := bytes.NewBufferString(`{"transaction_id":"txn-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/investigations/run", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeConflict, resp.Code)
	assert.Equal(t, "inv-0", resp.Details["existing_investigation_id"])
}

func TestGetInvestigationNotFound(t *testing.T) {
	investigations := &fakeInvestigations{err: services.ErrNotFound}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops-agent/investigations/inv-missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeNotFound, resp.Code)
	assert.Equal(t, "inv-missing", investigations.lastID)
}

func TestResumeInvestigation(t *testing.T) {
	investigations := &fakeInvestigations{envelope: testEnvelope()}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/investigations/inv-1/resume", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inv-1", investigations.lastID)
}

func TestGetRuleDraft(t *testing.T) {
	draft := &ent.RuleDraft{
		ID:              "draft-1",
		InvestigationID: "inv-1",
		Status:          "PENDING",
		RuleName:        "auto_card_testing_txn-1",
		RuleDescription: "Consecutive small declines on one card",
		Payload:         map[string]any{"thresholds": map[string]any{"consecutive_declines": 4.0}},
		CreatedAt:       time.Now(),
	}
	investigations := &fakeInvestigations{ruleDraft: draft}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops-agent/investigations/inv-1/rule-draft", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ruleDraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "draft-1", resp.RuleDraftID)
	assert.Equal(t, "auto_card_testing_txn-1", resp.RuleName)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestGetRuleDraftNotFound(t *testing.T) {
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, &fakeWorklist{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops-agent/investigations/inv-1/rule-draft", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInsights(t *testing.T) {
	insights := &fakeInsights{views: []models.InsightView{
		{InsightID: "ins-1", TransactionID: "txn-1", Severity: models.SeverityMedium},
	}}
	router := newTestRouter(&fakeInvestigations{}, insights, &fakeWorklist{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops-agent/transactions/txn-1/insights", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Insights []models.InsightView `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Insights, 1)
	assert.Equal(t, "ins-1", resp.Insights[0].InsightID)
}

func TestGetWorklist(t *testing.T) {
	worklist := &fakeWorklist{page: &models.WorklistResponse{
		Items: []models.WorklistItem{
			{RecommendationID: "rec-1", Type: "velocity_review", Status: "OPEN", Priority: 1},
		},
		NextCursor: "OPEN,2026-08-01T00:00:00Z",
	}}
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, worklist)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops-agent/worklist/recommendations?status=OPEN&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.WorklistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "rec-1", resp.Items[0].RecommendationID)
	assert.NotEmpty(t, resp.NextCursor)
}

func TestAcknowledgeRecommendation(t *testing.T) {
	comment := "confirmed with cardholder"
	worklist := &fakeWorklist{row: &ent.Recommendation{
		ID:        "rec-1",
		Status:    recommendation.StatusACKNOWLEDGED,
		Comment:   &comment,
		UpdatedAt: time.Now(),
	}}
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, worklist)

	body := bytes.NewBufferString(`{"action":"ACKNOWLEDGED","comment":"confirmed with cardholder"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/worklist/recommendations/rec-1/acknowledge", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rec-1", worklist.lastID)
	assert.Equal(t, recommendation.StatusACKNOWLEDGED, worklist.lastNext)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACKNOWLEDGED", resp["status"])
	assert.Equal(t, comment, resp["comment"])
}

func TestAcknowledgeRejectsUnknownAction(t *testing.T) {
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, &fakeWorklist{})

	body := bytes.NewBufferString(`{"action":"EXPORTED"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/worklist/recommendations/rec-1/acknowledge", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcknowledgeGuardedUpdateConflict(t *testing.T) {
	worklist := &fakeWorklist{err: services.ErrGuardedUpdateNotApplied}
	router := newTestRouter(&fakeInvestigations{}, &fakeInsights{}, worklist)

	body := bytes.NewBufferString(`{"action":"REJECTED"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/worklist/recommendations/rec-1/acknowledge", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeConflict, resp.Code)
}

func TestDependencyFailureMapsToBadGateway(t *testing.T) {
	investigations := &fakeInvestigations{err: errors.Join(services.ErrDependencyFailure, errors.New("tm api down"))}
	router := newTestRouter(investigations, &fakeInsights{}, &fakeWorklist{})

	body := bytes.NewBufferString(`{"transaction_id":"txn-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ops-agent/investigations/run", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeDependencyFailure, resp.Code)
}
