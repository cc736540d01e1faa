package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/pkg/models"
)

// runInvestigation handles POST /investigations/run. The request runs
// synchronously; the response carries the full agentic trace envelope.
func (s *Server) runInvestigation(c *gin.Context) {
	var req models.RunInvestigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorEnvelope(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
		return
	}

	envelope, err := s.investigations.Run(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope)
}

// getInvestigation handles GET /investigations/:id.
func (s *Server) getInvestigation(c *gin.Context) {
	envelope, err := s.investigations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope)
}

// resumeInvestigation handles POST /investigations/:id/resume.
func (s *Server) resumeInvestigation(c *gin.Context) {
	envelope, err := s.investigations.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope)
}

// ruleDraftResponse is the rule draft payload shape.
type ruleDraftResponse struct {
	RuleDraftID     string         `json:"rule_draft_id"`
	InvestigationID string         `json:"investigation_id"`
	Status          string         `json:"status"`
	RuleName        string         `json:"rule_name"`
	RuleDescription string         `json:"rule_description"`
	Payload         map[string]any `json:"payload"`
	CreatedAt       string         `json:"created_at"`
}

func newRuleDraftResponse(draft *ent.RuleDraft) ruleDraftResponse {
	return ruleDraftResponse{
		RuleDraftID:     draft.ID,
		InvestigationID: draft.InvestigationID,
		Status:          string(draft.Status),
		RuleName:        draft.RuleName,
		RuleDescription: draft.RuleDescription,
		Payload:         draft.Payload,
		CreatedAt:       models.Timestamp(draft.CreatedAt),
	}
}

// getRuleDraft handles GET /investigations/:id/rule-draft.
func (s *Server) getRuleDraft(c *gin.Context) {
	draft, err := s.investigations.GetRuleDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRuleDraftResponse(draft))
}

// getInsights handles GET /transactions/:transaction_id/insights.
func (s *Server) getInsights(c *gin.Context) {
	views, err := s.insights.InsightsForTransaction(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": views})
}

// getWorklist handles GET /worklist/recommendations.
func (s *Server) getWorklist(c *gin.Context) {
	var filters models.WorklistFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondErrorEnvelope(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
		return
	}

	page, err := s.worklist.Worklist(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// acknowledgeRecommendation handles POST /worklist/recommendations/:id/acknowledge.
// The transition is status-guarded: only OPEN recommendations can be
// acknowledged or rejected.
func (s *Server) acknowledgeRecommendation(c *gin.Context) {
	var req models.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorEnvelope(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
		return
	}

	row, err := s.worklist.UpdateStatusWithGuard(c.Request.Context(),
		c.Param("id"), recommendation.Status(req.Action), recommendation.StatusOPEN,
		req.Comment, performer(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{
		"recommendation_id": row.ID,
		"status":            string(row.Status),
		"updated_at":        models.Timestamp(row.UpdatedAt),
	}
	if row.Comment != nil {
		resp["comment"] = *row.Comment
	}
	c.JSON(http.StatusOK, resp)
}
