// Package api exposes the HTTP surface: investigation runs, the
// recommendation worklist, and operational endpoints.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fraudops/opsagent/pkg/services"
	"github.com/fraudops/opsagent/pkg/tmapi"
)

// Canonical error codes of the error envelope.
const (
	CodeNotFound          = "OPS_AGENT_NOT_FOUND"
	CodeInvalidRequest    = "OPS_AGENT_INVALID_REQUEST"
	CodeScopeForbidden    = "OPS_AGENT_SCOPE_FORBIDDEN"
	CodeConflict          = "OPS_AGENT_CONFLICT"
	CodeDependencyFailure = "OPS_AGENT_DEPENDENCY_FAILURE"
	CodeInternalError     = "OPS_AGENT_INTERNAL_ERROR"
)

// errorResponse is the error envelope for every non-2xx response.
type errorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

func respondErrorEnvelope(c *gin.Context, status int, code, message string, details map[string]any) {
	if details == nil {
		details = map[string]any{}
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// respondServiceError maps service-layer errors to the error envelope.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondErrorEnvelope(c, http.StatusBadRequest, CodeInvalidRequest, validErr.Error(),
			map[string]any{"field": validErr.Field})
		return
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		respondErrorEnvelope(c, http.StatusConflict, CodeConflict, conflictErr.Error(),
			map[string]any{
				"transaction_id":            conflictErr.TransactionID,
				"existing_investigation_id": conflictErr.ExistingInvestigationID,
			})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondErrorEnvelope(c, http.StatusNotFound, CodeNotFound, "resource not found", nil)
		return
	}
	if errors.Is(err, services.ErrGuardedUpdateNotApplied) {
		respondErrorEnvelope(c, http.StatusConflict, CodeConflict, err.Error(), nil)
		return
	}
	if errors.Is(err, services.ErrDependencyFailure) || errors.Is(err, tmapi.ErrUnavailable) {
		respondErrorEnvelope(c, http.StatusBadGateway, CodeDependencyFailure, err.Error(), nil)
		return
	}

	slog.Error("Unexpected service error", "error", err, "path", c.FullPath())
	respondErrorEnvelope(c, http.StatusInternalServerError, CodeInternalError, "internal server error", nil)
}
