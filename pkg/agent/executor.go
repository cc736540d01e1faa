package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/fraudops/opsagent/pkg/metrics"
	"github.com/fraudops/opsagent/pkg/models"
	"github.com/fraudops/opsagent/pkg/redact"
)

// Executor runs the tool named by state.next_action under the per-tool
// deadline and records the outcome. It never fails the run: failures and
// timeouts become ToolExecution records for the planner to adapt to, and
// a tool is never retried within the same investigation.
type Executor struct {
	registry *Registry
	timeout  time.Duration
	logger   *slog.Logger
}

// NewExecutor creates an executor over the registry.
func NewExecutor(registry *Registry, timeout time.Duration) *Executor {
	return &Executor{
		registry: registry,
		timeout:  timeout,
		logger:   slog.Default().With("component", "tool_executor"),
	}
}

// Execute runs one tool step and returns the resulting state.
func (e *Executor) Execute(ctx context.Context, state *models.InvestigationState) *models.InvestigationState {
	toolName := state.NextAction

	spanCtx, span := otel.Tracer("opsagent").Start(ctx, "tool.execute")
	span.SetAttributes(
		attribute.String("tool.name", toolName),
		attribute.String("investigation.id", state.InvestigationID),
	)
	defer span.End()

	tool, ok := e.registry.Get(toolName)
	if !ok {
		// Unknown selection: record a synthetic failure and mark the name
		// completed so the planner cannot select it again.
		e.logger.Error("planner selected unregistered tool",
			"investigation_id", state.InvestigationID, "tool", toolName)
		span.SetStatus(codes.Error, "unknown tool")
		next := state.Clone()
		e.record(next, toolName, models.ToolStatusFailed, 0, "", fmt.Sprintf("unknown tool %q", toolName))
		metrics.ToolExecutions.WithLabelValues(toolName, models.ToolStatusFailed).Inc()
		return next
	}

	toolCtx, cancel := context.WithTimeout(spanCtx, e.timeout)
	defer cancel()

	start := time.Now()
	result, err := tool.Execute(toolCtx, state)
	elapsed := time.Since(start)
	metrics.ToolDuration.WithLabelValues(toolName).Observe(elapsed.Seconds())

	var next *models.InvestigationState
	var status string
	var errMsg string
	switch {
	case err == nil:
		next = result
		status = models.ToolStatusSuccess
	case errors.Is(err, context.DeadlineExceeded):
		next = state.Clone()
		status = models.ToolStatusTimedOut
		errMsg = fmt.Sprintf("tool exceeded %s deadline", e.timeout)
	default:
		next = state.Clone()
		status = models.ToolStatusFailed
		errMsg = redact.Truncate(err.Error(), 500)
	}

	if status != models.ToolStatusSuccess {
		span.SetStatus(codes.Error, status)
		e.logger.Warn("tool execution did not succeed",
			"investigation_id", state.InvestigationID,
			"tool", toolName, "status", status, "error", errMsg,
			"duration_ms", elapsed.Milliseconds())
	} else {
		e.logger.Info("tool executed",
			"investigation_id", state.InvestigationID,
			"tool", toolName, "duration_ms", elapsed.Milliseconds())
	}

	e.record(next, toolName, status, elapsed.Milliseconds(), e.outputSummary(next, toolName), errMsg)
	metrics.ToolExecutions.WithLabelValues(toolName, status).Inc()
	return next
}

// record appends the execution record and marks the tool completed.
func (e *Executor) record(state *models.InvestigationState, toolName, status string, elapsedMs int64, outputSummary, errMsg string) {
	state.ToolExecutions = append(state.ToolExecutions, models.ToolExecutionRecord{
		ToolName:        toolName,
		StepNumber:      state.StepCount,
		Status:          status,
		InputSummary:    fmt.Sprintf("transaction_id=%s", state.TransactionID),
		OutputSummary:   outputSummary,
		ExecutionTimeMs: elapsedMs,
		ErrorMessage:    errMsg,
		Timestamp:       models.Timestamp(time.Now()),
	})
	if !state.HasStep(toolName) {
		state.CompletedSteps = append(state.CompletedSteps, toolName)
	}
	state.NextAction = ""
}

// outputSummary reuses the tool's own evidence description.
func (e *Executor) outputSummary(state *models.InvestigationState, toolName string) string {
	for _, env := range state.Evidence {
		if env.Tool == toolName {
			return env.Description
		}
	}
	return ""
}
