package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/metrics"
	"github.com/fraudops/opsagent/pkg/models"
)

// completionGrace bounds the persistence window after the investigation
// deadline has fired.
const completionGrace = 15 * time.Second

// StateSaver persists a snapshot between nodes. Snapshot failures are
// logged and tolerated; the run continues on in-memory state.
type StateSaver interface {
	SaveState(ctx context.Context, investigationID string, state *models.InvestigationState) (int, error)
}

// Runner drives the planner → executor loop under the outer deadline and
// guarantees the completion node runs on every exit path, including
// timeout and cancellation.
type Runner struct {
	planner    *Planner
	executor   *Executor
	completion *Completion
	saver      StateSaver
	timeout    time.Duration
	logger     *slog.Logger
}

// NewRunner assembles the graph runtime.
func NewRunner(planner *Planner, executor *Executor, completion *Completion, saver StateSaver, timeout time.Duration) *Runner {
	return &Runner{
		planner:    planner,
		executor:   executor,
		completion: completion,
		saver:      saver,
		timeout:    timeout,
		logger:     slog.Default().With("component", "graph"),
	}
}

// Run executes one investigation to its terminal state. The returned
// state is always finalized; the error reports only a failed
// investigation row update.
func (r *Runner) Run(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	start := time.Now()
	metrics.ActiveInvestigations.Inc()
	defer metrics.ActiveInvestigations.Dec()

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	next := state.Clone()
	next.Status = models.StatusInProgress
	if next.StartedAt == "" {
		next.StartedAt = models.Timestamp(time.Now())
	}
	r.snapshot(ctx, next)

	terminal := models.StatusCompleted
	for {
		if runCtx.Err() != nil {
			terminal = models.StatusTimedOut
			break
		}

		next = r.planner.Decide(runCtx, next)
		r.snapshot(ctx, next)
		if next.NextAction == models.ActionComplete {
			break
		}
		if runCtx.Err() != nil {
			// Deadline fired during planning; do not start the tool.
			terminal = models.StatusTimedOut
			break
		}

		next = r.executor.Execute(runCtx, next)
		r.snapshot(ctx, next)

		if runCtx.Err() != nil {
			terminal = models.StatusTimedOut
			break
		}
		if reason, dead := contextUnavailable(next); dead {
			// Without transaction context no other tool can produce
			// evidence; terminate instead of looping on failures.
			terminal = models.StatusFailed
			next.Error = reason
			break
		}
	}

	// Completion always runs, detached from the run deadline and from
	// caller cancellation, so a timed-out investigation still persists.
	completionCtx, completionCancel := context.WithTimeout(context.WithoutCancel(ctx), completionGrace)
	defer completionCancel()

	final, err := r.completion.Finalize(completionCtx, next, terminal)

	elapsed := time.Since(start)
	metrics.InvestigationsTotal.WithLabelValues(final.Status).Inc()
	metrics.InvestigationDuration.Observe(elapsed.Seconds())
	metrics.LLMTokens.WithLabelValues("prompt").Add(float64(final.LLMUsage.TotalPromptTokens))
	metrics.LLMTokens.WithLabelValues("completion").Add(float64(final.LLMUsage.TotalCompletionTokens))
	r.logger.Info("investigation finished",
		"investigation_id", final.InvestigationID,
		"transaction_id", final.TransactionID,
		"status", final.Status,
		"severity", final.Severity,
		"confidence", final.ConfidenceScore,
		"steps", final.StepCount,
		"duration_ms", elapsed.Milliseconds())
	return final, err
}

func (r *Runner) snapshot(ctx context.Context, state *models.InvestigationState) {
	if r.saver == nil {
		return
	}
	snapCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := r.saver.SaveState(snapCtx, state.InvestigationID, state); err != nil {
		r.logger.Error("state snapshot failed",
			"investigation_id", state.InvestigationID, "error", err)
	}
}

// contextUnavailable reports whether the last executed tool was a failed
// context fetch that left the state without a transaction context.
func contextUnavailable(state *models.InvestigationState) (string, bool) {
	if len(state.ToolExecutions) == 0 || state.Context != nil {
		return "", false
	}
	last := state.ToolExecutions[len(state.ToolExecutions)-1]
	if last.ToolName != tools.NameContext || last.Status == models.ToolStatusSuccess {
		return "", false
	}
	reason := "transaction context unavailable"
	if last.ErrorMessage != "" {
		reason += ": " + last.ErrorMessage
	}
	return reason, true
}
