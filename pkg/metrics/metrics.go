// Package metrics holds the Prometheus collectors for the investigation
// runtime. Collectors are registered on the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvestigationsTotal counts finished investigations by terminal status.
	InvestigationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsagent_investigations_total",
		Help: "Finished investigations by terminal status.",
	}, []string{"status"})

	// InvestigationDuration observes wall time of whole investigations.
	InvestigationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "opsagent_investigation_duration_seconds",
		Help:    "Wall time of investigations from start to completion.",
		Buckets: []float64{1, 5, 10, 30, 60, 90, 120, 180},
	})

	// ActiveInvestigations tracks currently running investigations.
	ActiveInvestigations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "opsagent_active_investigations",
		Help: "Investigations currently in progress.",
	})

	// ToolExecutions counts tool runs by tool and outcome.
	ToolExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsagent_tool_executions_total",
		Help: "Tool executions by tool name and outcome.",
	}, []string{"tool", "status"})

	// ToolDuration observes per-tool execution time.
	ToolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "opsagent_tool_duration_seconds",
		Help:    "Tool execution time by tool name.",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"tool"})

	// LLMFallbacks counts deterministic fallbacks by component
	// (planner, reasoning).
	LLMFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsagent_llm_fallbacks_total",
		Help: "LLM calls that degraded to the deterministic fallback, by component.",
	}, []string{"component"})

	// TMRequests counts TM API calls by logical endpoint and outcome.
	TMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsagent_tm_requests_total",
		Help: "TM API requests by endpoint and outcome (success, error, unavailable).",
	}, []string{"endpoint", "outcome"})

	// LLMTokens counts LLM token consumption by direction.
	LLMTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsagent_llm_tokens_total",
		Help: "LLM tokens consumed, by direction (prompt/completion).",
	}, []string{"direction"})
)
