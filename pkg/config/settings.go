// Package config loads the process-wide settings from the environment.
// Settings are read once at startup into an immutable value; changing any
// option requires a restart. Validation runs eagerly — unsafe production
// combinations abort startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment names. Anything other than "local" is treated as
// non-local for the safety checks.
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Settings is the immutable runtime configuration.
type Settings struct {
	Environment string
	HTTPPort    string

	// Safeguards: per-run deadlines and the step cap.
	InvestigationTimeout time.Duration
	ToolTimeout          time.Duration
	PlannerTimeout       time.Duration
	MaxSteps             int

	// Global concurrency cap across investigations.
	MaxConcurrentInvestigations int64

	// Planner and reasoning LLM toggles.
	PlannerModel        string
	PlannerTemperature  float32
	PlannerLLMEnabled   bool
	ReasoningLLMEnabled bool

	// LLM collaborator (OpenAI-compatible).
	LLMBaseURL             string
	LLMAPIKey              string
	LLMMaxPromptTokens     int
	LLMMaxCompletionTokens int
	PromptGuardEnabled     bool

	// Vector search.
	VectorEnabled        bool
	VectorDimension      int
	VectorSearchLimit    int
	VectorTimeWindowDays int
	VectorMinSimilarity  float64
	EmbeddingModel       string

	// Transaction Management collaborator.
	TMBaseURL                 string
	TMM2MClientID             string
	TMM2MClientSecret         string
	TMM2MAudience             string
	TMTokenURL                string
	TMTimeout                 time.Duration
	TMCircuitBreakerThreshold uint32
	TMCircuitBreakerCooldown  time.Duration

	// Safety flags.
	EnforceHumanApproval  bool
	EnableRuleDraftExport bool
	SkipJWTValidation     bool

	// Auth.
	JWKSURL      string
	JWKSCacheTTL time.Duration

	// Metrics scrape guard.
	MetricsToken string

	// Retention.
	StateRetentionDays int
	CleanupInterval    time.Duration

	Scoring ScoringThresholds
}

// Load reads settings from the environment and validates them.
func Load() (*Settings, error) {
	s := &Settings{
		Environment: getEnv("ENVIRONMENT", EnvLocal),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		InvestigationTimeout: time.Duration(getInt("INVESTIGATION_TIMEOUT_SECONDS", 120)) * time.Second,
		ToolTimeout:          time.Duration(getInt("TOOL_TIMEOUT_SECONDS", 30)) * time.Second,
		PlannerTimeout:       time.Duration(getInt("PLANNER_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxSteps:             getInt("MAX_STEPS", 20),

		MaxConcurrentInvestigations: int64(getInt("MAX_CONCURRENT_INVESTIGATIONS", 10)),

		PlannerModel:        getEnv("PLANNER_MODEL", "gpt-4o-mini"),
		PlannerTemperature:  float32(getFloat("PLANNER_TEMPERATURE", 0.2)),
		PlannerLLMEnabled:   getBool("PLANNER_LLM_ENABLED", true),
		ReasoningLLMEnabled: getBool("REASONING_LLM_ENABLED", true),

		LLMBaseURL:             getEnv("LLM_BASE_URL", ""),
		LLMAPIKey:              os.Getenv("LLM_API_KEY"),
		LLMMaxPromptTokens:     getInt("LLM_MAX_PROMPT_TOKENS", 4000),
		LLMMaxCompletionTokens: getInt("LLM_MAX_COMPLETION_TOKENS", 384),
		PromptGuardEnabled:     getBool("LLM_PROMPT_GUARD_ENABLED", true),

		VectorEnabled:        getBool("VECTOR_ENABLED", true),
		VectorDimension:      getInt("VECTOR_DIMENSION", 1024),
		VectorSearchLimit:    getInt("VECTOR_SEARCH_LIMIT", 20),
		VectorTimeWindowDays: getInt("VECTOR_TIME_WINDOW_DAYS", 90),
		VectorMinSimilarity:  getFloat("VECTOR_MIN_SIMILARITY", 0.3),
		EmbeddingModel:       getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),

		TMBaseURL:                 getEnv("TM_BASE_URL", ""),
		TMM2MClientID:             os.Getenv("TM_M2M_CLIENT_ID"),
		TMM2MClientSecret:         os.Getenv("TM_M2M_CLIENT_SECRET"),
		TMM2MAudience:             os.Getenv("TM_M2M_AUDIENCE"),
		TMTokenURL:                getEnv("TM_TOKEN_URL", ""),
		TMTimeout:                 time.Duration(getInt("TM_TIMEOUT_SECONDS", 10)) * time.Second,
		TMCircuitBreakerThreshold: uint32(getInt("TM_CIRCUIT_BREAKER_THRESHOLD", 3)),
		TMCircuitBreakerCooldown:  time.Duration(getInt("TM_CIRCUIT_BREAKER_COOLDOWN", 60)) * time.Second,

		EnforceHumanApproval:  getBool("ENFORCE_HUMAN_APPROVAL", true),
		EnableRuleDraftExport: getBool("ENABLE_RULE_DRAFT_EXPORT", false),
		SkipJWTValidation:     getBool("SKIP_JWT_VALIDATION", false),

		JWKSURL:      getEnv("JWKS_URL", ""),
		JWKSCacheTTL: time.Duration(getInt("JWKS_CACHE_TTL_SECONDS", 3600)) * time.Second,

		MetricsToken: os.Getenv("METRICS_TOKEN"),

		StateRetentionDays: getInt("STATE_RETENTION_DAYS", 90),
		CleanupInterval:    time.Duration(getInt("CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute,

		Scoring: loadScoringThresholds(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate enforces invariants that must hold before the process serves
// traffic. In non-local environments, unsafe combinations are startup
// failures, not warnings.
func (s *Settings) Validate() error {
	if s.MaxSteps < 1 {
		return fmt.Errorf("MAX_STEPS must be >= 1, got %d", s.MaxSteps)
	}
	if s.PlannerTemperature > 0.3 {
		return fmt.Errorf("PLANNER_TEMPERATURE must be <= 0.3, got %.2f", s.PlannerTemperature)
	}
	if s.MaxConcurrentInvestigations < 1 {
		return fmt.Errorf("MAX_CONCURRENT_INVESTIGATIONS must be >= 1")
	}
	if s.VectorEnabled && s.VectorDimension < 1 {
		return fmt.Errorf("VECTOR_DIMENSION must be >= 1 when vector search is enabled")
	}
	if s.VectorMinSimilarity < 0 || s.VectorMinSimilarity > 1 {
		return fmt.Errorf("VECTOR_MIN_SIMILARITY must be in [0,1], got %.2f", s.VectorMinSimilarity)
	}

	if !s.IsLocal() {
		if s.SkipJWTValidation {
			return fmt.Errorf("SKIP_JWT_VALIDATION is only permitted in local environment (ENVIRONMENT=%s)", s.Environment)
		}
		if !s.EnforceHumanApproval {
			return fmt.Errorf("ENFORCE_HUMAN_APPROVAL must be true outside local environment")
		}
		if !s.PromptGuardEnabled {
			return fmt.Errorf("LLM_PROMPT_GUARD_ENABLED must be true outside local environment")
		}
	}
	if s.EnableRuleDraftExport && !s.EnforceHumanApproval {
		return fmt.Errorf("ENABLE_RULE_DRAFT_EXPORT requires ENFORCE_HUMAN_APPROVAL")
	}
	return nil
}

// IsLocal reports whether the process runs in the local environment.
func (s *Settings) IsLocal() bool {
	return strings.EqualFold(s.Environment, EnvLocal)
}

// FeatureFlags returns the flag snapshot frozen into each investigation
// state at run start.
func (s *Settings) FeatureFlags() map[string]bool {
	return map[string]bool{
		"planner_llm_enabled":      s.PlannerLLMEnabled,
		"reasoning_llm_enabled":    s.ReasoningLLMEnabled,
		"vector_enabled":           s.VectorEnabled,
		"prompt_guard_enabled":     s.PromptGuardEnabled,
		"enforce_human_approval":   s.EnforceHumanApproval,
		"enable_rule_draft_export": s.EnableRuleDraftExport,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
