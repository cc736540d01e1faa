package models

// Transaction is the internal representation of a card transaction after
// TM field translation. Field names here are the canonical names used by
// scoring logic; the TM wire names are remapped in pkg/tmapi.
type Transaction struct {
	TransactionID   string  `json:"transaction_id"`
	CardID          string  `json:"card_id"`
	MerchantID      string  `json:"merchant_id"`
	MerchantName    string  `json:"merchant_name,omitempty"`
	MCC             string  `json:"mcc,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency,omitempty"`
	Status          string  `json:"status,omitempty"`
	Country         string  `json:"country,omitempty"`
	Timestamp       string  `json:"timestamp"`
	ThreeDSVerified bool    `json:"3ds_verified,omitempty"`
	DeviceTrusted   bool    `json:"device_trusted,omitempty"`
}

// Declined reports whether the transaction was declined.
func (t *Transaction) Declined() bool { return t.Status == "declined" }

// MatchedRule is a fraud rule that matched the transaction upstream.
type MatchedRule struct {
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name,omitempty"`
	Action   string `json:"action,omitempty"`
}

// WindowStats summarizes card activity in a time window anchored to the
// target transaction's timestamp (never wall clock).
type WindowStats struct {
	TransactionCount int     `json:"transaction_count"`
	TotalAmount      float64 `json:"total_amount"`
	UniqueMerchants  int     `json:"unique_merchants"`
	DeclineCount     int     `json:"decline_count"`
}

// TransactionContext is the evidence bucket produced by the context tool.
type TransactionContext struct {
	Transaction     *Transaction     `json:"transaction,omitempty"`
	CardHistory     []Transaction    `json:"card_history,omitempty"`
	MerchantHistory []Transaction    `json:"merchant_history,omitempty"`
	MatchedRules    []MatchedRule    `json:"matched_rules,omitempty"`
	Review          map[string]any   `json:"review,omitempty"`
	Notes           []map[string]any `json:"notes,omitempty"`
	Case            map[string]any   `json:"case,omitempty"`

	Window1h  WindowStats `json:"window_1h"`
	Window6h  WindowStats `json:"window_6h"`
	Window24h WindowStats `json:"window_24h"`
	Window72h WindowStats `json:"window_72h"`
}

// PatternScore is one deterministic fraud heuristic result.
type PatternScore struct {
	Name    string         `json:"name"`
	Score   float64        `json:"score"`
	Weight  float64        `json:"weight"`
	Details map[string]any `json:"details,omitempty"`
}

// PatternResults aggregates all pattern scores.
type PatternResults struct {
	Scores           []PatternScore `json:"scores"`
	OverallScore     float64        `json:"overall_score"`
	PatternsDetected []string       `json:"patterns_detected,omitempty"`
}

// SimilarityMatch is one nearest-neighbor hit from the vector store.
type SimilarityMatch struct {
	TransactionID string  `json:"transaction_id"`
	Similarity    float64 `json:"similarity"`
	AgeDays       float64 `json:"age_days"`
	WeightedScore float64 `json:"weighted_score"`
}

// SimilarityResult is the similarity tool's output. Skipped is true only
// when vector search is disabled by configuration.
type SimilarityResult struct {
	Matches      []SimilarityMatch `json:"matches"`
	OverallScore float64           `json:"overall_score"`
	Skipped      bool              `json:"skipped,omitempty"`
}

// Reasoning statuses for the llm_status annotation.
const (
	ReasoningStatusLLM      = "llm"
	ReasoningStatusFallback = "fallback"
)

// Reasoning is the (validated, sanitized) narrative risk assessment.
type Reasoning struct {
	RiskLevel   string   `json:"risk_level"`
	Explanation string   `json:"explanation"`
	Hypotheses  []string `json:"hypotheses,omitempty"`
	Confidence  float64  `json:"confidence"`
	LLMStatus   string   `json:"llm_status"`
}

// Recommendation types emitted by the recommendation tool.
const (
	RecTypeBlockCard        = "block_card"
	RecTypeVelocityReview   = "velocity_review"
	RecTypeMerchantReview   = "merchant_review"
	RecTypeCardTestingCase  = "card_testing_case"
	RecTypeStandardReview   = "standard_review"
	RecTypeRuleTuningReview = "rule_tuning_review"
)

// Recommendation is an analyst-facing suggested action held in state.
// Carries enough context to be actionable without re-querying.
type Recommendation struct {
	Type     string         `json:"type"`
	Priority int            `json:"priority"`
	Title    string         `json:"title"`
	Impact   string         `json:"impact,omitempty"`
	Severity string         `json:"severity"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// RuleCondition is one normalized condition tuple in a rule draft.
type RuleCondition struct {
	FieldName string `json:"field_name"`
	Operator  string `json:"operator"`
	Value     any    `json:"value"`
	LogicalOp string `json:"logical_op,omitempty"`
}

// RuleDraftPayload is the normalized, human-reviewable rule proposal.
type RuleDraftPayload struct {
	RuleName        string             `json:"rule_name"`
	RuleDescription string             `json:"rule_description"`
	Conditions      []RuleCondition    `json:"conditions"`
	Thresholds      map[string]float64 `json:"thresholds,omitempty"`
	Metadata        map[string]string  `json:"metadata,omitempty"`
}
