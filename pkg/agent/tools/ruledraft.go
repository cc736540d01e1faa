package tools

import (
	"context"
	"fmt"

	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

// RuleDraftTool turns the top-priority recommendation into a normalized,
// human-reviewable rule proposal. The draft is never exported by this
// tool; export is a separate, explicitly human-gated action.
type RuleDraftTool struct {
	thresholds config.ScoringThresholds
}

// NewRuleDraftTool creates the rule draft tool.
func NewRuleDraftTool(thresholds config.ScoringThresholds) *RuleDraftTool {
	return &RuleDraftTool{thresholds: thresholds}
}

func (t *RuleDraftTool) Name() string { return NameRuleDraft }

func (t *RuleDraftTool) Description() string {
	return "Drafts a normalized rule proposal from the top-priority recommendation; never exports automatically."
}

// Execute implements Tool. With no recommendations there is nothing to
// draft, and a routine standard review is not evidence of a pattern
// worth a rule; in both cases the tool records that and succeeds.
func (t *RuleDraftTool) Execute(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	next := state.Clone()

	if len(next.Recommendations) == 0 || next.Recommendations[0].Type == models.RecTypeStandardReview {
		next.RuleDraft = nil
		next.SetEvidence(models.EvidenceEnvelope{
			Category:    "rule_draft",
			Tool:        NameRuleDraft,
			Description: "No actionable recommendation; no rule drafted",
			Data:        map[string]any{"drafted": false},
		})
		return next, nil
	}

	top := next.Recommendations[0]
	draft := t.draftFor(next, top)
	next.RuleDraft = draft
	next.SetEvidence(models.EvidenceEnvelope{
		Category:    "rule_draft",
		Tool:        NameRuleDraft,
		Description: fmt.Sprintf("Drafted rule %q from %s recommendation", draft.RuleName, top.Type),
		Data: map[string]any{
			"drafted":         true,
			"rule_name":       draft.RuleName,
			"condition_count": len(draft.Conditions),
		},
	})
	return next, nil
}

func (t *RuleDraftTool) draftFor(state *models.InvestigationState, top models.Recommendation) *models.RuleDraftPayload {
	txn := state.Context.Transaction
	draft := &models.RuleDraftPayload{
		RuleName:   fmt.Sprintf("auto_%s_%s", top.Type, state.TransactionID),
		Thresholds: map[string]float64{},
		Metadata: map[string]string{
			"source":              "ops-agent",
			"investigation_id":    state.InvestigationID,
			"recommendation_type": top.Type,
		},
	}

	switch top.Type {
	case models.RecTypeBlockCard, models.RecTypeCardTestingCase:
		draft.RuleDescription = "Flag runs of small-amount declines consistent with card testing."
		draft.Conditions = []models.RuleCondition{
			{FieldName: "amount", Operator: "<=", Value: t.thresholds.CardTestingMaxAmount, LogicalOp: "AND"},
			{FieldName: "status", Operator: "==", Value: "declined"},
		}
		draft.Thresholds["consecutive_declines"] = float64(t.thresholds.CardTestingDeclineThreshold)

	case models.RecTypeVelocityReview:
		draft.RuleDescription = "Flag cards exceeding the hourly transaction velocity threshold."
		draft.Conditions = []models.RuleCondition{
			{FieldName: "card_transaction_count_1h", Operator: ">=", Value: t.thresholds.Velocity1hThreshold},
		}
		draft.Thresholds["velocity_1h"] = float64(t.thresholds.Velocity1hThreshold)

	case models.RecTypeMerchantReview:
		draft.RuleDescription = "Flag cards spreading across many distinct merchants within a day."
		draft.Conditions = []models.RuleCondition{
			{FieldName: "unique_merchants_24h", Operator: ">=", Value: t.thresholds.CrossMerchantThreshold},
		}
		draft.Thresholds["cross_merchant_24h"] = float64(t.thresholds.CrossMerchantThreshold)

	default:
		draft.RuleDescription = "Flag elevated-amount transactions matching this investigation's profile."
		draft.Conditions = []models.RuleCondition{
			{FieldName: "amount", Operator: ">=", Value: t.thresholds.AmountElevated, LogicalOp: "AND"},
			{FieldName: "merchant_id", Operator: "==", Value: txn.MerchantID},
		}
		draft.Thresholds["amount_elevated"] = t.thresholds.AmountElevated
	}
	return draft
}
