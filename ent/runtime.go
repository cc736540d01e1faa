// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fraudops/opsagent/ent/auditlog"
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/schema"
	"github.com/fraudops/opsagent/ent/statesnapshot"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
	"github.com/fraudops/opsagent/ent/transactionembedding"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[5].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	insightFields := schema.Insight{}.Fields()
	_ = insightFields
	// insightDescCreatedAt is the schema descriptor for created_at field.
	insightDescCreatedAt := insightFields[8].Descriptor()
	// insight.DefaultCreatedAt holds the default value on creation for the created_at field.
	insight.DefaultCreatedAt = insightDescCreatedAt.Default.(func() time.Time)
	// insightDescUpdatedAt is the schema descriptor for updated_at field.
	insightDescUpdatedAt := insightFields[9].Descriptor()
	// insight.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	insight.DefaultUpdatedAt = insightDescUpdatedAt.Default.(func() time.Time)
	// insight.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	insight.UpdateDefaultUpdatedAt = insightDescUpdatedAt.UpdateDefault.(func() time.Time)
	investigationFields := schema.Investigation{}.Fields()
	_ = investigationFields
	// investigationDescStepCount is the schema descriptor for step_count field.
	investigationDescStepCount := investigationFields[6].Descriptor()
	// investigation.DefaultStepCount holds the default value on creation for the step_count field.
	investigation.DefaultStepCount = investigationDescStepCount.Default.(int)
	// investigationDescMaxSteps is the schema descriptor for max_steps field.
	investigationDescMaxSteps := investigationFields[7].Descriptor()
	// investigation.DefaultMaxSteps holds the default value on creation for the max_steps field.
	investigation.DefaultMaxSteps = investigationDescMaxSteps.Default.(int)
	// investigationDescCreatedAt is the schema descriptor for created_at field.
	investigationDescCreatedAt := investigationFields[11].Descriptor()
	// investigation.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigation.DefaultCreatedAt = investigationDescCreatedAt.Default.(func() time.Time)
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescCreatedAt is the schema descriptor for created_at field.
	recommendationDescCreatedAt := recommendationFields[10].Descriptor()
	// recommendation.DefaultCreatedAt holds the default value on creation for the created_at field.
	recommendation.DefaultCreatedAt = recommendationDescCreatedAt.Default.(func() time.Time)
	// recommendationDescUpdatedAt is the schema descriptor for updated_at field.
	recommendationDescUpdatedAt := recommendationFields[11].Descriptor()
	// recommendation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recommendation.DefaultUpdatedAt = recommendationDescUpdatedAt.Default.(func() time.Time)
	// recommendation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recommendation.UpdateDefaultUpdatedAt = recommendationDescUpdatedAt.UpdateDefault.(func() time.Time)
	ruledraftFields := schema.RuleDraft{}.Fields()
	_ = ruledraftFields
	// ruledraftDescCreatedAt is the schema descriptor for created_at field.
	ruledraftDescCreatedAt := ruledraftFields[6].Descriptor()
	// ruledraft.DefaultCreatedAt holds the default value on creation for the created_at field.
	ruledraft.DefaultCreatedAt = ruledraftDescCreatedAt.Default.(func() time.Time)
	// ruledraftDescUpdatedAt is the schema descriptor for updated_at field.
	ruledraftDescUpdatedAt := ruledraftFields[7].Descriptor()
	// ruledraft.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ruledraft.DefaultUpdatedAt = ruledraftDescUpdatedAt.Default.(func() time.Time)
	// ruledraft.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ruledraft.UpdateDefaultUpdatedAt = ruledraftDescUpdatedAt.UpdateDefault.(func() time.Time)
	statesnapshotFields := schema.StateSnapshot{}.Fields()
	_ = statesnapshotFields
	// statesnapshotDescVersion is the schema descriptor for version field.
	statesnapshotDescVersion := statesnapshotFields[2].Descriptor()
	// statesnapshot.DefaultVersion holds the default value on creation for the version field.
	statesnapshot.DefaultVersion = statesnapshotDescVersion.Default.(int)
	// statesnapshotDescCreatedAt is the schema descriptor for created_at field.
	statesnapshotDescCreatedAt := statesnapshotFields[3].Descriptor()
	// statesnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	statesnapshot.DefaultCreatedAt = statesnapshotDescCreatedAt.Default.(func() time.Time)
	// statesnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	statesnapshotDescUpdatedAt := statesnapshotFields[4].Descriptor()
	// statesnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	statesnapshot.DefaultUpdatedAt = statesnapshotDescUpdatedAt.Default.(func() time.Time)
	// statesnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	statesnapshot.UpdateDefaultUpdatedAt = statesnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolexecutionlogFields := schema.ToolExecutionLog{}.Fields()
	_ = toolexecutionlogFields
	// toolexecutionlogDescCreatedAt is the schema descriptor for created_at field.
	toolexecutionlogDescCreatedAt := toolexecutionlogFields[9].Descriptor()
	// toolexecutionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolexecutionlog.DefaultCreatedAt = toolexecutionlogDescCreatedAt.Default.(func() time.Time)
	transactionembeddingFields := schema.TransactionEmbedding{}.Fields()
	_ = transactionembeddingFields
	// transactionembeddingDescCreatedAt is the schema descriptor for created_at field.
	transactionembeddingDescCreatedAt := transactionembeddingFields[6].Descriptor()
	// transactionembedding.DefaultCreatedAt holds the default value on creation for the created_at field.
	transactionembedding.DefaultCreatedAt = transactionembeddingDescCreatedAt.Default.(func() time.Time)
}
