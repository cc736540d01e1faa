package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/pkg/agent"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
)

// GraphRunner drives one investigation to its terminal state.
type GraphRunner interface {
	Run(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error)
}

// InvestigationService is the entry point for running, resuming, and
// reading investigations. A weighted semaphore caps the number of
// concurrent graph runs across the process; excess requests block until
// a slot frees or their context expires.
type InvestigationService struct {
	client     *ent.Client
	runner     GraphRunner
	stateStore *StateStore
	settings   *config.Settings
	slots      *semaphore.Weighted
	logger     *slog.Logger
}

// NewInvestigationService creates an InvestigationService.
func NewInvestigationService(client *ent.Client, runner GraphRunner, stateStore *StateStore, settings *config.Settings, logger *slog.Logger) *InvestigationService {
	return &InvestigationService{
		client:     client,
		runner:     runner,
		stateStore: stateStore,
		settings:   settings,
		slots:      semaphore.NewWeighted(settings.MaxConcurrentInvestigations),
		logger:     logger,
	}
}

var _ agent.StateSaver = (*StateStore)(nil)

// Run validates the request, creates the investigation row, and drives
// the graph to a terminal state. Returns ConflictError when another
// investigation for the same transaction is still in flight.
func (s *InvestigationService) Run(ctx context.Context, req *models.RunInvestigationRequest) (*models.InvestigationEnvelope, error) {
	if req.TransactionID == "" {
		return nil, NewValidationError("transaction_id", "required")
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ModeFull
	}
	if mode != models.ModeFull && mode != models.ModeQuick {
		return nil, NewValidationError("mode", fmt.Sprintf("must be FULL or QUICK, got %q", mode))
	}

	if existing, err := s.inFlightFor(ctx, req.TransactionID); err != nil {
		return nil, err
	} else if existing != "" {
		return nil, &ConflictError{TransactionID: req.TransactionID, ExistingInvestigationID: existing}
	}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire investigation slot: %w", err)
	}
	defer s.slots.Release(1)

	investigationID := uuid.New().String()
	create := s.client.Investigation.Create().
		SetID(investigationID).
		SetTransactionID(req.TransactionID).
		SetMode(investigation.Mode(mode)).
		SetStatus(investigation.StatusPending).
		SetMaxSteps(s.settings.MaxSteps).
		SetPlannerModel(s.settings.PlannerModel)
	if req.CaseID != "" {
		create.SetCaseID(req.CaseID)
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create investigation: %w", err)
	}

	state := s.initialState(investigationID, req.TransactionID, mode)
	s.logger.InfoContext(ctx, "Starting investigation",
		slog.String("investigation_id", investigationID),
		slog.String("transaction_id", req.TransactionID),
		slog.String("mode", mode))

	// Row readers must see the live status, not pending, while the graph
	// runs; the completion pipeline stamps the terminal status later.
	if err := s.markInProgress(ctx, investigationID, true); err != nil {
		return nil, err
	}

	final, err := s.runner.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyFailure, err)
	}
	return models.BuildEnvelope(final), nil
}

// Resume reloads the last snapshot and re-enters the graph. Completed
// tools are skipped; the run continues from where the snapshot left off.
func (s *InvestigationService) Resume(ctx context.Context, investigationID string) (*models.InvestigationEnvelope, error) {
	row, err := s.client.Investigation.Get(ctx, investigationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load investigation: %w", err)
	}
	switch row.Status {
	case investigation.StatusCompleted, investigation.StatusFailed:
		return nil, NewValidationError("status", fmt.Sprintf("investigation is terminal (%s) and cannot resume", row.Status))
	}

	state, err := s.stateStore.LoadState(ctx, investigationID)
	if err != nil {
		return nil, err
	}
	// A resumed run gets a fresh deadline but keeps its step budget and
	// completed work.
	state.Status = models.StatusInProgress
	state.Error = ""
	state.CompletedAt = ""

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire investigation slot: %w", err)
	}
	defer s.slots.Release(1)

	s.logger.InfoContext(ctx, "Resuming investigation",
		slog.String("investigation_id", investigationID),
		slog.Int("completed_steps", len(state.CompletedSteps)))

	if err := s.markInProgress(ctx, investigationID, false); err != nil {
		return nil, err
	}

	final, err := s.runner.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyFailure, err)
	}
	return models.BuildEnvelope(final), nil
}

// Get returns the envelope for an investigation from its latest snapshot.
func (s *InvestigationService) Get(ctx context.Context, investigationID string) (*models.InvestigationEnvelope, error) {
	state, err := s.stateStore.LoadState(ctx, investigationID)
	if err != nil {
		return nil, err
	}
	return models.BuildEnvelope(state), nil
}

// GetRuleDraft returns the persisted rule draft for an investigation,
// or ErrNotFound when none was produced.
func (s *InvestigationService) GetRuleDraft(ctx context.Context, investigationID string) (*ent.RuleDraft, error) {
	exists, err := s.client.Investigation.Query().
		Where(investigation.ID(investigationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check investigation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	draft, err := s.client.RuleDraft.Query().
		Where(ruledraft.InvestigationID(investigationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load rule draft: %w", err)
	}
	return draft, nil
}

// SoftDeleteOldInvestigations marks terminal investigations past the
// retention window as deleted. Stale pending rows that never started
// are swept by creation time.
func (s *InvestigationService) SoftDeleteOldInvestigations(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.client.Investigation.Update().
		Where(
			investigation.DeletedAtIsNil(),
			investigation.Or(
				investigation.And(
					investigation.StatusIn(
						investigation.StatusCompleted,
						investigation.StatusFailed,
						investigation.StatusTimedOut,
					),
					investigation.CompletedAtLT(cutoff),
				),
				investigation.And(
					investigation.StatusEQ(investigation.StatusPending),
					investigation.CreatedAtLT(cutoff),
				),
			),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old investigations: %w", err)
	}
	return n, nil
}

// markInProgress stamps the row in_progress and clears any leftover
// terminal fields from a previous timed-out attempt. firstRun also
// records started_at; a resume keeps the original start time.
func (s *InvestigationService) markInProgress(ctx context.Context, investigationID string, firstRun bool) error {
	update := s.client.Investigation.UpdateOneID(investigationID).
		SetStatus(investigation.StatusInProgress).
		ClearErrorMessage().
		ClearCompletedAt()
	if firstRun {
		update.SetStartedAt(time.Now())
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to mark investigation in progress: %w", err)
	}
	return nil
}

// inFlightFor returns the id of a pending or in-progress investigation
// for the transaction, or "" when none exists.
func (s *InvestigationService) inFlightFor(ctx context.Context, transactionID string) (string, error) {
	row, err := s.client.Investigation.Query().
		Where(
			investigation.TransactionID(transactionID),
			investigation.StatusIn(investigation.StatusPending, investigation.StatusInProgress),
			investigation.DeletedAtIsNil(),
		).
		Order(ent.Desc(investigation.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to check in-flight investigations: %w", err)
	}
	return row.ID, nil
}

func (s *InvestigationService) initialState(investigationID, transactionID, mode string) *models.InvestigationState {
	return &models.InvestigationState{
		InvestigationID: investigationID,
		TransactionID:   transactionID,
		Mode:            mode,
		Status:          models.StatusPending,
		CompletedSteps:  []string{},
		MaxSteps:        s.settings.MaxSteps,
		FeatureFlags:    s.settings.FeatureFlags(),
		Safeguards: models.Safeguards{
			InvestigationTimeoutSeconds: int(s.settings.InvestigationTimeout / time.Second),
			ToolTimeoutSeconds:          int(s.settings.ToolTimeout / time.Second),
			PlannerTimeoutSeconds:       int(s.settings.PlannerTimeout / time.Second),
			MaxSteps:                    s.settings.MaxSteps,
		},
	}
}
