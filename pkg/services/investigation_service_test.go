package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/models"
	testdb "github.com/fraudops/opsagent/test/database"
)

// fakeRunner delegates to a closure so tests can observe the database
// mid-run.
type fakeRunner struct {
	run func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error)
}

func (f *fakeRunner) Run(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
	return f.run(ctx, state)
}

func testSettings() *config.Settings {
	return &config.Settings{
		Environment:                 config.EnvLocal,
		MaxSteps:                    20,
		MaxConcurrentInvestigations: 2,
		InvestigationTimeout:        time.Minute,
		ToolTimeout:                 10 * time.Second,
		PlannerTimeout:              5 * time.Second,
		PlannerModel:                "test-model",
	}
}

func TestRunMarksRowInProgressDuringGraphRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	stateStore := NewStateStore(client.Client)

	var observed investigation.Status
	runner := &fakeRunner{run: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		row, err := client.Client.Investigation.Get(ctx, state.InvestigationID)
		if err != nil {
			return nil, err
		}
		observed = row.Status
		final := state.Clone()
		final.Status = models.StatusCompleted
		final.CompletedAt = models.Timestamp(time.Now())
		return final, nil
	}}

	svc := NewInvestigationService(client.Client, runner, stateStore, testSettings(), slog.Default())

	env, err := svc.Run(context.Background(), &models.RunInvestigationRequest{TransactionID: "txn-run-1"})
	require.NoError(t, err)
	require.NotNil(t, env)

	assert.Equal(t, investigation.StatusInProgress, observed,
		"row readers must see the live status while the graph runs")

	row, err := client.Client.Investigation.Query().
		Where(investigation.TransactionID("txn-run-1")).
		Only(context.Background())
	require.NoError(t, err)
	require.NotNil(t, row.StartedAt, "first run stamps started_at")
}

func TestResumeMarksRowInProgressAndKeepsStartedAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	stateStore := NewStateStore(client.Client)
	ctx := context.Background()

	startedAt := time.Now().Add(-5 * time.Minute)
	const id = "inv-resume-1"
	_, err := client.Client.Investigation.Create().
		SetID(id).
		SetTransactionID("txn-resume-1").
		SetMode(investigation.Mode(models.ModeFull)).
		SetStatus(investigation.StatusTimedOut).
		SetMaxSteps(20).
		SetPlannerModel("test-model").
		SetStartedAt(startedAt).
		SetErrorMessage("investigation timed out").
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	snapshot := &models.InvestigationState{
		InvestigationID: id,
		TransactionID:   "txn-resume-1",
		Mode:            models.ModeFull,
		Status:          models.StatusTimedOut,
		MaxSteps:        20,
		CompletedSteps:  []string{"context_tool"},
	}
	_, err = stateStore.SaveState(ctx, id, snapshot)
	require.NoError(t, err)

	var observed investigation.Status
	var observedStartedAt *time.Time
	var observedError *string
	runner := &fakeRunner{run: func(ctx context.Context, state *models.InvestigationState) (*models.InvestigationState, error) {
		row, err := client.Client.Investigation.Get(ctx, state.InvestigationID)
		if err != nil {
			return nil, err
		}
		observed = row.Status
		observedStartedAt = row.StartedAt
		observedError = row.ErrorMessage
		final := state.Clone()
		final.Status = models.StatusCompleted
		return final, nil
	}}

	svc := NewInvestigationService(client.Client, runner, stateStore, testSettings(), slog.Default())

	_, err = svc.Resume(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, investigation.StatusInProgress, observed)
	assert.Nil(t, observedError, "leftover timeout error is cleared on resume")
	require.NotNil(t, observedStartedAt, "resume keeps the original start time")
	assert.WithinDuration(t, startedAt, *observedStartedAt, time.Second)
}

func TestResumeRejectsTerminalInvestigation(t *testing.T) {
	client := testdb.NewTestClient(t)
	stateStore := NewStateStore(client.Client)
	ctx := context.Background()

	const id = "inv-done-1"
	_, err := client.Client.Investigation.Create().
		SetID(id).
		SetTransactionID("txn-done-1").
		SetMode(investigation.Mode(models.ModeFull)).
		SetStatus(investigation.StatusCompleted).
		SetMaxSteps(20).
		SetPlannerModel("test-model").
		Save(ctx)
	require.NoError(t, err)

	svc := NewInvestigationService(client.Client, &fakeRunner{}, stateStore, testSettings(), slog.Default())

	_, err = svc.Resume(ctx, id)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
