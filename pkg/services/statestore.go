package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fraudops/opsagent/ent"
	"github.com/fraudops/opsagent/ent/statesnapshot"
	"github.com/fraudops/opsagent/pkg/models"
)

// StateStore persists the versioned JSONB snapshot of an investigation.
// One row per investigation; every save increments the version
// atomically via an upsert.
type StateStore struct {
	client *ent.Client
}

// NewStateStore creates a StateStore.
func NewStateStore(client *ent.Client) *StateStore {
	return &StateStore{client: client}
}

// SaveState upserts the snapshot and returns the new version.
func (s *StateStore) SaveState(ctx context.Context, investigationID string, state *models.InvestigationState) (int, error) {
	if investigationID == "" {
		return 0, NewValidationError("investigation_id", "required")
	}
	stateMap, err := state.ToMap()
	if err != nil {
		return 0, err
	}

	err = s.client.StateSnapshot.Create().
		SetID(investigationID).
		SetState(stateMap).
		OnConflictColumns(statesnapshot.FieldID).
		Update(func(u *ent.StateSnapshotUpsert) {
			u.SetState(stateMap)
			u.AddVersion(1)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to save state snapshot: %w", err)
	}

	snap, err := s.client.StateSnapshot.Get(ctx, investigationID)
	if err != nil {
		return 0, fmt.Errorf("failed to read back snapshot version: %w", err)
	}
	return snap.Version, nil
}

// LoadState returns the snapshot state, or ErrNotFound.
func (s *StateStore) LoadState(ctx context.Context, investigationID string) (*models.InvestigationState, error) {
	snap, err := s.client.StateSnapshot.Get(ctx, investigationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load state snapshot: %w", err)
	}
	return models.StateFromMap(snap.State)
}

// LoadVersion returns the current snapshot version, or ErrNotFound.
func (s *StateStore) LoadVersion(ctx context.Context, investigationID string) (int, error) {
	snap, err := s.client.StateSnapshot.Get(ctx, investigationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to load snapshot version: %w", err)
	}
	return snap.Version, nil
}

// DeleteOlderThan removes snapshots not touched since the cutoff. Used
// by the retention sweep.
func (s *StateStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.StateSnapshot.Delete().
		Where(statesnapshot.UpdatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune state snapshots: %w", err)
	}
	return n, nil
}

// DeleteState removes the snapshot. Returns false when none existed.
func (s *StateStore) DeleteState(ctx context.Context, investigationID string) (bool, error) {
	err := s.client.StateSnapshot.DeleteOneID(investigationID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete state snapshot: %w", err)
	}
	return true, nil
}
