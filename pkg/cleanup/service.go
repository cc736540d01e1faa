// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"
)

// InvestigationRetention soft-deletes investigations past the retention
// window.
type InvestigationRetention interface {
	SoftDeleteOldInvestigations(ctx context.Context, retentionDays int) (int, error)
}

// SnapshotRetention prunes state snapshots not touched since the cutoff.
type SnapshotRetention interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// EmbeddingRetention prunes transaction embeddings older than the cutoff.
type EmbeddingRetention interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Config controls the retention sweep.
type Config struct {
	RetentionDays int
	Interval      time.Duration
}

// Service periodically enforces retention policies:
//   - Soft-deletes old terminal investigations (and stale pending ones)
//   - Prunes state snapshots past the retention window
//   - Prunes transaction embeddings past the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config         Config
	investigations InvestigationRetention
	snapshots      SnapshotRetention
	embeddings     EmbeddingRetention

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. embeddings may be nil when
// vector search is disabled.
func NewService(cfg Config, investigations InvestigationRetention, snapshots SnapshotRetention, embeddings EmbeddingRetention) *Service {
	return &Service{
		config:         cfg,
		investigations: investigations,
		snapshots:      snapshots,
		embeddings:     embeddings,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"retention_days", s.config.RetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldInvestigations(ctx)
	s.pruneSnapshots(ctx)
	s.pruneEmbeddings(ctx)
}

func (s *Service) softDeleteOldInvestigations(ctx context.Context) {
	count, err := s.investigations.SoftDeleteOldInvestigations(ctx, s.config.RetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete investigations failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old investigations", "count", count)
	}
}

func (s *Service) pruneSnapshots(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	count, err := s.snapshots.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: snapshot prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned state snapshots", "count", count)
	}
}

func (s *Service) pruneEmbeddings(ctx context.Context) {
	if s.embeddings == nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)
	count, err := s.embeddings.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: embedding prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned transaction embeddings", "count", count)
	}
}
