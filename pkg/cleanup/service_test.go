package cleanup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeInvestigations struct {
	calls atomic.Int64
	days  atomic.Int64
	err   error
}

func (f *fakeInvestigations) SoftDeleteOldInvestigations(_ context.Context, retentionDays int) (int, error) {
	f.calls.Add(1)
	f.days.Store(int64(retentionDays))
	if f.err != nil {
		return 0, f.err
	}
	return 2, nil
}

type fakeSnapshots struct {
	calls  atomic.Int64
	cutoff atomic.Value
}

func (f *fakeSnapshots) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	f.calls.Add(1)
	f.cutoff.Store(cutoff)
	return 1, nil
}

type fakeEmbeddings struct {
	calls atomic.Int64
}

func (f *fakeEmbeddings) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	f.calls.Add(1)
	return 3, nil
}

func TestService_RunAllSweepsEveryStore(t *testing.T) {
	investigations := &fakeInvestigations{}
	snapshots := &fakeSnapshots{}
	embeddings := &fakeEmbeddings{}

	svc := NewService(Config{RetentionDays: 90, Interval: time.Hour},
		investigations, snapshots, embeddings)
	svc.runAll(context.Background())

	assert.Equal(t, int64(1), investigations.calls.Load())
	assert.Equal(t, int64(90), investigations.days.Load())
	assert.Equal(t, int64(1), snapshots.calls.Load())
	assert.Equal(t, int64(1), embeddings.calls.Load())

	cutoff := snapshots.cutoff.Load().(time.Time)
	expected := time.Now().AddDate(0, 0, -90)
	assert.WithinDuration(t, expected, cutoff, time.Minute)
}

func TestService_InvestigationFailureDoesNotBlockOtherSweeps(t *testing.T) {
	investigations := &fakeInvestigations{err: errors.New("db down")}
	snapshots := &fakeSnapshots{}
	embeddings := &fakeEmbeddings{}

	svc := NewService(Config{RetentionDays: 30, Interval: time.Hour},
		investigations, snapshots, embeddings)
	svc.runAll(context.Background())

	assert.Equal(t, int64(1), snapshots.calls.Load())
	assert.Equal(t, int64(1), embeddings.calls.Load())
}

func TestService_NilEmbeddingsSkipped(t *testing.T) {
	investigations := &fakeInvestigations{}
	snapshots := &fakeSnapshots{}

	svc := NewService(Config{RetentionDays: 30, Interval: time.Hour},
		investigations, snapshots, nil)
	svc.runAll(context.Background())

	assert.Equal(t, int64(1), investigations.calls.Load())
	assert.Equal(t, int64(1), snapshots.calls.Load())
}

func TestService_StartStop(t *testing.T) {
	investigations := &fakeInvestigations{}
	snapshots := &fakeSnapshots{}
	embeddings := &fakeEmbeddings{}

	svc := NewService(Config{RetentionDays: 30, Interval: 10 * time.Millisecond},
		investigations, snapshots, embeddings)
	svc.Start(context.Background())

	assert.Eventually(t, func() bool {
		return investigations.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "ticker should trigger repeated sweeps")

	svc.Stop()
	after := investigations.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, investigations.calls.Load(), "no sweeps after Stop")
}
