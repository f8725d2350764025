package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingSweepService struct {
	calls   atomic.Int32
	removed int
}

func (c *countingSweepService) SweepExpired(ctx context.Context) int {
	c.calls.Add(1)
	return c.removed
}

func TestDraftSweeper_StartStop(t *testing.T) {
	t.Parallel()

	svc := &countingSweepService{}
	sweeper := NewDraftSweeper(svc, time.Hour)

	if sweeper.IsRunning() {
		t.Error("sweeper should not be running before Start")
	}

	sweeper.Start()
	if !sweeper.IsRunning() {
		t.Error("sweeper should be running after Start")
	}

	// Second Start is a no-op
	sweeper.Start()

	sweeper.Stop()
	if sweeper.IsRunning() {
		t.Error("sweeper should not be running after Stop")
	}

	// Second Stop is a no-op
	sweeper.Stop()
}

func TestDraftSweeper_SweepsOnTick(t *testing.T) {
	t.Parallel()

	svc := &countingSweepService{removed: 2}
	sweeper := NewDraftSweeper(svc, 10*time.Millisecond)

	sweeper.Start()
	time.Sleep(50 * time.Millisecond)
	sweeper.Stop()

	if svc.calls.Load() == 0 {
		t.Error("expected at least one sweep")
	}
}

func TestDraftSweeper_RunOnce(t *testing.T) {
	t.Parallel()

	svc := &countingSweepService{removed: 3}
	sweeper := NewDraftSweeper(svc, time.Hour)

	if removed := sweeper.RunOnce(context.Background()); removed != 3 {
		t.Errorf("expected 3 removed, got %d", removed)
	}
	if svc.calls.Load() != 1 {
		t.Errorf("expected exactly one call, got %d", svc.calls.Load())
	}
}

func TestDraftSweeper_DefaultInterval(t *testing.T) {
	t.Parallel()

	sweeper := NewDraftSweeper(&countingSweepService{}, 0)
	if sweeper.interval != 10*time.Minute {
		t.Errorf("expected default interval 10m, got %v", sweeper.interval)
	}
}
