package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DraftSweeper periodically removes expired draft form sessions,
// releasing any picture blobs they still hold.
type DraftSweeper struct {
	forms    FormSweepService
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// FormSweepService is the part of the form service the sweeper needs.
type FormSweepService interface {
	SweepExpired(ctx context.Context) int
}

// NewDraftSweeper creates a new draft sweeper job
func NewDraftSweeper(forms FormSweepService, interval time.Duration) *DraftSweeper {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	return &DraftSweeper{
		forms:    forms,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweeper job
func (s *DraftSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("draft sweeper started", slog.Duration("interval", s.interval))
}

// Stop gracefully stops the sweeper job
func (s *DraftSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("draft sweeper stopped")
}

// run is the main loop
func (s *DraftSweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *DraftSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if removed := s.forms.SweepExpired(ctx); removed > 0 {
		slog.Info("swept expired drafts", slog.Int("removed", removed))
	}
}

// RunOnce runs a sweep once (for testing or manual trigger)
func (s *DraftSweeper) RunOnce(ctx context.Context) int {
	return s.forms.SweepExpired(ctx)
}

// IsRunning returns whether the sweeper is running
func (s *DraftSweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
