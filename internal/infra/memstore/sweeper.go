package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rv-portal/internal/pkg/clock"
)

const DefaultSweepGrace = time.Minute

// Sweeper periodically evicts expired PIN records.
type Sweeper struct {
	store    *PINStore
	clock    clock.Clock
	interval time.Duration
	grace    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(store *PINStore, clk clock.Clock, interval, grace time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		clock:    clk,
		interval: interval,
		grace:    grace,
	}
}

// Start launches the sweep loop. Calling Start on a running sweeper is a no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil || s.interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop ends the loop and waits for it, or for ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.store.Sweep(s.clock.Now(), s.grace); n > 0 {
				slog.Debug("swept expired pins", "removed", n)
			}
		}
	}
}
