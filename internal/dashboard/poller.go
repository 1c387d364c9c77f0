package dashboard

import (
	"context"
	"sync"
	"time"
)

// Poller runs a refresh function on a fixed interval between an explicit
// Start and Stop. Stop fully disarms the ticker; a later Start re-arms it.
// This mirrors a dashboard that refreshes only while it is visible.
type Poller struct {
	interval time.Duration
	refresh  func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(interval time.Duration, refresh func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{interval: interval, refresh: refresh}
}

// Start arms the poller: one immediate refresh, then one per interval
// until Stop or ctx cancellation. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done

	go func() {
		defer close(done)
		p.refresh(runCtx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				p.refresh(runCtx)
			}
		}
	}()
}

// Stop disarms the poller and waits for the in-flight refresh to finish.
// Stopping a stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the poller is currently armed.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}
