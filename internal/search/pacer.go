package search

import (
	"context"
	"sync"
	"time"
)

// pacer enforces a minimum interval between consecutive calls. Unlike a
// token bucket it never allows bursts: the second of two back-to-back calls
// always waits out the full interval.
type pacer struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newPacer(interval time.Duration) *pacer {
	return &pacer{interval: interval}
}

// wait blocks until this caller's turn, or until ctx is done. Each caller
// reserves the next slot before sleeping so concurrent callers are serialized
// fairly.
func (p *pacer) wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.interval)
	p.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
