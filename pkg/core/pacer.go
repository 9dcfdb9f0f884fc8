package core

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum delay between consecutive API calls. This is a
// fixed spacing for rate-limit avoidance, not adaptive backoff.
type Pacer interface {
	Wait(ctx context.Context) error
}

type fixedPacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewPacer returns a pacer that admits at most one call per interval. A zero
// or negative interval yields a pacer that never waits.
func NewPacer(interval time.Duration) Pacer {
	return &fixedPacer{interval: interval}
}

func (p *fixedPacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}

	p.mu.Lock()
	now := time.Now()
	at := p.next
	if at.Before(now) {
		at = now
	}
	p.next = at.Add(p.interval)
	p.mu.Unlock()

	delay := time.Until(at)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
