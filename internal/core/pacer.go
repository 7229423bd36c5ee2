package core

import (
	"context"
	"time"
)

// DefaultInterval is the frame cadence used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Pacer spaces loop iterations at a fixed interval. Deadlines advance
// from the previous deadline, not from wake-up time, so short sleeps do
// not accumulate drift.
type Pacer struct {
	interval time.Duration
	next     time.Time
}

// NewPacer constructs a Pacer. Non-positive intervals fall back to
// DefaultInterval.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Pacer{interval: interval}
}

// Interval reports the configured frame interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next deadline or until ctx is done, whichever
// comes first. When the loop has fallen behind, Wait realigns to the
// current time instead of bursting catch-up iterations.
func (p *Pacer) Wait(ctx context.Context) error {
	now := time.Now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(p.interval)

	d := p.next.Sub(now)
	if d <= 0 {
		p.next = now
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
