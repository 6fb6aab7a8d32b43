package alert

import (
	"sync"
	"time"
)

// Throttle is a time-based gate for outbound notifications:
// - Ready tells whether the cooldown has elapsed since the last send.
// - MarkSent records a successful send time.
// Failed sends must not be marked, so the next cycle may retry.
type Throttle struct {
	mu       sync.Mutex
	cooldown time.Duration
	lastSent time.Time
}

func NewThrottle(cooldown time.Duration) *Throttle {
	return &Throttle{cooldown: cooldown}
}

func (t *Throttle) SetCooldown(d time.Duration) {
	t.mu.Lock()
	t.cooldown = d
	t.mu.Unlock()
}

func (t *Throttle) Cooldown() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cooldown
}

// LastSent returns the last marked send time.
func (t *Throttle) LastSent() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastSent
}

// Ready reports whether a notification may go out now and, when it may
// not, how long remains until it may. It does not update internal state.
func (t *Throttle) Ready(now time.Time) (ready bool, remaining time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cooldown <= 0 || t.lastSent.IsZero() {
		return true, 0
	}
	elapsed := now.Sub(t.lastSent)
	if elapsed >= t.cooldown {
		return true, 0
	}
	return false, t.cooldown - elapsed
}

// MarkSent records a successful send time.
func (t *Throttle) MarkSent(now time.Time) {
	t.mu.Lock()
	t.lastSent = now
	t.mu.Unlock()
}

// Reset clears the last send time so the next Ready reports true.
func (t *Throttle) Reset() {
	t.mu.Lock()
	t.lastSent = time.Time{}
	t.mu.Unlock()
}
