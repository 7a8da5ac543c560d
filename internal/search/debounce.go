// Package search holds caller-side view state for the report list: a
// keystroke debouncer and a page accumulator layered over the pure
// fetch-by-page API. The store itself knows nothing about either.
package search

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must be idle before a query fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces rapid successive triggers into a single invocation
// after a quiet period. Each trigger cancels the pending one and restarts
// the wait, so only the last function runs.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
