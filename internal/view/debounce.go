package view

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into a single invocation of fn
// after a quiet period. A later trigger supersedes a pending one, so
// only the final state of a burst is acted on.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func()
	timer *time.Timer
}

func NewDebouncer(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger arms the debouncer. With a zero wait fn runs synchronously,
// which keeps tests and fully synchronous embedders deterministic.
func (d *Debouncer) Trigger() {
	if d.wait <= 0 {
		d.fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fn)
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
