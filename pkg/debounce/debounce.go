// Package debounce coalesces bursts of triggers into a single trailing action.
//
// A Debouncer hands out tickets. Scheduling a new ticket invalidates the one
// before it, so when the delayed callbacks arrive (for example as tea.Tick
// messages) only the most recent ticket fires.
package debounce

import "time"

// DefaultDelay is the quiet period used when none is configured.
const DefaultDelay = 300 * time.Millisecond

// Ticket identifies one scheduled run.
type Ticket uint64

// Debouncer is not safe for concurrent use; it is meant to be driven from a
// single event loop.
type Debouncer struct {
	delay   time.Duration
	seq     uint64
	pending bool
}

// New returns a Debouncer with the given delay. Non-positive delays fall back
// to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule invalidates any pending ticket and returns a fresh one.
func (d *Debouncer) Schedule() Ticket {
	d.seq++
	d.pending = true
	return Ticket(d.seq)
}

// Fire reports whether t is the latest pending ticket. A ticket fires at most
// once.
func (d *Debouncer) Fire(t Ticket) bool {
	if !d.pending || uint64(t) != d.seq {
		return false
	}
	d.pending = false
	return true
}

// Cancel drops the pending ticket, if any.
func (d *Debouncer) Cancel() {
	d.pending = false
}

func (d *Debouncer) Pending() bool {
	return d.pending
}
