package anim

import "time"

// Handle identifies a registered repeating timer. The zero value means
// "no timer". Handles are never reused within one Scheduler.
type Handle uint64

// Scheduler is the timer capability the Animator drives its sweep with.
// Implementations decide how ticks are actually delivered (the TUI uses a
// bubbletea tick chain, tests use a recording fake); the Animator only
// tracks registration and cancellation.
type Scheduler interface {
	// Register arranges for repeating ticks at the given interval and
	// returns a handle identifying the registration.
	Register(interval time.Duration) Handle

	// Cancel stops the timer for the given handle. Cancelling the zero
	// handle or an already-cancelled handle is a no-op.
	Cancel(h Handle)
}
