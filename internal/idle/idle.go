// Package idle keeps the OS screensaver and idle lock from engaging while
// the sweep runs. The reference trick of synthesizing a zero-delta pointer
// move is X11-specific, so each platform substitutes its own idle-reset
// call; where none is available the nudge degrades to a no-op.
package idle

import "context"

// Inhibitor resets the system idle timer on each Nudge. Implementations
// must be cheap enough to call every second and must never block the
// caller for long.
type Inhibitor interface {
	// Nudge pokes the platform idle detector once. Errors are advisory:
	// callers log them at most and keep running.
	Nudge(ctx context.Context) error

	// Available describes the mechanism in use, or reports that none was
	// found on this system.
	Available() (mechanism string, ok bool)
}

// Noop is an Inhibitor that does nothing, for platforms with no usable
// idle-reset mechanism and for --no-suppress.
type Noop struct{}

func (Noop) Nudge(context.Context) error { return nil }

func (Noop) Available() (string, bool) { return "none", false }
