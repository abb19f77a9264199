package model

import "time"

const (
	// DefaultPeriod is the wall-clock time for the bar to cross the full
	// display width once.
	DefaultPeriod = 4 * time.Second

	// DefaultBarFraction is the bar's width as a fraction of the display width.
	DefaultBarFraction = 3.0 / 8

	// DefaultSuppressInterval is how often to nudge the system idle timer
	// to keep the screensaver away.
	DefaultSuppressInterval = time.Second
)

// Options holds user-configurable runtime options as parsed from flags.
type Options struct {
	Period           time.Duration // Sweep period. Must be positive.
	BarFraction      float64       // Bright segment width in (0, 1).
	SuppressInterval time.Duration // Idle-nudge cadence. Must be positive.
	NoSuppress       bool          // Disable screensaver suppression entirely.
	Duration         time.Duration // Auto-exit after this long; 0 runs until input.
	Verbose          bool          // Report idle-suppression problems on stderr.
}

// Default returns the reference behavior: 4s sweep, 3/8 bar, 1s nudges,
// run until a key or button press.
func Default() Options {
	return Options{
		Period:           DefaultPeriod,
		BarFraction:      DefaultBarFraction,
		SuppressInterval: DefaultSuppressInterval,
	}
}
