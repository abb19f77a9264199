// Package anim holds the sweep logic of plasmaclean: a bright bar that
// crosses the full display width once per period, at a rate derived from
// the current width so the apparent speed is the same on every display.
// The package is display-free; rendering and timer delivery are supplied
// by the caller.
package anim

import (
	"time"
)

// PeriodMS is the default wall-clock time, in milliseconds, for the bar
// to traverse the full display width once.
const PeriodMS = 4000

// PaintInstruction describes one frame: the pattern, stretched to Width
// columns and translated by Offset columns along the sweep axis.
type PaintInstruction struct {
	Offset  int
	Width   int
	Pattern Pattern
}

// Animator owns the sweep state: the current horizontal offset, the last
// observed width, and the single repeating timer that advances the bar.
// It is not safe for concurrent use; all methods are expected to run on
// one event loop, which is how the TUI drives it.
type Animator struct {
	sched   Scheduler
	pattern Pattern
	period  time.Duration

	offset   int
	width    int // 0 until the first repaint establishes it
	interval time.Duration
	timer    Handle
}

// New returns an Animator sweeping the given pattern once per period.
// A period of zero or less falls back to the reference period.
func New(sched Scheduler, pattern Pattern, period time.Duration) *Animator {
	if period <= 0 {
		period = PeriodMS * time.Millisecond
	}
	return &Animator{sched: sched, pattern: pattern, period: period}
}

// Repaint records the current drawable width and returns the frame to
// draw. When the width differs from the last observed one it cancels the
// active timer, schedules a new one at period/width, and rescales the
// offset proportionally so the bar keeps its relative screen position
// across a resize. Repainting at an unchanged width leaves the timer and
// offset untouched. width must be positive.
func (a *Animator) Repaint(width int) PaintInstruction {
	if width > 0 && width != a.width {
		interval := a.period / time.Duration(width)
		if interval < time.Millisecond {
			interval = time.Millisecond
		}
		if interval != a.interval {
			a.cancelTimer()
			a.timer = a.sched.Register(interval)
			a.interval = interval
		}
		if a.width > 0 {
			a.offset = a.offset * width / a.width
		}
		a.width = width
	}
	return PaintInstruction{Offset: a.offset, Width: a.width, Pattern: a.pattern}
}

// Tick advances the bar by one column, wrapping at the display width.
// It is a no-op until a repaint has established a width.
func (a *Animator) Tick() {
	if a.width == 0 {
		return
	}
	a.offset = (a.offset + 1) % a.width
}

// Stop cancels the active timer. Safe to call more than once.
func (a *Animator) Stop() {
	a.cancelTimer()
}

// Timer returns the handle of the active repeating timer, or zero when
// none is scheduled. Ticks carrying a different handle are stale and
// must be dropped by the caller.
func (a *Animator) Timer() Handle { return a.timer }

// Interval returns the currently scheduled tick interval.
func (a *Animator) Interval() time.Duration { return a.interval }

// Offset returns the bar's current horizontal offset in columns.
func (a *Animator) Offset() int { return a.offset }

// Width returns the last observed drawable width, 0 if none yet.
func (a *Animator) Width() int { return a.width }

func (a *Animator) cancelTimer() {
	if a.timer != 0 {
		a.sched.Cancel(a.timer)
		a.timer = 0
	}
}
