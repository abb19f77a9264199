package ui

import "plasmaclean/internal/anim"

// animTickMsg advances the bar by one column. It carries the handle of
// the timer that produced it; ticks from a cancelled timer are dropped.
type animTickMsg struct {
	handle anim.Handle
}

// sessionDoneMsg ends a fixed-duration cleaning session.
type sessionDoneMsg struct{}

// nudgeResultMsg reports the outcome of one idle-suppression nudge,
// which runs off the Update loop so a slow platform call cannot stall
// the sweep.
type nudgeResultMsg struct {
	err error
}
