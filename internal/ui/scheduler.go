package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"plasmaclean/internal/anim"
)

// tickScheduler implements anim.Scheduler on top of bubbletea's one-shot
// tea.Tick. A "repeating timer" is a self-rearming tick chain keyed by
// handle; cancelling simply forgets the handle so any tick still in
// flight identifies itself as stale and is dropped.
type tickScheduler struct {
	next     anim.Handle
	active   anim.Handle
	interval time.Duration
	pending  []tea.Cmd
}

func (s *tickScheduler) Register(interval time.Duration) anim.Handle {
	s.next++
	s.active = s.next
	s.interval = interval
	s.pending = append(s.pending, tickCmd(s.next, interval))
	return s.next
}

func (s *tickScheduler) Cancel(h anim.Handle) {
	if s.active == h {
		s.active = 0
	}
}

// flush hands the commands queued by Register to the Update loop.
func (s *tickScheduler) flush() []tea.Cmd {
	p := s.pending
	s.pending = nil
	return p
}

// rearm continues the tick chain for a live handle.
func (s *tickScheduler) rearm(h anim.Handle) tea.Cmd {
	if h != s.active || h == 0 {
		return nil
	}
	return tickCmd(h, s.interval)
}

func tickCmd(h anim.Handle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return animTickMsg{handle: h}
	})
}
