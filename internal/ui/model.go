package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"plasmaclean/internal/anim"
	"plasmaclean/internal/idle"
	"plasmaclean/internal/model"
)

// Model is the bubbletea model for the sweep. One Update loop services
// the animation tick chain, the idle-suppression stopwatch, resize, and
// input; there is no other thread touching the animation state.
type Model struct {
	ctx  context.Context
	opts model.Options

	sched    *tickScheduler
	animator *anim.Animator
	frame    anim.PaintInstruction

	inhibitor   idle.Inhibitor
	suppress    stopwatch.Model
	suppressErr error // last nudge failure, surfaced after exit in verbose mode

	width, height int
	styles        Styles
	quitting      bool
}

func NewModel(ctx context.Context, opts model.Options, inhibitor idle.Inhibitor) Model {
	pattern := anim.Pattern{
		Fraction: opts.BarFraction,
		Bright:   anim.BarColor,
		Dark:     anim.Gap,
	}
	sched := &tickScheduler{}
	return Model{
		ctx:       ctx,
		opts:      opts,
		sched:     sched,
		animator:  anim.New(sched, pattern, opts.Period),
		inhibitor: inhibitor,
		suppress:  stopwatch.NewWithInterval(opts.SuppressInterval),
		styles:    defaultStyles(pattern),
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if !m.opts.NoSuppress {
		cmds = append(cmds, m.suppress.Init())
	}
	if m.opts.Duration > 0 {
		cmds = append(cmds, tea.Tick(m.opts.Duration, func(time.Time) tea.Msg {
			return sessionDoneMsg{}
		}))
	}
	// The animation timer is not armed here: the first WindowSizeMsg
	// establishes the width and schedules it.
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key ends the session.
		return m.quit()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m.quit()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if msg.Width > 0 {
			// Resolves any retiming before the paint below uses the frame.
			m.frame = m.animator.Repaint(msg.Width)
		}
		return m, tea.Batch(m.sched.flush()...)

	case animTickMsg:
		if msg.handle != m.sched.active {
			return m, nil // stale tick from a cancelled timer
		}
		m.animator.Tick()
		m.frame.Offset = m.animator.Offset()
		return m, m.sched.rearm(msg.handle)

	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmds []tea.Cmd
		if t, ok := msg.(stopwatch.TickMsg); ok && t.ID == m.suppress.ID() && !m.opts.NoSuppress {
			// The nudge forks a subprocess on some platforms, so it runs
			// as a command, never inline in Update.
			cmds = append(cmds, m.nudgeCmd())
		}
		var cmd tea.Cmd
		m.suppress, cmd = m.suppress.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case nudgeResultMsg:
		if msg.err != nil {
			m.suppressErr = msg.err
		}
		return m, nil

	case sessionDoneMsg:
		return m.quit()
	}
	return m, nil
}

func (m Model) nudgeCmd() tea.Cmd {
	ctx, inhibitor := m.ctx, m.inhibitor
	return func() tea.Msg {
		return nudgeResultMsg{err: inhibitor.Nudge(ctx)}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.quitting = true
	m.animator.Stop()
	return m, tea.Quit
}
