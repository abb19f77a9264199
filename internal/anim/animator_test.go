package anim

import (
	"testing"
	"time"
)

// fakeScheduler records registrations and cancellations so tests can
// assert on timer identity and churn.
type fakeScheduler struct {
	next      Handle
	intervals map[Handle]time.Duration
	cancels   int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{intervals: make(map[Handle]time.Duration)}
}

func (s *fakeScheduler) Register(interval time.Duration) Handle {
	s.next++
	s.intervals[s.next] = interval
	return s.next
}

func (s *fakeScheduler) Cancel(h Handle) {
	if _, ok := s.intervals[h]; ok {
		delete(s.intervals, h)
		s.cancels++
	}
}

func (s *fakeScheduler) active() int { return len(s.intervals) }

func newTestAnimator(sched Scheduler) *Animator {
	return New(sched, DefaultPattern(), PeriodMS*time.Millisecond)
}

func TestRepaintSchedulesIntervalFromWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  time.Duration
	}{
		{"typical terminal", 200, 20 * time.Millisecond},
		{"wide terminal", 500, 8 * time.Millisecond},
		{"full sweep reference", 1000, 4 * time.Millisecond},
		{"narrow", 80, 50 * time.Millisecond},
		{"wider than period clamps to 1ms", 5000, time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := newFakeScheduler()
			a := newTestAnimator(sched)
			a.Repaint(tt.width)
			if got := a.Interval(); got != tt.want {
				t.Errorf("Interval() = %v, want %v", got, tt.want)
			}
			if sched.active() != 1 {
				t.Errorf("active timers = %d, want 1", sched.active())
			}
		})
	}
}

func TestRepaintResizeReplacesTimer(t *testing.T) {
	sched := newFakeScheduler()
	a := newTestAnimator(sched)

	a.Repaint(1000)
	first := a.Timer()

	a.Repaint(500)
	second := a.Timer()

	if first == second {
		t.Error("resize kept the old timer handle, want a fresh one")
	}
	if sched.active() != 1 {
		t.Errorf("active timers after resize = %d, want 1", sched.active())
	}
	if got, want := a.Interval(), 8*time.Millisecond; got != want {
		t.Errorf("Interval() after resize = %v, want %v", got, want)
	}
	if sched.cancels != 1 {
		t.Errorf("cancels = %d, want 1", sched.cancels)
	}
}

func TestRepaintSameWidthIsIdempotent(t *testing.T) {
	sched := newFakeScheduler()
	a := newTestAnimator(sched)

	a.Repaint(300)
	for i := 0; i < 17; i++ {
		a.Tick()
	}
	handle := a.Timer()
	offset := a.Offset()

	for i := 0; i < 5; i++ {
		a.Repaint(300)
	}

	if a.Timer() != handle {
		t.Errorf("Timer() = %v after repeated repaint, want %v", a.Timer(), handle)
	}
	if a.Offset() != offset {
		t.Errorf("Offset() = %d after repeated repaint, want %d", a.Offset(), offset)
	}
	if sched.cancels != 0 {
		t.Errorf("cancels = %d, want 0", sched.cancels)
	}
}

func TestTickWrapsAtWidth(t *testing.T) {
	sched := newFakeScheduler()
	a := newTestAnimator(sched)
	a.Repaint(7)

	for n := 1; n <= 30; n++ {
		a.Tick()
		if want := n % 7; a.Offset() != want {
			t.Fatalf("after %d ticks Offset() = %d, want %d", n, a.Offset(), want)
		}
	}
}

func TestTickBeforeFirstRepaintIsNoop(t *testing.T) {
	a := newTestAnimator(newFakeScheduler())
	a.Tick() // must not divide or modulo by the zero width
	if a.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", a.Offset())
	}
}

func TestResizeRescalesOffsetProportionally(t *testing.T) {
	tests := []struct {
		name       string
		w1, w2     int
		offset     int
		wantOffset int
	}{
		{"double width", 100, 200, 25, 50},
		{"halve width", 200, 100, 150, 75},
		{"rounds down", 300, 100, 100, 33},
		{"offset zero stays zero", 100, 250, 0, 0},
		{"near right edge stays in range", 100, 30, 99, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnimator(newFakeScheduler())
			a.Repaint(tt.w1)
			for i := 0; i < tt.offset; i++ {
				a.Tick()
			}
			instr := a.Repaint(tt.w2)
			if instr.Offset != tt.wantOffset {
				t.Errorf("Offset after resize = %d, want %d", instr.Offset, tt.wantOffset)
			}
			if instr.Offset < 0 || instr.Offset >= tt.w2 {
				t.Errorf("Offset %d out of range [0, %d)", instr.Offset, tt.w2)
			}
		})
	}
}

func TestFullSweepReturnsToStart(t *testing.T) {
	sched := newFakeScheduler()
	a := newTestAnimator(sched)

	a.Repaint(1000)
	if got, want := a.Interval(), 4*time.Millisecond; got != want {
		t.Fatalf("Interval() = %v, want %v", got, want)
	}

	start := a.Offset()
	for i := 0; i < 1000; i++ {
		a.Tick()
	}
	if a.Offset() != start {
		t.Errorf("Offset() after full sweep = %d, want %d", a.Offset(), start)
	}
}

func TestStopCancelsExactlyOnce(t *testing.T) {
	sched := newFakeScheduler()
	a := newTestAnimator(sched)
	a.Repaint(100)

	a.Stop()
	a.Stop()
	a.Stop()

	if sched.cancels != 1 {
		t.Errorf("cancels = %d, want 1", sched.cancels)
	}
	if sched.active() != 0 {
		t.Errorf("active timers = %d, want 0", sched.active())
	}
	if a.Timer() != 0 {
		t.Errorf("Timer() = %v after Stop, want 0", a.Timer())
	}
}

func TestDefaultPeriodFallback(t *testing.T) {
	a := New(newFakeScheduler(), DefaultPattern(), 0)
	a.Repaint(1000)
	if got, want := a.Interval(), 4*time.Millisecond; got != want {
		t.Errorf("Interval() = %v, want %v", got, want)
	}
}
