//go:build windows

package idle

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	setThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
)

const (
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

type executionStateInhibitor struct{}

// New returns an Inhibitor backed by SetThreadExecutionState.
func New() Inhibitor {
	return executionStateInhibitor{}
}

// Nudge tells the power manager the display and system are in use,
// resetting both idle timers without synthesizing input.
func (executionStateInhibitor) Nudge(context.Context) error {
	r, _, err := setThreadExecutionState.Call(uintptr(esSystemRequired | esDisplayRequired))
	if r == 0 {
		return fmt.Errorf("SetThreadExecutionState: %w", err)
	}
	return nil
}

func (executionStateInhibitor) Available() (string, bool) {
	return "SetThreadExecutionState", true
}
