//go:build darwin

package idle

import (
	"context"
	"fmt"
	"os/exec"
)

type caffeinateInhibitor struct {
	path string
}

// New returns an Inhibitor backed by caffeinate, which ships with macOS.
func New() Inhibitor {
	p, err := exec.LookPath("caffeinate")
	if err != nil {
		return Noop{}
	}
	return &caffeinateInhibitor{path: p}
}

// Nudge declares one second of user activity, which resets the display
// sleep and screensaver countdowns.
func (c *caffeinateInhibitor) Nudge(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.path, "-u", "-t", "1")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("caffeinate: %w", err)
	}
	return nil
}

func (c *caffeinateInhibitor) Available() (string, bool) {
	return "caffeinate", true
}
