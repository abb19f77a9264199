//go:build linux

package idle

import (
	"context"
	"fmt"
	"os/exec"
)

// resetTools are tried in order; the first one found in PATH wins.
// xdg-screensaver covers most desktop environments, xset plain X11.
var resetTools = [][]string{
	{"xdg-screensaver", "reset"},
	{"xset", "s", "reset"},
}

type commandInhibitor struct {
	path string
	args []string
	name string
}

// New returns an Inhibitor for this system. When no screensaver-reset
// tool is installed it returns Noop so the sweep still runs.
func New() Inhibitor {
	for _, tool := range resetTools {
		if p, err := exec.LookPath(tool[0]); err == nil {
			return &commandInhibitor{path: p, args: tool[1:], name: tool[0]}
		}
	}
	return Noop{}
}

func (c *commandInhibitor) Nudge(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.path, c.args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", c.name, err, firstLine(out))
	}
	return nil
}

func (c *commandInhibitor) Available() (string, bool) {
	return c.name, true
}

func firstLine(b []byte) string {
	for i, ch := range b {
		if ch == '\n' {
			return string(b[:i])
		}
	}
	return string(b)
}
