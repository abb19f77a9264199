package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"plasmaclean/internal/idle"
	"plasmaclean/internal/model"
)

// Run sweeps the bar across the terminal until a key press, a mouse
// click, or (when configured) the session duration elapses.
func Run(ctx context.Context, opts model.Options) error {
	inhibitor := idle.Inhibitor(idle.Noop{})
	if !opts.NoSuppress {
		inhibitor = idle.New()
	}
	m := NewModel(ctx, opts, inhibitor)
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			// Interrupted by signal: treated as a normal close.
			return nil
		}
		return fmt.Errorf("display loop: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.suppressErr != nil && opts.Verbose {
		fmt.Fprintf(os.Stderr, "warning: screensaver suppression failed: %v\n", fm.suppressErr)
	}
	return nil
}
