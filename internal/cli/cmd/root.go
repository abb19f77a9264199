package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"plasmaclean/internal/config"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitNoTerminal = 2
	ExitUIError    = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "plasmaclean",
		Short:         "Sweep a bright bar across the screen to clear image retention",
		Long:          "Plasmaclean fills the terminal and sweeps a bright bar across it continuously to work plasma/LCD image retention (burn-in) out of the panel, keeping the system screensaver and idle lock away while it runs. Press any key or click to stop.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare invocation behaves exactly like `plasmaclean run`.
			return runExecute(cmd)
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().BoolP("verbose", "v", false, "Report suppression problems on exit")

	// Bind run flags on root so `plasmaclean` with no subcommand works.
	bindRunFlags(root.Flags())

	// Subcommands
	root.AddCommand(newRunCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindRunFlags(fs *pflag.FlagSet) {
	fs.Int("period-ms", 4000, "Milliseconds for the bar to cross the screen once")
	fs.Float64("bar-fraction", 0.375, "Bar width as a fraction of the screen width")
	fs.Int("suppress-interval-ms", 1000, "Milliseconds between screensaver-suppression nudges")
	fs.Bool("no-suppress", false, "Do not suppress the system screensaver")
	fs.Duration("duration", 0, "Stop after this long (e.g. 30m); 0 runs until a key or click")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	_ = config.Init(root)
	return root.ExecuteContext(ctx)
}
