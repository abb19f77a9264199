package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"plasmaclean/internal/cli"
	"plasmaclean/internal/model"
	"plasmaclean/internal/ui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "run",
		Short:         "Run the sweep until a key press or mouse click",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExecute(cmd)
		},
	}
	bindRunFlags(cmd.Flags())
	return cmd
}

func assembleOptions(cmd *cobra.Command) (model.Options, error) {
	opts := model.Default()

	// Precedence: flag > env > default. Viper carries the env layer.
	periodMS := intSetting(cmd, "period-ms", 4000)
	suppressMS := intSetting(cmd, "suppress-interval-ms", 1000)

	opts.Period = time.Duration(periodMS) * time.Millisecond
	opts.SuppressInterval = time.Duration(suppressMS) * time.Millisecond
	opts.BarFraction = floatSetting(cmd, "bar-fraction", model.DefaultBarFraction)
	opts.NoSuppress = boolSetting(cmd, "no-suppress")
	opts.Duration = durationSetting(cmd, "duration")
	// Bound to the root persistent flag in config.Init, so this resolves
	// flag > env > default.
	opts.Verbose = viper.GetBool("verbose")

	if err := cli.Validate(opts); err != nil {
		return model.Options{}, err
	}
	return opts, nil
}

func runExecute(cmd *cobra.Command) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	if !isTerminal() {
		return &ExitError{Code: ExitNoTerminal, Err: errors.New("stdout is not a terminal; plasmaclean needs a full-screen terminal to draw on")}
	}

	if err := ui.Run(cmd.Context(), opts); err != nil {
		return &ExitError{Code: ExitUIError, Err: err}
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Flag readers that fall through to the Viper env layer when the flag
// was not set on the command line. Viper's env key replacer (wired in
// config.Init) maps the flag name to PLASMACLEAN_* form.
func intSetting(cmd *cobra.Command, name string, def int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	if viper.IsSet(name) {
		return viper.GetInt(name)
	}
	return def
}

func floatSetting(cmd *cobra.Command, name string, def float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	if viper.IsSet(name) {
		return viper.GetFloat64(name)
	}
	return def
}

func durationSetting(cmd *cobra.Command, name string) time.Duration {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetDuration(name)
		return v
	}
	if viper.IsSet(name) {
		return viper.GetDuration(name)
	}
	return 0
}

func boolSetting(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return viper.GetBool(name)
}
