package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"plasmaclean/internal/idle"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose the terminal and screensaver-suppression setup",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if isTerminal() {
				w, h, err := term.GetSize(int(os.Stdout.Fd()))
				if err != nil {
					fmt.Fprintf(out, "Terminal:    yes (size unavailable: %v)\n", err)
				} else {
					fmt.Fprintf(out, "Terminal:    yes, %dx%d\n", w, h)
				}
			} else {
				fmt.Fprintln(out, "Terminal:    no (run plasmaclean inside a terminal)")
			}

			fmt.Fprintf(out, "Colors:      %s\n", profileName(lipgloss.ColorProfile()))

			mech, ok := idle.New().Available()
			if ok {
				fmt.Fprintf(out, "Suppression: %s\n", mech)
			} else {
				fmt.Fprintln(out, "Suppression: unavailable; the screensaver may engage (use --no-suppress to silence this)")
			}
			return nil
		},
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "monochrome"
	}
}
