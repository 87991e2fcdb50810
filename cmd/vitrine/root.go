package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/vitrine/internal/app"
)

type rootFlags struct {
	showcase   string
	prefs      string
	logFile    string
	logLevel   string
	noAutoPlay bool
}

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("stdout is not a terminal; run vitrine in a terminal or use `vitrine logs`")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "vitrine renders a showcase page with an image carousel in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}
			return app.Run(cmd.Context(), app.Options{
				ShowcasePath: flags.showcase,
				PrefsPath:    flags.prefs,
				LogPath:      flags.logFile,
				LogLevel:     flags.logLevel,
				NoAutoPlay:   flags.noAutoPlay,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.showcase, "config", "c", "", "showcase file (TOML or YAML; defaults to ~/.config/vitrine/showcase.toml or the demo)")
	cmd.PersistentFlags().StringVar(&flags.prefs, "prefs", "", "preferences file (defaults to ~/.config/vitrine/prefs.toml)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file (defaults to ~/.local/state/vitrine/vitrine.log)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.noAutoPlay, "no-autoplay", false, "start with carousel autoplay off")

	cmd.AddCommand(newLogsCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
