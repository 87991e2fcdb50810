package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/vitrine/internal/app"
	"github.com/five82/vitrine/internal/logtail"
)

func newLogsCmd(root *rootFlags) *cobra.Command {
	var (
		lines    int
		follow   bool
		interval time.Duration
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.ResolveLogPath(root.logFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color := !noColor && out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))

			recent, err := logtail.Read(path, lines)
			if err != nil {
				return err
			}
			if err := logtail.Format(out, recent, color); err != nil {
				return err
			}
			if !follow {
				return nil
			}
			return app.Follow(cmd.Context(), path, interval, out, color)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of trailing entries to print (0 for all)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep printing new entries")
	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond, "poll interval when following")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
