package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/vitrine/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a showcase file without starting the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.Load(root.showcase)
			if err != nil {
				return err
			}
			source := sc.Path
			if source == "" {
				source = "built-in demo"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d sections, %d slides)\n",
				source, len(sc.Sections), len(sc.Carousel.Slides))
			return nil
		},
	}
}
