package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "chartkit",
		Short:        "Chart design tokens: colors, ticks, layout and formats",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newTicksCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newStatusCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
