package main

import (
	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/tokens"
)

func newTokensCmd() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Export the shared design tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tokens.ParseFormat(outFormat)
			if err != nil {
				return err
			}
			return tokens.Encode(cmd.OutOrStdout(), tokens.Take(), f)
		},
	}
	cmd.Flags().StringVarP(&outFormat, "format", "f", string(tokens.YAML), "json or yaml")
	return cmd
}
