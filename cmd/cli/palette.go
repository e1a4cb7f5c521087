package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/color"
	"github.com/egandro/chartkit/pkg/svg"
)

type paletteFlags struct {
	dark       bool
	jsonOutput bool
	svgFile    string
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dark, "dark", false, "Convert the palette for dark backgrounds")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&f.svgFile, "svg", "", "Also write a preview sheet to this SVG file")
}

func (f *paletteFlags) print(w io.Writer, title string, colors []string) error {
	if f.dark {
		var err error
		if colors, err = color.GenerateDarkModePalette(colors); err != nil {
			return err
		}
	}
	if f.svgFile != "" {
		if err := writeSheet(f.svgFile, title, colors, !f.dark); err != nil {
			return err
		}
	}
	if f.jsonOutput {
		return printJSON(w, colors)
	}
	return printPalette(w, colors)
}

// writeSheet renders the palette with its color-blind simulations, and its
// dark-mode variants when withDark is set.
func writeSheet(path, title string, colors []string, withDark bool) error {
	sheet, err := svg.PaletteSheet(title, colors, true, withDark)
	if err != nil {
		return err
	}
	out, err := sheet.Generate()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

func printPalette(w io.Writer, colors []string) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tSWATCH\tHEX")
	for i, c := range colors {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, swatch(c), c)
	}
	return tw.Flush()
}

func newPaletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate chart color palettes",
	}
	cmd.AddCommand(newCategoricalCmd())
	cmd.AddCommand(newSequentialCmd())
	cmd.AddCommand(newDivergingCmd())
	cmd.AddCommand(newDarkCmd())
	return cmd
}

func newCategoricalCmd() *cobra.Command {
	var flags paletteFlags
	var count int

	cmd := &cobra.Command{
		Use:   "categorical",
		Short: "Distinct colors for unrelated series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := color.GenerateCategoricalPalette(count)
			if err != nil {
				return err
			}
			return flags.print(cmd.OutOrStdout(), "Categorical palette", colors)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 8, "Number of colors (2-12)")
	flags.register(cmd)
	return cmd
}

func newSequentialCmd() *cobra.Command {
	var flags paletteFlags
	var steps int

	cmd := &cobra.Command{
		Use:   "sequential BASE",
		Short: "Light to dark scale around a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := needColors(args, 1)
			if err != nil {
				return err
			}
			colors, err := color.GenerateSequentialScale(c[0], steps)
			if err != nil {
				return err
			}
			return flags.print(cmd.OutOrStdout(), "Sequential scale "+c[0], colors)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "s", 9, "Number of steps")
	flags.register(cmd)
	return cmd
}

func newDivergingCmd() *cobra.Command {
	var flags paletteFlags
	var steps int

	cmd := &cobra.Command{
		Use:   "diverging NEGATIVE POSITIVE",
		Short: "Negative to neutral to positive scale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := needColors(args, 2)
			if err != nil {
				return err
			}
			colors, err := color.GenerateDivergingScale(c[0], c[1], steps)
			if err != nil {
				return err
			}
			return flags.print(cmd.OutOrStdout(), "Diverging scale "+c[0]+" / "+c[1], colors)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "s", 9, "Number of steps (odd)")
	flags.register(cmd)
	return cmd
}

func newDarkCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dark COLOR...",
		Short: "Dark-mode variants of the given colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := color.GenerateDarkModePalette(splitColors(args))
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), colors)
			}
			return printPalette(cmd.OutOrStdout(), colors)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
