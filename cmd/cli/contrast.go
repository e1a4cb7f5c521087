package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/color"
	"github.com/egandro/chartkit/pkg/config"
)

type contrastResult struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
	Suggested  string  `json:"suggested,omitempty"`
}

func checkContrast(fg, bg string, large bool, target float64) (contrastResult, error) {
	ratio, err := color.ContrastRatio(fg, bg)
	if err != nil {
		return contrastResult{}, err
	}
	res := contrastResult{Ratio: ratio}
	res.Foreground, _ = color.Normalize(fg)
	res.Background, _ = color.Normalize(bg)
	res.AA, _ = color.MeetsWCAGAA(fg, bg, large)
	res.AAA, _ = color.MeetsWCAGAAA(fg, bg, large)

	if ratio < target {
		if res.Suggested, err = color.AutoAdjustContrast(fg, bg, target); err != nil {
			return contrastResult{}, err
		}
	}
	return res, nil
}

func newContrastCmd() *cobra.Command {
	var large bool
	var target float64
	var jsonOutput bool

	defaultCfg := config.Load(config.ConstantConfigFilename)

	cmd := &cobra.Command{
		Use:   "contrast FG [BG]",
		Short: "Check the WCAG contrast of a color pair and suggest a fix",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := needColors(args, 1)
			if err != nil {
				return err
			}
			bg := color.White
			if len(colors) > 1 {
				bg = colors[1]
			}
			res, err := checkContrast(colors[0], bg, large, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, res)
			}

			w := newTable(out)
			fmt.Fprintf(w, "Foreground:\t%s\n", swatch(res.Foreground))
			fmt.Fprintf(w, "Background:\t%s\n", swatch(res.Background))
			fmt.Fprintf(w, "Ratio:\t%.2f:1\n", res.Ratio)
			fmt.Fprintf(w, "AA:\t%s\n", passFail(res.AA))
			fmt.Fprintf(w, "AAA:\t%s\n", passFail(res.AAA))
			if res.Suggested != "" {
				fmt.Fprintf(w, "Suggested:\t%s\n", swatch(res.Suggested))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&large, "large", false, "Use the large-text thresholds")
	cmd.Flags().Float64Var(&target, "target", defaultCfg.ContrastTarget, "Contrast ratio a suggested color must reach")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
