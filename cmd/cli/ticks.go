package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/format"
	"github.com/egandro/chartkit/pkg/ticks"
)

type ticksResult struct {
	Ticks    []float64 `json:"ticks"`
	Labels   []string  `json:"labels"`
	Step     float64   `json:"step"`
	Rotation int       `json:"rotation"`
}

func computeTicks(minV, maxV float64, count int, length float64, locale string) (ticksResult, error) {
	values := ticks.GenerateNiceTicks(minV, maxV, count)
	if values == nil {
		return ticksResult{}, fmt.Errorf("tick range must be finite, got [%v, %v]", minV, maxV)
	}
	opts := format.DefaultSmartOptions()
	opts.Locale = locale
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = format.FormatSmartNumber(v, opts)
	}
	return ticksResult{
		Ticks:    values,
		Labels:   labels,
		Step:     ticks.NiceStep(minV, maxV, count),
		Rotation: ticks.RecommendedTickRotation(labels, length, len(values)),
	}, nil
}

func newTicksCmd() *cobra.Command {
	var count int
	var length float64
	var vertical bool
	var locale string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ticks MIN MAX",
		Short: "Compute nice axis ticks for a data range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minV, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid MIN: %w", err)
			}
			maxV, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid MAX: %w", err)
			}

			orientation := ticks.Horizontal
			if vertical {
				orientation = ticks.Vertical
			}
			if count <= 0 {
				count = ticks.CalculateOptimalTickCount(length, orientation)
			}

			res, err := computeTicks(minV, maxV, count, length, locale)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Step:\t%v\n", res.Step)
			fmt.Fprintf(w, "Rotation:\t%d°\n", res.Rotation)
			fmt.Fprintln(w, "\nVALUE\tLABEL")
			for i, v := range res.Ticks {
				fmt.Fprintf(w, "%v\t%s\n", v, res.Labels[i])
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Desired tick count (default: derived from --length)")
	cmd.Flags().Float64Var(&length, "length", 400, "Axis length in pixels")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Axis runs vertically")
	cmd.Flags().StringVar(&locale, "locale", format.DefaultLocale, "Locale for tick labels")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
