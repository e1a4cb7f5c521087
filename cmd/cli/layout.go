package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/format"
	"github.com/egandro/chartkit/pkg/layout"
)

func parseInts(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", names[i], err)
		}
		out[i] = v
	}
	return out, nil
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Responsive chart geometry",
	}
	cmd.AddCommand(newMarginsCmd())
	cmd.AddCommand(newGridCmd())
	cmd.AddCommand(newBreakpointCmd())
	cmd.AddCommand(newFitCmd())
	return cmd
}

type marginsResult struct {
	Margins layout.Margins    `json:"margins"`
	Inner   layout.Dimensions `json:"inner"`
}

func newMarginsCmd() *cobra.Command {
	var noXAxis, noYAxis bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "margins WIDTH HEIGHT",
		Short: "Margins and plot area for a chart size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "WIDTH", "HEIGHT")
			if err != nil {
				return err
			}
			m := layout.CalculateChartMargins(v[0], v[1], !noXAxis, !noYAxis)
			res := marginsResult{Margins: m, Inner: layout.CalculateInnerDimensions(v[0], v[1], m)}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "TOP\tRIGHT\tBOTTOM\tLEFT\tINNER")
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%dx%d\n", m.Top, m.Right, m.Bottom, m.Left, res.Inner.Width, res.Inner.Height)
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&noXAxis, "no-x-axis", false, "Chart has no x axis")
	cmd.Flags().BoolVar(&noYAxis, "no-y-axis", false, "Chart has no y axis")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newGridCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "grid CHARTS WIDTH",
		Short: "Dashboard grid for a number of charts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "CHARTS", "WIDTH")
			if err != nil {
				return err
			}
			g := layout.CalculateChartGrid(v[0], v[1])
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), g)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "COLUMNS\tROWS\tCHART\tGAP")
			fmt.Fprintf(w, "%d\t%d\t%dx%d\t%d\n", g.Columns, g.Rows, g.ChartWidth, g.ChartHeight, g.Gap)
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

type breakpointResult struct {
	Breakpoint   layout.Breakpoint `json:"breakpoint"`
	ChartHeight  int               `json:"chart_height"`
	ChartsPerRow int               `json:"charts_per_row"`
	FontSize     int               `json:"font_size"`
	Features     map[string]bool   `json:"features"`
}

func describeWidth(width int) breakpointResult {
	res := breakpointResult{
		Breakpoint:   layout.CurrentBreakpoint(width),
		ChartHeight:  layout.ResponsiveChartHeight(width, ""),
		ChartsPerRow: layout.OptimalChartsPerRow(width, layout.DefaultPreferredChartWidth),
		FontSize:     format.ResponsiveFontSize(width, 14, 0),
		Features:     make(map[string]bool),
	}
	for _, f := range layout.Features() {
		res.Features[f] = layout.SupportsFeature(width, f)
	}
	return res
}

func newBreakpointCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "breakpoint WIDTH",
		Short: "Breakpoint and responsive defaults for a container width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "WIDTH")
			if err != nil {
				return err
			}
			res := describeWidth(v[0])
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "Breakpoint:\t%s\n", res.Breakpoint)
			fmt.Fprintf(w, "Chart height:\t%d\n", res.ChartHeight)
			fmt.Fprintf(w, "Charts per row:\t%d\n", res.ChartsPerRow)
			fmt.Fprintf(w, "Font size:\t%d\n", res.FontSize)

			features := make([]string, 0, len(res.Features))
			for f := range res.Features {
				features = append(features, f)
			}
			sort.Strings(features)
			for _, f := range features {
				fmt.Fprintf(w, "%s:\t%s\n", f, passFail(res.Features[f]))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newFitCmd() *cobra.Command {
	var ratio float64
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "fit WIDTH HEIGHT",
		Short: "Largest chart with the given aspect ratio that fits a container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args, "WIDTH", "HEIGHT")
			if err != nil {
				return err
			}
			d := layout.CalculateChartDimensions(v[0], v[1], ratio)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), d)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", d.Width, d.Height)
			return nil
		},
	}
	cmd.Flags().Float64Var(&ratio, "ratio", 16.0/9.0, "Aspect ratio (width/height)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
