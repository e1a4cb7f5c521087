package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/color"
)

type auditResult struct {
	Background string                 `json:"background"`
	Contrast   []color.ContrastAudit  `json:"contrast"`
	ColorBlind color.ColorBlindReport `json:"colorblind"`
}

func runAudit(colors []string, bg string) (auditResult, error) {
	contrast, err := color.AuditContrast(colors, bg)
	if err != nil {
		return auditResult{}, err
	}
	report, err := color.CheckColorBlindAccessibility(colors)
	if err != nil {
		return auditResult{}, err
	}
	norm, _ := color.Normalize(bg)
	return auditResult{Background: norm, Contrast: contrast, ColorBlind: report}, nil
}

func printAudit(w io.Writer, res auditResult) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Background: %s\n\n", swatch(res.Background))
	fmt.Fprintln(tw, "SWATCH\tRATIO\tAA\tAA LARGE\tAAA")
	for _, a := range res.Contrast {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\t%s\n", swatch(a.Color), a.Ratio, passFail(a.AA), passFail(a.AALarge), passFail(a.AAA))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Protanopia:\t%s\n", passFail(res.ColorBlind.Protanopia))
	fmt.Fprintf(tw, "Deuteranopia:\t%s\n", passFail(res.ColorBlind.Deuteranopia))
	fmt.Fprintf(tw, "Tritanopia:\t%s\n", passFail(res.ColorBlind.Tritanopia))
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, issue := range res.ColorBlind.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
	return nil
}

func newAuditCmd() *cobra.Command {
	var bg string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "audit COLOR...",
		Short: "Check colors for contrast and color-blind distinguishability",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			background, err := needColors([]string{bg}, 1)
			if err != nil {
				return err
			}
			res, err := runAudit(splitColors(args), background[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}
			return printAudit(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&bg, "bg", color.White, "Background color")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.AddCommand(newSimulateCmd())
	return cmd
}

func newSimulateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "simulate COLOR...",
		Short: "Show how colors appear under each color-vision deficiency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := splitColors(args)
			kinds := color.Deficiencies()
			sim := make(map[color.Deficiency][]string, len(kinds))
			for _, kind := range kinds {
				for _, c := range colors {
					s, err := color.SimulateColorBlindness(c, kind)
					if err != nil {
						return err
					}
					sim[kind] = append(sim[kind], s)
				}
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), sim)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprint(tw, "COLOR")
			for _, kind := range kinds {
				fmt.Fprintf(tw, "\t%s", kind)
			}
			fmt.Fprintln(tw)
			for i, c := range colors {
				fmt.Fprint(tw, swatch(c))
				for _, kind := range kinds {
					fmt.Fprintf(tw, "\t%s", swatch(sim[kind][i]))
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
