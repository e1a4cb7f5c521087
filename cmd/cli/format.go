package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/egandro/chartkit/pkg/config"
	"github.com/egandro/chartkit/pkg/format"
)

func newFormatCmd() *cobra.Command {
	defaultCfg := config.Load(config.ConstantConfigFilename)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format numbers, dates and labels for display",
	}
	cmd.AddCommand(newFormatNumberCmd(defaultCfg))
	cmd.AddCommand(newFormatCurrencyCmd(defaultCfg))
	cmd.AddCommand(newFormatPercentCmd())
	cmd.AddCommand(newFormatDateCmd(defaultCfg))
	cmd.AddCommand(newTruncateCmd())
	return cmd
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

func newFormatNumberCmd(cfg *config.Config) *cobra.Command {
	opts := format.DefaultSmartOptions()

	cmd := &cobra.Command{
		Use:   "number VALUE",
		Short: "Pick the most readable rendering of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatSmartNumber(v, opts))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Locale, "locale", cfg.Locale, "Locale (BCP 47)")
	cmd.Flags().IntVarP(&opts.Decimals, "decimals", "d", opts.Decimals, "Maximum fraction digits")
	cmd.Flags().BoolVar(&opts.NoAbbreviate, "no-abbreviate", false, "Never use K/M/B/T suffixes")
	return cmd
}

func newFormatCurrencyCmd(cfg *config.Config) *cobra.Command {
	opts := format.CurrencyOptions{}

	cmd := &cobra.Command{
		Use:   "currency AMOUNT",
		Short: "Format a monetary amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			s, err := format.FormatCurrency(v, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Locale, "locale", cfg.Locale, "Locale (BCP 47)")
	cmd.Flags().StringVar(&opts.Currency, "currency", cfg.Currency, "ISO 4217 currency code")
	return cmd
}

func newFormatPercentCmd() *cobra.Command {
	var precision int
	var whole bool

	cmd := &cobra.Command{
		Use:   "percent VALUE",
		Short: "Format a ratio as a percentage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatPercentage(v, precision, !whole))
			return nil
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 0, "Fraction digits")
	cmd.Flags().BoolVar(&whole, "whole", false, "VALUE already is a percentage (42 instead of 0.42)")
	return cmd
}

func newFormatDateCmd(cfg *config.Config) *cobra.Command {
	var style string
	var locale string

	cmd := &cobra.Command{
		Use:   "date [RFC3339]",
		Short: "Format a timestamp (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := format.ParseDateStyle(style)
			if err != nil {
				return err
			}
			t := time.Now()
			if len(args) == 1 {
				if t, err = time.Parse(time.RFC3339, args[0]); err != nil {
					return fmt.Errorf("invalid timestamp: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatDate(t, ds, locale))
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", string(format.DateMedium), "short, medium, long or time")
	cmd.Flags().StringVar(&locale, "locale", cfg.Locale, "Locale (BCP 47)")
	return cmd
}

func newTruncateCmd() *cobra.Command {
	var maxLength int

	cmd := &cobra.Command{
		Use:   "truncate TEXT",
		Short: "Shorten a label to fit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), format.TruncateText(args[0], maxLength))
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxLength, "max", "m", 20, "Maximum length in characters")
	return cmd
}
