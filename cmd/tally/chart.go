package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/chart"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/config"
)

func chartCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart spending by category",
		Long: `Show every category's share of all active expenses. Expenses of deleted
categories still count toward their category's share.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			totals, err := stores.Expenses.AmountByCategory(ctx)
			if err != nil {
				return fmt.Errorf("failed to total expenses: %w", err)
			}

			return chart.Render(cmd.OutOrStdout(), totals, chart.Options{
				Title:    cli.ChartIcon + " " + chart.DefaultTitle,
				Currency: config.Currency(),
				Width:    width,
			})
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 40, "Width of the chart bars")

	return cmd
}
