package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/tui"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Long:  `Browse every category and expense action from a keyboard-driven menu.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			return tui.Run(ctx,
				tui.WithStores(stores.Categories, stores.Expenses),
				tui.WithCurrency(config.Currency()),
			)
		},
	}
}
