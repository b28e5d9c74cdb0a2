package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/model"
)

// now is the reference time for natural-language dates.
var now = time.Now

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense", "exp"},
		Short:   "Record and review expenses",
		Long:    `Add, list, show, and delete dated expenses.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(showExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		categoryID  int64
		amount      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		Long: `Add an expense to an existing category.

The date is YYYY-MM-DD or a phrase such as "today", "yesterday" or
"last friday". Negative amounts record refunds.`,
		Example: `  tally expenses add --category 1 --amount 12.50 --date 2024-07-24 --description lunch
  tally expenses add -c 1 -a 4.20 -d yesterday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if categoryID <= 0 {
				return fmt.Errorf("%w: --category must be a positive ID", common.ErrInvalidInput)
			}
			value, err := cli.ParseAmount(amount)
			if err != nil {
				return err
			}
			day, err := cli.ParseDate(date, now())
			if err != nil {
				return err
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			if _, err := stores.Categories.GetByID(ctx, categoryID); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("Category %d does not exist", categoryID), err)
				}
				return fmt.Errorf("failed to check category: %w", err)
			}

			expense, err := stores.Expenses.Add(ctx, model.NewExpense{
				CategoryID:  categoryID,
				Amount:      value,
				Date:        day,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Added expense %d: %s on %s",
				expense.ID, cli.FormatAmount(expense.Amount, config.Currency()), expense.Date)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "Category ID (required)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "today", "Date of the expense")
	cmd.Flags().StringVar(&description, "description", "", "What the money was spent on")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		from       string
		to         string
		categoryID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long: `List active expenses ordered by date.

Use --from and --to together for an inclusive date range, and --category
to restrict the listing to one category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if (from == "") != (to == "") {
				return fmt.Errorf("%w: --from and --to must be given together", common.ErrInvalidInput)
			}

			var start, end string
			if from != "" {
				var err error
				if start, err = cli.ParseDate(from, now()); err != nil {
					return err
				}
				if end, err = cli.ParseDate(to, now()); err != nil {
					return err
				}
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			var views []model.ExpenseView
			switch {
			case categoryID > 0:
				views, err = stores.Expenses.GetByCategory(ctx, categoryID)
				if start != "" {
					views = withinDates(views, start, end)
				}
			case start != "":
				views, err = stores.Expenses.GetByDateRange(ctx, start, end)
			default:
				views, err = stores.Expenses.GetAll(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			if len(views) == 0 {
				printInfo(cmd.OutOrStdout(), "No expenses found.")
				return nil
			}

			title := "Expenses"
			if start != "" {
				title = fmt.Sprintf("Expenses from %s to %s", start, end)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle(title))
			return cli.WriteExpenses(cmd.OutOrStdout(), views, config.Currency())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date of the range (inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Last date of the range (inclusive)")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "Only list expenses of this category")

	return cmd
}

// withinDates keeps views dated from..to inclusive. YYYY-MM-DD strings order
// the same as the dates they name.
func withinDates(views []model.ExpenseView, from, to string) []model.ExpenseView {
	kept := make([]model.ExpenseView, 0, len(views))
	for _, v := range views {
		if v.Date >= from && v.Date <= to {
			kept = append(kept, v)
		}
	}
	return kept
}

func showExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := cli.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense ID: %w", err)
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			expense, err := stores.Expenses.GetByID(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				printInfo(cmd.OutOrStdout(), "Expense %d not found.", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get expense: %w", err)
			}

			return cli.WriteExpense(cmd.OutOrStdout(), *expense, config.Currency())
		},
	}
}

func deleteExpenseCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := cli.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense ID: %w", err)
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			if !force {
				ok, err := confirm(fmt.Sprintf("Delete expense %d?", id))
				if err != nil {
					return err
				}
				if !ok {
					printInfo(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}

			if _, err := stores.Expenses.SoftDelete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Deleted expense %d", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
