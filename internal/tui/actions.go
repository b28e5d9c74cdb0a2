package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/tally/internal/chart"
	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// field is one value an action prompts for. parse validates the raw input
// and returns the normalized value handed to run.
type field struct {
	parse       func(string) (string, error)
	label       string
	placeholder string
}

type action struct {
	run    func(ctx context.Context, cfg Config, values []string) resultMsg
	title  string
	fields []field
}

func nameField(label string) field {
	return field{
		label:       label,
		placeholder: "Groceries",
		parse: func(s string) (string, error) {
			s = strings.TrimSpace(s)
			if s == "" {
				return "", fmt.Errorf("%w: a name is required", common.ErrInvalidInput)
			}
			return s, nil
		},
	}
}

func idField(label string) field {
	return field{
		label:       label,
		placeholder: "1",
		parse: func(s string) (string, error) {
			id, err := cli.ParseID(s)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(id), nil
		},
	}
}

func amountField() field {
	return field{
		label:       "Amount",
		placeholder: "12.50",
		parse: func(s string) (string, error) {
			amount, err := cli.ParseAmount(s)
			if err != nil {
				return "", err
			}
			return fmt.Sprint(amount), nil
		},
	}
}

func dateField(label string, now func() time.Time) field {
	return field{
		label:       label,
		placeholder: "YYYY-MM-DD or yesterday",
		parse: func(s string) (string, error) {
			return cli.ParseDate(s, now())
		},
	}
}

func optionalField(label string) field {
	return field{
		label: label,
		parse: func(s string) (string, error) {
			return strings.TrimSpace(s), nil
		},
	}
}

// defaultActions lists the menu entries in display order. Quit is appended by the view.
func defaultActions(now func() time.Time) []action {
	return []action{
		{title: "Add category", fields: []field{nameField("Category name")}, run: addCategory},
		{title: "Delete category", fields: []field{idField("Category ID")}, run: deleteCategory},
		{title: "Show category", fields: []field{idField("Category ID")}, run: showCategory},
		{title: "Show categories", run: showCategories},
		{
			title: "Add expense",
			fields: []field{
				idField("Category ID"),
				amountField(),
				dateField("Date", now),
				optionalField("Description"),
			},
			run: addExpense,
		},
		{title: "Delete expense", fields: []field{idField("Expense ID")}, run: deleteExpense},
		{
			title:  "Show expenses from date to date",
			fields: []field{dateField("From", now), dateField("To", now)},
			run:    expensesBetween,
		},
		{title: "Show expenses", run: showExpenses},
		{title: "Show expenses by category", fields: []field{idField("Category ID")}, run: expensesByCategory},
		{title: "Show chart", run: showChart},
	}
}

func failed(err error) resultMsg {
	return resultMsg{err: err}
}

func notice(format string, args ...any) resultMsg {
	return resultMsg{output: fmt.Sprintf(format, args...), notice: true}
}

// values are already normalized by their field parser.
func mustID(s string) int64 {
	id, _ := cli.ParseID(s)
	return id
}

func addCategory(ctx context.Context, cfg Config, values []string) resultMsg {
	cat, err := cfg.Categories.Add(ctx, values[0])
	if err != nil {
		return failed(fmt.Errorf("failed to add category: %w", err))
	}
	return resultMsg{output: fmt.Sprintf("Category %q added with ID %d", cat.Name, cat.ID)}
}

func deleteCategory(ctx context.Context, cfg Config, values []string) resultMsg {
	id, err := cfg.Categories.SoftDelete(ctx, mustID(values[0]))
	if err != nil {
		return failed(fmt.Errorf("failed to delete category: %w", err))
	}
	return resultMsg{output: fmt.Sprintf("Category %d deleted", id)}
}

func showCategory(ctx context.Context, cfg Config, values []string) resultMsg {
	id := mustID(values[0])
	cat, err := cfg.Categories.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return notice("Category %d not found", id)
	}
	if err != nil {
		return failed(fmt.Errorf("failed to get category: %w", err))
	}
	return resultMsg{output: fmt.Sprintf("%d  %s", cat.ID, cat.Name)}
}

func showCategories(ctx context.Context, cfg Config, _ []string) resultMsg {
	cats, err := cfg.Categories.GetAll(ctx)
	if errors.Is(err, common.ErrNotFound) {
		return notice("No categories yet")
	}
	if err != nil {
		return failed(fmt.Errorf("failed to list categories: %w", err))
	}

	var buf bytes.Buffer
	if err := cli.WriteCategories(&buf, cats); err != nil {
		return failed(err)
	}
	return resultMsg{output: buf.String()}
}

func addExpense(ctx context.Context, cfg Config, values []string) resultMsg {
	categoryID := mustID(values[0])
	if _, err := cfg.Categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return notice("Category %d does not exist", categoryID)
		}
		return failed(fmt.Errorf("failed to check category: %w", err))
	}

	amount, _ := cli.ParseAmount(values[1])
	expense, err := cfg.Expenses.Add(ctx, model.NewExpense{
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        values[2],
		Description: values[3],
	})
	if err != nil {
		return failed(fmt.Errorf("failed to add expense: %w", err))
	}
	return resultMsg{output: fmt.Sprintf("Expense %d added: %s on %s",
		expense.ID, cli.FormatAmount(expense.Amount, cfg.Currency), expense.Date)}
}

func deleteExpense(ctx context.Context, cfg Config, values []string) resultMsg {
	id, err := cfg.Expenses.SoftDelete(ctx, mustID(values[0]))
	if err != nil {
		return failed(fmt.Errorf("failed to delete expense: %w", err))
	}
	return resultMsg{output: fmt.Sprintf("Expense %d deleted", id)}
}

func expensesBetween(ctx context.Context, cfg Config, values []string) resultMsg {
	views, err := cfg.Expenses.GetByDateRange(ctx, values[0], values[1])
	if err != nil {
		return failed(fmt.Errorf("failed to list expenses: %w", err))
	}
	return expenseTable(views, cfg.Currency, fmt.Sprintf("No expenses between %s and %s", values[0], values[1]))
}

func showExpenses(ctx context.Context, cfg Config, _ []string) resultMsg {
	views, err := cfg.Expenses.GetAll(ctx)
	if err != nil {
		return failed(fmt.Errorf("failed to list expenses: %w", err))
	}
	return expenseTable(views, cfg.Currency, "No expenses yet")
}

func expensesByCategory(ctx context.Context, cfg Config, values []string) resultMsg {
	id := mustID(values[0])
	views, err := cfg.Expenses.GetByCategory(ctx, id)
	if err != nil {
		return failed(fmt.Errorf("failed to list expenses: %w", err))
	}
	return expenseTable(views, cfg.Currency, fmt.Sprintf("No expenses in category %d", id))
}

func expenseTable(views []model.ExpenseView, currency, empty string) resultMsg {
	if len(views) == 0 {
		return notice("%s", empty)
	}
	var buf bytes.Buffer
	if err := cli.WriteExpenses(&buf, views, currency); err != nil {
		return failed(err)
	}
	return resultMsg{output: buf.String()}
}

func showChart(ctx context.Context, cfg Config, _ []string) resultMsg {
	totals, err := cfg.Expenses.AmountByCategory(ctx)
	if err != nil {
		return failed(fmt.Errorf("failed to total expenses: %w", err))
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, totals, chart.Options{Currency: cfg.Currency, Width: max(cfg.Width-40, 10)}); err != nil {
		return failed(err)
	}
	return resultMsg{output: buf.String()}
}
