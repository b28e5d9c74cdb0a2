package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Veraticus/tally/internal/model"
)

// WriteCategories writes categories as an aligned table.
func WriteCategories(w io.Writer, categories []model.Category) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("ID"), HeaderStyle.Render("Name"))
	fmt.Fprintf(tw, "%s\t%s\n", SubtleStyle.Render("──"), SubtleStyle.Render("────"))
	for _, cat := range categories {
		fmt.Fprintf(tw, "%d\t%s\n", cat.ID, cat.Name)
	}

	return tw.Flush()
}

// WriteExpenses writes joined expense rows as an aligned table with a total line.
func WriteExpenses(w io.Writer, expenses []model.ExpenseView, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Date"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Amount"),
		HeaderStyle.Render("Description"))

	var total float64
	for _, e := range expenses {
		total += e.Amount
		desc := e.Description
		if desc == "" {
			desc = SubtleStyle.Render("-")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", e.ID, e.Date, e.CategoryName, FormatAmount(e.Amount, currency), desc)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s %s\n", BoldStyle.Render("Total:"), FormatAmount(total, currency))
	return err
}

// WriteExpense writes a single stored expense.
func WriteExpense(w io.Writer, e model.Expense, currency string) error {
	desc := e.Description
	if desc == "" {
		desc = "-"
	}
	_, err := fmt.Fprintf(w, "%s %d\n%s %d\n%s %s\n%s %s\n%s %s\n",
		BoldStyle.Render("ID:         "), e.ID,
		BoldStyle.Render("Category:   "), e.CategoryID,
		BoldStyle.Render("Date:       "), e.Date,
		BoldStyle.Render("Amount:     "), FormatAmount(e.Amount, currency),
		BoldStyle.Render("Description:"), desc)
	return err
}

// FormatAmount renders an amount with two decimals followed by the currency symbol.
func FormatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%.2f%s", amount, currency)
}
