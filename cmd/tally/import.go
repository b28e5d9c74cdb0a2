package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/importer"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/ofx"
)

func importCmd() *cobra.Command {
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from a CSV or OFX/QFX file",
		Long: `Import expenses from a file.

CSV files need a header row with date, category_id and amount columns and may
add a description column. OFX and QFX statements are filed under the category
given with --category; debits become expenses and credits become refunds.

Every referenced category must exist before anything is written. Rows the
database rejects are reported and skipped.`,
		Example: `  tally import expenses.csv
  tally import statement.qfx --category 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer func() { _ = file.Close() }()

			var batch []model.NewExpense
			switch ext := strings.ToLower(filepath.Ext(path)); ext {
			case ".csv":
				batch, err = importer.ReadCSV(file)
			case ".ofx", ".qfx":
				if categoryID <= 0 {
					return fmt.Errorf("%w: --category is required for %s files", common.ErrInvalidInput, ext)
				}
				var entries []ofx.Entry
				entries, err = ofx.NewParser().ParseFile(ctx, file)
				batch = importer.FromOFX(entries, categoryID)
			default:
				return fmt.Errorf("%w: unsupported file type %q (use .csv, .ofx or .qfx)", common.ErrInvalidInput, ext)
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			if len(batch) == 0 {
				printInfo(cmd.OutOrStdout(), "No expenses found in %s.", path)
				return nil
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			result, err := importer.New(stores.Categories, stores.Expenses, cmd.ErrOrStderr()).Import(ctx, batch)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Imported %d of %d expenses", len(result.Added), len(batch))
			for _, f := range result.Failed {
				printWarning(cmd.OutOrStdout(), "Entry %d (%s, %s) failed: %v",
					f.Index+1, f.Expense.Date, cli.FormatAmount(f.Expense.Amount, ""), f.Err)
			}
			if len(result.Failed) > 0 {
				return fmt.Errorf("%d of %d expenses could not be imported", len(result.Failed), len(batch))
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "Category for OFX/QFX entries")

	return cmd
}
