// Package importer loads expenses from statement files into the expense store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/ofx"
	"github.com/Veraticus/tally/internal/service"
)

// Failure records an expense the store rejected.
type Failure struct {
	Err     error
	Expense model.NewExpense
	Index   int
}

// Result summarizes an import run.
type Result struct {
	Added  []model.Expense
	Failed []Failure
}

// Importer adds batches of expenses one independent write at a time.
type Importer struct {
	categories service.CategoryStore
	expenses   service.ExpenseStore
	writer     io.Writer
}

// New creates an importer that reports progress to w.
func New(categories service.CategoryStore, expenses service.ExpenseStore, w io.Writer) *Importer {
	if w == nil {
		w = io.Discard
	}
	return &Importer{
		categories: categories,
		expenses:   expenses,
		writer:     w,
	}
}

// Import checks that every referenced category is active and then adds the
// batch in order. A failed add is recorded and the import continues; earlier
// writes are never rolled back.
func (im *Importer) Import(ctx context.Context, batch []model.NewExpense) (*Result, error) {
	if err := im.checkCategories(ctx, batch); err != nil {
		return nil, err
	}

	result := &Result{}
	if len(batch) == 0 {
		return result, nil
	}

	bar := im.newProgressBar(len(batch))
	for i, in := range batch {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("import interrupted after %d expenses: %w", len(result.Added), err)
		}

		added, err := im.expenses.Add(ctx, in)
		if err != nil {
			result.Failed = append(result.Failed, Failure{Index: i, Expense: in, Err: err})
		} else {
			result.Added = append(result.Added, *added)
		}

		if barErr := bar.Add(1); barErr != nil {
			slog.Warn("Failed to update progress bar", "error", barErr)
		}
	}

	common.LogInfo("import finished", common.Fields{"added": len(result.Added), "failed": len(result.Failed)})
	return result, nil
}

func (im *Importer) checkCategories(ctx context.Context, batch []model.NewExpense) error {
	seen := make(map[int64]bool)
	for _, in := range batch {
		if seen[in.CategoryID] {
			continue
		}
		seen[in.CategoryID] = true

		if _, err := im.categories.GetByID(ctx, in.CategoryID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("%w: category %d does not exist", common.ErrInvalidInput, in.CategoryID)
			}
			return fmt.Errorf("failed to check category %d: %w", in.CategoryID, err)
		}
	}
	return nil
}

func (im *Importer) newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(im.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing expenses...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(im.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// FromOFX assigns statement entries to one category.
func FromOFX(entries []ofx.Entry, categoryID int64) []model.NewExpense {
	batch := make([]model.NewExpense, 0, len(entries))
	for _, e := range entries {
		batch = append(batch, model.NewExpense{
			CategoryID:  categoryID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
		})
	}
	return batch
}
