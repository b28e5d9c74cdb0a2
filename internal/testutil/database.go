// Package testutil provides test utilities for the tally project: temporary
// data files with seeded categories and expenses, and mock stores.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Stores     *storage.Stores
	t          *testing.T
	categories map[string]model.Category
	Path       string
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup func(context.Context, *storage.Stores) error
	Categories  []string
	Expenses    []SeedExpense
	SkipSchema  bool
}

// SeedExpense references its category by name so fixtures stay readable.
type SeedExpense struct {
	Category    string
	Date        string
	Description string
	Amount      float64
}

// SetupTestDB creates stores over a temporary data file seeded with the given
// category names.
//
// Example:
//
//	db := testutil.SetupTestDB(t, "Food", "Rent")
//	food := db.MustGetCategory("Food")
func SetupTestDB(t *testing.T, categories ...string) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Categories: categories})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tally-test.db")
	stores, err := storage.Open(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	ctx := context.Background()

	if !opts.SkipSchema {
		if err := stores.EnsureSchema(ctx); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	db := &TestDB{
		Stores:     stores,
		Path:       path,
		categories: make(map[string]model.Category),
		t:          t,
	}

	for _, name := range opts.Categories {
		cat, err := stores.Categories.Add(ctx, name)
		if err != nil {
			t.Fatalf("failed to seed category %q: %v", name, err)
		}
		db.categories[name] = *cat
	}

	for _, e := range opts.Expenses {
		cat := db.MustGetCategory(e.Category)
		if _, err := stores.Expenses.Add(ctx, model.NewExpense{
			CategoryID:  cat.ID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
		}); err != nil {
			t.Fatalf("failed to seed expense %+v: %v", e, err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, stores); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}

// MustGetCategory returns the seeded category with the given name or fails the test.
func (db *TestDB) MustGetCategory(name string) model.Category {
	db.t.Helper()
	cat, ok := db.categories[name]
	if !ok {
		db.t.Fatalf("category %q was not seeded", name)
	}
	return cat
}
