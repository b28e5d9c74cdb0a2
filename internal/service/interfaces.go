// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/tally/internal/model"
)

// CategoryStore defines the contract for category persistence.
type CategoryStore interface {
	EnsureSchema(ctx context.Context) error
	Add(ctx context.Context, name string) (*model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
}

// ExpenseStore defines the contract for expense persistence and aggregation.
type ExpenseStore interface {
	EnsureSchema(ctx context.Context) error
	Add(ctx context.Context, expense model.NewExpense) (*model.Expense, error)
	GetAll(ctx context.Context) ([]model.ExpenseView, error)
	GetByID(ctx context.Context, id int64) (*model.Expense, error)
	GetByDateRange(ctx context.Context, from, to string) ([]model.ExpenseView, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]model.ExpenseView, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
	AmountByCategory(ctx context.Context) (model.CategoryTotals, error)
}
