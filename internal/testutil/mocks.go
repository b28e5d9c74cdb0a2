package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/service"
)

// MockCategoryStore is a testify mock of service.CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

var _ service.CategoryStore = (*MockCategoryStore)(nil)

func (m *MockCategoryStore) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCategoryStore) Add(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if cat, ok := args.Get(0).(*model.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if cats, ok := args.Get(0).([]model.Category); ok {
		return cats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if cat, ok := args.Get(0).(*model.Category); ok {
		return cat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryStore) SoftDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockExpenseStore is a testify mock of service.ExpenseStore.
type MockExpenseStore struct {
	mock.Mock
}

var _ service.ExpenseStore = (*MockExpenseStore)(nil)

func (m *MockExpenseStore) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockExpenseStore) Add(ctx context.Context, expense model.NewExpense) (*model.Expense, error) {
	args := m.Called(ctx, expense)
	if e, ok := args.Get(0).(*model.Expense); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseStore) GetAll(ctx context.Context) ([]model.ExpenseView, error) {
	args := m.Called(ctx)
	return views(args)
}

func (m *MockExpenseStore) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*model.Expense); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseStore) GetByDateRange(ctx context.Context, from, to string) ([]model.ExpenseView, error) {
	args := m.Called(ctx, from, to)
	return views(args)
}

func (m *MockExpenseStore) GetByCategory(ctx context.Context, categoryID int64) ([]model.ExpenseView, error) {
	args := m.Called(ctx, categoryID)
	return views(args)
}

func (m *MockExpenseStore) SoftDelete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseStore) AmountByCategory(ctx context.Context) (model.CategoryTotals, error) {
	args := m.Called(ctx)
	if totals, ok := args.Get(0).(model.CategoryTotals); ok {
		return totals, args.Error(1)
	}
	return nil, args.Error(1)
}

func views(args mock.Arguments) ([]model.ExpenseView, error) {
	if v, ok := args.Get(0).([]model.ExpenseView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
