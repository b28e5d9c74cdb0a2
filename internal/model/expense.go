// Package model holds the entities persisted by the expense stores.
package model

// Expense is the raw stored row for a single dated transaction.
type Expense struct {
	Date        string
	Description string
	ID          int64
	CategoryID  int64
	Amount      float64
	IsDeleted   bool
}

// NewExpense carries the caller-validated fields for an insert.
type NewExpense struct {
	Date        string
	Description string
	CategoryID  int64
	Amount      float64
}

// ExpenseView is an expense joined to the name of its category.
type ExpenseView struct {
	Date         string
	CategoryName string
	Description  string
	ID           int64
	CategoryID   int64
	Amount       float64
}

// CategoryTotals maps a category name to the summed amount of its active expenses.
type CategoryTotals map[string]float64

// Total returns the sum of all buckets.
func (t CategoryTotals) Total() float64 {
	var sum float64
	for _, v := range t {
		sum += v
	}
	return sum
}
