package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// Joined reads filter only on the expense's own flag, so expenses of a
// soft-deleted category stay visible.
const expenseViewSelect = `
	SELECT E.expense_id, E.date, C.category_id, C.category_name, E.description, E.amount
	FROM Expenses E
	JOIN Categories C ON C.category_id = E.category_id`

// ExpenseStore persists expenses in the Expenses relation.
type ExpenseStore struct {
	connector
}

// NewExpenseStore creates an expense store for the data file at dbPath.
func NewExpenseStore(dbPath string) (*ExpenseStore, error) {
	c, err := newConnector(dbPath)
	if err != nil {
		return nil, err
	}
	return &ExpenseStore{connector: c}, nil
}

// EnsureSchema creates the Expenses relation if it does not exist.
func (s *ExpenseStore) EnsureSchema(ctx context.Context) error {
	return s.withConn(ctx, "create expenses table", nil, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, createExpensesTable)
		return err
	})
}

// Add inserts an active expense. The category reference and date format are
// expected to be validated by the caller.
func (s *ExpenseStore) Add(ctx context.Context, in model.NewExpense) (*model.Expense, error) {
	var expense *model.Expense

	fields := common.Fields{"category_id": in.CategoryID, "amount": in.Amount, "date": in.Date}
	err := s.withConn(ctx, "add expense", fields, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `
			INSERT INTO Expenses (category_id, amount, date, description)
			VALUES (?, ?, ?, ?)`,
			in.CategoryID, in.Amount, in.Date, in.Description)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get expense ID: %w", err)
		}

		expense = &model.Expense{
			ID:          id,
			CategoryID:  in.CategoryID,
			Amount:      in.Amount,
			Date:        in.Date,
			Description: in.Description,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LogInfo("created expense", common.Fields{"id": expense.ID, "amount": expense.Amount})
	return expense, nil
}

// GetAll returns every active expense ordered by date.
func (s *ExpenseStore) GetAll(ctx context.Context) ([]model.ExpenseView, error) {
	return s.queryViews(ctx, "query expenses", nil,
		expenseViewSelect+`
		WHERE E.is_deleted = 0
		ORDER BY E.date, E.expense_id`)
}

// GetByDateRange returns active expenses dated from..to inclusive. Dates
// compare as YYYY-MM-DD strings.
func (s *ExpenseStore) GetByDateRange(ctx context.Context, from, to string) ([]model.ExpenseView, error) {
	return s.queryViews(ctx, "query expenses by date", common.Fields{"from": from, "to": to},
		expenseViewSelect+`
		WHERE E.date BETWEEN ? AND ? AND E.is_deleted = 0
		ORDER BY E.date, E.expense_id`,
		from, to)
}

// GetByCategory returns active expenses of one category ordered by date.
func (s *ExpenseStore) GetByCategory(ctx context.Context, categoryID int64) ([]model.ExpenseView, error) {
	return s.queryViews(ctx, "query expenses by category", common.Fields{"category_id": categoryID},
		expenseViewSelect+`
		WHERE C.category_id = ? AND E.is_deleted = 0
		ORDER BY E.date, E.expense_id`,
		categoryID)
}

func (s *ExpenseStore) queryViews(ctx context.Context, op string, fields common.Fields, query string, args ...any) ([]model.ExpenseView, error) {
	expenses := []model.ExpenseView{}

	err := s.withConn(ctx, op, fields, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				e           model.ExpenseView
				description sql.NullString
			)
			if err := rows.Scan(&e.ID, &e.Date, &e.CategoryID, &e.CategoryName, &description, &e.Amount); err != nil {
				return fmt.Errorf("failed to scan expense: %w", err)
			}
			e.Description = description.String
			expenses = append(expenses, e)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	common.LogDebug("retrieved expenses", common.Fields{"op": op, "count": len(expenses)})
	return expenses, nil
}

// GetByID returns the raw row of an active expense or common.ErrNotFound.
func (s *ExpenseStore) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	var (
		e           model.Expense
		categoryID  sql.NullInt64
		description sql.NullString
	)

	err := s.withConn(ctx, "query expense", common.Fields{"id": id}, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx, `
			SELECT expense_id, category_id, amount, date, description, is_deleted
			FROM Expenses
			WHERE expense_id = ? AND is_deleted = 0`, id).
			Scan(&e.ID, &categoryID, &e.Amount, &e.Date, &description, &e.IsDeleted)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("expense %d: %w", id, common.ErrNotFound)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	e.CategoryID = categoryID.Int64
	e.Description = description.String
	return &e, nil
}

// SoftDelete flags the expense as deleted and returns its id. The id is
// returned even when no row matched.
func (s *ExpenseStore) SoftDelete(ctx context.Context, id int64) (int64, error) {
	err := s.withConn(ctx, "delete expense", common.Fields{"id": id}, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `UPDATE Expenses SET is_deleted = 1 WHERE expense_id = ?`, id)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			common.LogDebug("soft delete matched no expense", common.Fields{"id": id})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	common.LogInfo("soft deleted expense", common.Fields{"id": id})
	return id, nil
}

// AmountByCategory sums active expenses per category name. Categories sharing
// a name share a bucket.
func (s *ExpenseStore) AmountByCategory(ctx context.Context) (model.CategoryTotals, error) {
	totals := model.CategoryTotals{}

	err := s.withConn(ctx, "sum expenses by category", nil, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `
			SELECT C.category_name, SUM(E.amount) AS total_amount
			FROM Expenses E
			JOIN Categories C ON C.category_id = E.category_id
			WHERE E.is_deleted = 0
			GROUP BY C.category_name`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				name  string
				total float64
			)
			if err := rows.Scan(&name, &total); err != nil {
				return fmt.Errorf("failed to scan category total: %w", err)
			}
			totals[name] = total
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}
