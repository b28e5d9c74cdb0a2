package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/service"

	"github.com/mattn/go-sqlite3" // SQLite driver
)

// Stores pairs the category and expense stores that share one data file.
type Stores struct {
	Categories *CategoryStore
	Expenses   *ExpenseStore
	dbPath     string
}

// Open creates both stores for the data file at dbPath. No connection is held;
// every store operation opens and closes its own.
func Open(dbPath string) (*Stores, error) {
	categories, err := NewCategoryStore(dbPath)
	if err != nil {
		return nil, err
	}
	expenses, err := NewExpenseStore(dbPath)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Categories: categories,
		Expenses:   expenses,
		dbPath:     dbPath,
	}, nil
}

// Path returns the data file backing the stores.
func (s *Stores) Path() string {
	return s.dbPath
}

// EnsureSchema creates both relations if they are absent.
func (s *Stores) EnsureSchema(ctx context.Context) error {
	if err := s.Categories.EnsureSchema(ctx); err != nil {
		return err
	}
	return s.Expenses.EnsureSchema(ctx)
}

// connector scopes a single SQLite connection to one store operation.
type connector struct {
	dbPath string
}

func newConnector(dbPath string) (connector, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return connector{}, err
	}
	if dbPath == ":memory:" {
		return connector{}, fmt.Errorf("%w: in-memory databases do not survive per-operation connections", ErrInvalidPath)
	}
	return connector{dbPath: dbPath}, nil
}

// open acquires a fresh handle to the data file.
func (c connector) open(ctx context.Context) (*sql.DB, error) {
	dir := filepath.Dir(c.dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", c.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// withConn runs fn against a connection that is released on every exit path.
// Engine failures are logged once here and returned classified; ErrNotFound
// passes through untouched.
func (c connector) withConn(ctx context.Context, op string, fields common.Fields, fn func(*sql.DB) error) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	db, err := c.open(ctx)
	if err != nil {
		return c.fail(op, err, fields)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("failed to close database", "path", c.dbPath, "error", closeErr)
		}
	}()

	if err := fn(db); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return c.fail(op, err, fields)
	}
	return nil
}

func (c connector) fail(op string, err error, fields common.Fields) error {
	classified := classifyError(op, err)

	logFields := common.Fields{"path": c.dbPath}
	for k, v := range fields {
		logFields[k] = v
	}
	common.LogError(err, "failed to "+op, logFields)

	return classified
}

// classifyError maps engine errors onto the storage result kinds.
func classifyError(op string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s: %w", common.ErrDuplicateEntry, op, err)
	}
	return fmt.Errorf("%w: %s: %w", common.ErrStorage, op, err)
}

var (
	_ service.CategoryStore = (*CategoryStore)(nil)
	_ service.ExpenseStore  = (*ExpenseStore)(nil)
)
