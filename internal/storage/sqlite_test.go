package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/tally/internal/common"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		path    string
	}{
		{
			name: "file path",
			path: filepath.Join(t.TempDir(), "nested", "dir", "alice.db"),
		},
		{
			name:    "empty path",
			path:    "  ",
			wantErr: ErrEmptyString,
		},
		{
			name:    "in-memory path",
			path:    ":memory:",
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores, err := Open(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, stores.Path())
		})
	}
}

func TestStores_EnsureSchemaCreatesDataFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "bob.db")
	stores, err := Open(dbPath)
	require.NoError(t, err)

	require.NoError(t, stores.EnsureSchema(context.Background()))
	require.NoError(t, stores.EnsureSchema(context.Background()), "schema creation is idempotent")

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "data file exists after schema creation")
}

func TestStores_PersistAcrossInstances(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	first, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.EnsureSchema(ctx))
	cat, err := first.Categories.Add(ctx, "Groceries")
	require.NoError(t, err)

	second, err := Open(dbPath)
	require.NoError(t, err)
	got, err := second.Categories.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Name)
}

func TestWithConn_CanceledContext(t *testing.T) {
	stores := createTestStores(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stores.Expenses.GetAll(ctx)
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestWithConn_NilContext(t *testing.T) {
	stores := createTestStores(t)

	//nolint:staticcheck // exercising the nil guard
	_, err := stores.Categories.GetByID(nil, 1)
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestWithConn_UnopenablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// A regular file where a directory is expected.
	stores, err := Open(filepath.Join(blocker, "tally.db"))
	require.NoError(t, err)

	err = stores.EnsureSchema(context.Background())
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestClassifyError(t *testing.T) {
	constraint := sqlite3.Error{Code: sqlite3.ErrConstraint}
	wrapped := fmt.Errorf("insert: %w", constraint)

	tests := []struct {
		err  error
		want error
		name string
	}{
		{name: "constraint violation", err: wrapped, want: common.ErrDuplicateEntry},
		{name: "busy database", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: common.ErrStorage},
		{name: "plain error", err: errors.New("boom"), want: common.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
		})
	}
}
