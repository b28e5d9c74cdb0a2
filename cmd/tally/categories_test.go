package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
)

func TestCategoriesLifecycle(t *testing.T) {
	dbPath := setupCLI(t)

	out := mustExecute(t, dbPath, "categories", "list")
	assert.Contains(t, out, "No categories found")

	out = mustExecute(t, dbPath, "categories", "add", "Food")
	assert.Contains(t, out, `Created category "Food" (ID: 1)`)

	out = mustExecute(t, dbPath, "categories", "add", "Eating", "out")
	assert.Contains(t, out, `Created category "Eating out" (ID: 2)`)

	out = mustExecute(t, dbPath, "categories", "list")
	assert.Contains(t, out, cli.LedgerIcon+" Categories")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Eating out")

	out = mustExecute(t, dbPath, "categories", "show", "2")
	assert.Contains(t, out, "Eating out")

	out = mustExecute(t, dbPath, "categories", "delete", "1", "--force")
	assert.Contains(t, out, "Deleted category 1")

	out = mustExecute(t, dbPath, "categories", "show", "1")
	assert.Contains(t, out, "Category 1 not found.")

	out = mustExecute(t, dbPath, "categories", "list")
	assert.NotContains(t, out, "Food")
}

func TestDeleteCategoryConfirmation(t *testing.T) {
	dbPath := setupCLI(t)
	mustExecute(t, dbPath, "categories", "add", "Food")

	calls := stubConfirm(t, false)
	out := mustExecute(t, dbPath, "categories", "delete", "1")
	assert.Equal(t, 1, *calls)
	assert.Contains(t, out, "Deletion cancelled.")

	out = mustExecute(t, dbPath, "categories", "show", "1")
	assert.Contains(t, out, "Food")

	stubConfirm(t, true)
	out = mustExecute(t, dbPath, "categories", "delete", "1")
	assert.Contains(t, out, "Deleted category 1")
}

func TestCategoryArguments(t *testing.T) {
	dbPath := setupCLI(t)

	_, err := execute(t, dbPath, "categories", "show", "abc")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = execute(t, dbPath, "categories", "delete", "0", "--force")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = execute(t, dbPath, "categories", "add", " ")
	require.Error(t, err)
	assert.Equal(t, "Category name cannot be empty", userMessage(err))

	_, err = execute(t, dbPath, "categories", "add")
	assert.Error(t, err)
}
