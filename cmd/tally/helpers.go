package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/storage"
)

// confirm is swapped out in tests; the real prompt needs a terminal.
var confirm = cli.Confirm

// initStores opens the configured data file and makes sure both relations exist.
func initStores(ctx context.Context) (*storage.Stores, error) {
	dbPath, err := config.LoadDatabaseConfig().DatabasePath()
	if err != nil {
		return nil, err
	}

	stores, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := stores.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare database: %w", err)
	}

	return stores, nil
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, cli.InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, cli.FormatWarning(fmt.Sprintf(format, args...)))
}
