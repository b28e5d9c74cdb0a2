package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/storage"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long: `Create the categories and expenses tables if they do not exist yet.

Running it again is harmless; existing data is never touched.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbPath, err := config.LoadDatabaseConfig().DatabasePath()
	if err != nil {
		return err
	}

	slog.Info("Ensuring database schema", "database", dbPath)

	stores, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := stores.EnsureSchema(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	printSuccess(cmd.OutOrStdout(), "Database ready at %s", stores.Path())
	return nil
}
