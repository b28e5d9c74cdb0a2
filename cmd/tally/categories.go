package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage expense categories",
		Long:    `List, add, show, and delete the categories expenses are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(showCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display all active categories in the order they were created.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			categories, err := stores.Categories.GetAll(ctx)
			if errors.Is(err, common.ErrNotFound) {
				printInfo(cmd.OutOrStdout(), "No categories found. Use 'tally categories add' to create one.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("Categories"))
			return cli.WriteCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return common.NewUserError("Category name cannot be empty", common.ErrInvalidInput)
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			category, err := stores.Categories.Add(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Created category %q (ID: %d)", category.Name, category.ID)
			return nil
		},
	}
}

func showCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := cli.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			category, err := stores.Categories.GetByID(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				printInfo(cmd.OutOrStdout(), "Category %d not found.", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n%s %s\n",
				cli.BoldStyle.Render("ID:  "), category.ID,
				cli.BoldStyle.Render("Name:"), category.Name)
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Mark a category as deleted. It disappears from category listings, while
its expenses keep showing the category name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := cli.ParseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid category ID: %w", err)
			}

			stores, err := initStores(ctx)
			if err != nil {
				return err
			}

			if !force {
				ok, err := confirm(fmt.Sprintf("Delete category %d?", id))
				if err != nil {
					return err
				}
				if !ok {
					printInfo(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}

			if _, err := stores.Categories.SoftDelete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "Deleted category %d", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
