package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// CategoryStore persists categories in the Categories relation.
type CategoryStore struct {
	connector
}

// NewCategoryStore creates a category store for the data file at dbPath.
func NewCategoryStore(dbPath string) (*CategoryStore, error) {
	c, err := newConnector(dbPath)
	if err != nil {
		return nil, err
	}
	return &CategoryStore{connector: c}, nil
}

// EnsureSchema creates the Categories relation if it does not exist.
func (s *CategoryStore) EnsureSchema(ctx context.Context) error {
	return s.withConn(ctx, "create categories table", nil, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, createCategoriesTable)
		return err
	})
}

// Add inserts a new active category. Names are not required to be unique.
func (s *CategoryStore) Add(ctx context.Context, name string) (*model.Category, error) {
	var category *model.Category

	err := s.withConn(ctx, "add category", common.Fields{"name": name}, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `INSERT INTO Categories (category_name) VALUES (?)`, name)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get category ID: %w", err)
		}

		category = &model.Category{ID: id, Name: name}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LogInfo("created category", common.Fields{"id": category.ID, "name": name})
	return category, nil
}

// GetAll returns the active categories in insertion order. It returns
// common.ErrNotFound when there are none.
func (s *CategoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	err := s.withConn(ctx, "query categories", nil, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `
			SELECT category_id, category_name, is_deleted
			FROM Categories
			WHERE is_deleted = 0
			ORDER BY category_id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var cat model.Category
			if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsDeleted); err != nil {
				return fmt.Errorf("failed to scan category: %w", err)
			}
			categories = append(categories, cat)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		common.LogDebug("no categories found", nil)
		return nil, fmt.Errorf("categories: %w", common.ErrNotFound)
	}

	common.LogDebug("retrieved categories", common.Fields{"count": len(categories)})
	return categories, nil
}

// GetByID returns an active category. Missing and soft-deleted ids both
// yield common.ErrNotFound.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var cat model.Category

	err := s.withConn(ctx, "query category", common.Fields{"id": id}, func(db *sql.DB) error {
		err := db.QueryRowContext(ctx, `
			SELECT category_id, category_name, is_deleted
			FROM Categories
			WHERE is_deleted = 0 AND category_id = ?`, id).Scan(&cat.ID, &cat.Name, &cat.IsDeleted)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("category %d: %w", id, common.ErrNotFound)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// SoftDelete flags the category as deleted and returns its id. The id is
// returned even when no row matched.
func (s *CategoryStore) SoftDelete(ctx context.Context, id int64) (int64, error) {
	err := s.withConn(ctx, "delete category", common.Fields{"id": id}, func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `UPDATE Categories SET is_deleted = 1 WHERE category_id = ?`, id)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			common.LogDebug("soft delete matched no category", common.Fields{"id": id})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	common.LogInfo("soft deleted category", common.Fields{"id": id})
	return id, nil
}
