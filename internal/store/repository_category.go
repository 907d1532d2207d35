// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var categoryColumns = []string{"id", "user_id", "name", "color"}

var categoriesTable = models.Category{}.TableName()

// categoryRepository is the SQL implementation of [CategoryRepository].
type categoryRepository struct {
	db *DB
}

// NewCategoryRepository constructs a [CategoryRepository] on top of db.
func NewCategoryRepository(db *DB) CategoryRepository {
	db.logger.Debug().Msg("creating category repository")
	return &categoryRepository{db: db}
}

// CreateCategories inserts every category with one multi-row INSERT.
func (r *categoryRepository) CreateCategories(ctx context.Context, categories ...models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	insert := r.db.builder.Insert(categoriesTable).Columns(categoryColumns...)
	for _, c := range categories {
		insert = insert.Values(c.ID, c.UserID, c.Name, c.Color)
	}

	_, err := r.db.exec(ctx, "*categoryRepository.CreateCategories", insert)
	return err
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	query := r.db.builder.
		Select(categoryColumns...).
		From(categoriesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC")

	categories := make([]models.Category, 0, len(models.DefaultCategories))
	if err := r.db.selectAll(ctx, "*categoryRepository.ListCategories", &categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) CategoryExists(ctx context.Context, id, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(categoriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CategoryExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.GetContext(ctx, &count, query, args...); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CategoryExists").Msg("failed to count categories")
		r.db.classify(log, err)
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, update models.CategoryUpdate) (bool, error) {
	query := r.db.builder.Update(categoriesTable)
	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Color != nil {
		query = query.Set("color", *update.Color)
	}
	query = query.Where(squirrel.Eq{"id": update.ID, "user_id": update.UserID})

	affected, err := r.db.exec(ctx, "*categoryRepository.UpdateCategory", query)
	return affected > 0, err
}

// DeleteCategory clears category_id on the owner's records that reference the
// category, then deletes the category. Both statements run in one
// transaction; any failure rolls both back.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	detachQuery, detachArgs, err := r.db.builder.
		Update(secretsTable).
		Set("category_id", nil).
		Where(squirrel.Eq{"category_id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to build detach query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete(categoriesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to build delete query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, detachQuery, detachArgs...); err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Str("category_id", id).Msg("failed to detach records")
		r.db.classify(log, err)
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Str("category_id", id).Msg("failed to delete category")
		r.db.classify(log, err)
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return affected > 0, nil
}
