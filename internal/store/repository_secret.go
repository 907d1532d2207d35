// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var secretColumns = []string{
	"id", "user_id", "title", "username", "password", "url", "notes",
	"category_id", "favorite", "created_at", "updated_at", "deleted_at",
}

var secretsTable = models.SecretRecord{}.TableName()

// secretRepository is the SQL implementation of [SecretRepository].
type secretRepository struct {
	db *DB
}

// NewSecretRepository constructs a [SecretRepository] on top of db.
func NewSecretRepository(db *DB) SecretRepository {
	db.logger.Debug().Msg("creating secret repository")
	return &secretRepository{db: db}
}

func (r *secretRepository) CreateSecret(ctx context.Context, record models.SecretRecord) error {
	insert := r.db.builder.
		Insert(secretsTable).
		Columns(secretColumns[:11]...).
		Values(
			record.ID, record.UserID, record.Title, record.Username, record.Password,
			record.URL, record.Notes, record.CategoryID, record.Favorite,
			record.CreatedAt, record.UpdatedAt,
		)

	_, err := r.db.exec(ctx, "*secretRepository.CreateSecret", insert)
	return err
}

func (r *secretRepository) ListSecrets(ctx context.Context, userID string, trashed bool) ([]models.SecretRecord, error) {
	var deletedFilter squirrel.Sqlizer = squirrel.Eq{"deleted_at": nil}
	if trashed {
		deletedFilter = squirrel.NotEq{"deleted_at": nil}
	}

	query := r.db.builder.
		Select(secretColumns...).
		From(secretsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(deletedFilter).
		OrderBy("created_at DESC")

	records := make([]models.SecretRecord, 0)
	if err := r.db.selectAll(ctx, "*secretRepository.ListSecrets", &records, query); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateSecret sets only the provided fields and always bumps updated_at.
func (r *secretRepository) UpdateSecret(ctx context.Context, update models.SecretRecordUpdate, at time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.Update(secretsTable)

	fields := []struct {
		column string
		value  any
		set    bool
	}{
		{"title", update.Title, update.Title != nil},
		{"username", update.Username, update.Username != nil},
		{"password", update.Password, update.Password != nil},
		{"url", update.URL, update.URL != nil},
		{"notes", update.Notes, update.Notes != nil},
		{"category_id", nullableRef(update.CategoryID), update.CategoryID != nil},
		{"favorite", update.Favorite, update.Favorite != nil},
	}
	for _, f := range fields {
		if f.set {
			query = query.Set(f.column, f.value)
		}
	}

	query = query.
		Set("updated_at", at).
		Where(squirrel.Eq{"id": update.ID, "user_id": update.UserID})

	affected, err := r.db.exec(ctx, "*secretRepository.UpdateSecret", query)
	if err != nil {
		return false, err
	}

	log.Debug().Str("func", "*secretRepository.UpdateSecret").Str("id", update.ID).Int64("affected", affected).Msg("record updated")
	return affected > 0, nil
}

func (r *secretRepository) SoftDeleteSecret(ctx context.Context, id, userID string, at time.Time) (bool, error) {
	query := r.db.builder.
		Update(secretsTable).
		Set("deleted_at", at).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	affected, err := r.db.exec(ctx, "*secretRepository.SoftDeleteSecret", query)
	return affected > 0, err
}

// RestoreSecret only touches records that are currently in the trash.
func (r *secretRepository) RestoreSecret(ctx context.Context, id, userID string) (bool, error) {
	query := r.db.builder.
		Update(secretsTable).
		Set("deleted_at", nil).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Where(squirrel.NotEq{"deleted_at": nil})

	affected, err := r.db.exec(ctx, "*secretRepository.RestoreSecret", query)
	return affected > 0, err
}

// HardDeleteSecret removes a record permanently, provided it was soft-deleted
// before.
func (r *secretRepository) HardDeleteSecret(ctx context.Context, id, userID string) (bool, error) {
	query := r.db.builder.
		Delete(secretsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Where(squirrel.NotEq{"deleted_at": nil})

	affected, err := r.db.exec(ctx, "*secretRepository.HardDeleteSecret", query)
	return affected > 0, err
}

func (r *secretRepository) EmptyTrash(ctx context.Context, userID string) (int64, error) {
	query := r.db.builder.
		Delete(secretsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"deleted_at": nil})

	return r.db.exec(ctx, "*secretRepository.EmptyTrash", query)
}

func (r *secretRepository) SetFavorite(ctx context.Context, id, userID string, favorite bool, at time.Time) (bool, error) {
	query := r.db.builder.
		Update(secretsTable).
		Set("favorite", favorite).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	affected, err := r.db.exec(ctx, "*secretRepository.SetFavorite", query)
	return affected > 0, err
}

// nullableRef turns an empty reference into NULL so "" clears the category.
func nullableRef(ref *string) any {
	if ref == nil || *ref == "" {
		return nil
	}
	return *ref
}
