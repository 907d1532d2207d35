// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts in the "users" table.
type AccountRepository interface {
	// CreateAccount inserts a new account. A duplicate username or email
	// yields ErrAccountAlreadyExists.
	CreateAccount(ctx context.Context, account models.Account) error
	// FindAccountByUsername returns ErrAccountNotFound when no row matches.
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	UpdateLastLogin(ctx context.Context, accountID string, at time.Time) error
}

// SecretRepository persists secret records in the "passwords" table. Every
// mutation is scoped by record id and owner id; the boolean results report
// whether a row matched.
type SecretRepository interface {
	CreateSecret(ctx context.Context, record models.SecretRecord) error
	// ListSecrets returns the owner's active records, or the trashed ones
	// when trashed is set. Passwords are returned as stored (ciphertext).
	ListSecrets(ctx context.Context, userID string, trashed bool) ([]models.SecretRecord, error)
	// UpdateSecret applies the non-nil fields of update. Password, when
	// present, must already be encrypted.
	UpdateSecret(ctx context.Context, update models.SecretRecordUpdate, at time.Time) (bool, error)
	SoftDeleteSecret(ctx context.Context, id, userID string, at time.Time) (bool, error)
	RestoreSecret(ctx context.Context, id, userID string) (bool, error)
	HardDeleteSecret(ctx context.Context, id, userID string) (bool, error)
	EmptyTrash(ctx context.Context, userID string) (int64, error)
	SetFavorite(ctx context.Context, id, userID string, favorite bool, at time.Time) (bool, error)
}

// CategoryRepository persists categories in the "categories" table.
type CategoryRepository interface {
	// CreateCategories inserts all categories with a single statement.
	CreateCategories(ctx context.Context, categories ...models.Category) error
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	// CategoryExists reports whether the category exists and belongs to userID.
	CategoryExists(ctx context.Context, id, userID string) (bool, error)
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) (bool, error)
	// DeleteCategory detaches the category from the owner's records and
	// deletes it in one transaction.
	DeleteCategory(ctx context.Context, id, userID string) (bool, error)
}

// SchemaMigrator creates the database schema. Implementations are idempotent.
type SchemaMigrator interface {
	Migrate(ctx context.Context) error
}

// ErrorClassificator maps driver errors to a retry classification and
// recognises unique-constraint violations.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
