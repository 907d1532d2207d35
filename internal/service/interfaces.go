// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AccountService registers accounts and authenticates them.
type AccountService interface {
	// Register creates the account together with its default categories and
	// returns the new account id.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	// Login verifies the credentials, stamps last_login and returns the
	// account. The caller shapes it through [models.Account.Profile].
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)
}

// SecretService manages an owner's secret records. Passwords are encrypted
// before they reach the store and decrypted on the way out.
//
// Boolean results report whether a record matched the id and owner; false
// means "not found or not owned".
type SecretService interface {
	Add(ctx context.Context, req models.AddSecretRequest) (string, error)
	List(ctx context.Context, userID string) ([]models.SecretRecord, error)
	Update(ctx context.Context, update models.SecretRecordUpdate) (bool, error)
	SoftDelete(ctx context.Context, id, userID string) (bool, error)
	Restore(ctx context.Context, id, userID string) (bool, error)
	HardDelete(ctx context.Context, id, userID string) (bool, error)
	ListTrash(ctx context.Context, userID string) ([]models.SecretRecord, error)
	// EmptyTrash reports false when the trash held nothing.
	EmptyTrash(ctx context.Context, userID string) (bool, error)
	ToggleFavorite(ctx context.Context, id, userID string, favorite bool) (bool, error)
}

// CategoryService manages an owner's categories.
type CategoryService interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (string, error)
	ListForOwner(ctx context.Context, userID string) ([]models.Category, error)
	Update(ctx context.Context, update models.CategoryUpdate) (bool, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// AppInfoService reports the running application version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SchemaService creates the database schema on demand.
type SchemaService interface {
	InitSchema(ctx context.Context) error
}
