// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the vault HTTP API.
//
// [VaultClient] covers every /api endpoint. Failed calls are mapped from the
// HTTP status to the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultClient talks to the vault server on behalf of one caller. Operations
// that act on an owner's data take the owner id explicitly; the server does
// not issue sessions.
type VaultClient interface {
	InitDB(ctx context.Context) error
	Version(ctx context.Context) (models.VersionResponse, error)

	// Register returns the new account id.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	// Login returns the profile together with the decrypted active records
	// and the categories of the account.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	ListSecrets(ctx context.Context, userID string) ([]models.SecretRecord, error)
	// AddSecret returns the new record id.
	AddSecret(ctx context.Context, req models.AddSecretRequest) (string, error)
	UpdateSecret(ctx context.Context, update models.SecretRecordUpdate) error
	// DeleteSecret moves a record to the trash.
	DeleteSecret(ctx context.Context, id, userID string) error
	// PurgeSecret removes a trashed record permanently.
	PurgeSecret(ctx context.Context, id, userID string) error
	RestoreSecret(ctx context.Context, id, userID string) error
	SetFavorite(ctx context.Context, id, userID string, favorite bool) error

	ListTrash(ctx context.Context, userID string) ([]models.SecretRecord, error)
	EmptyTrash(ctx context.Context, userID string) error

	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
	// CreateCategory returns the new category id.
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (string, error)
	UpdateCategory(ctx context.Context, update models.CategoryUpdate) error
	DeleteCategory(ctx context.Context, id, userID string) error
}
