// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Service fakes. An unset function field makes the method return zero values,
// so route tests can build a handler without wiring every call.

type mockAccountService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (string, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.Account, error)
}

func (m *mockAccountService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if m.registerFn == nil {
		return "", nil
	}
	return m.registerFn(ctx, req)
}

func (m *mockAccountService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	if m.loginFn == nil {
		return models.Account{}, nil
	}
	return m.loginFn(ctx, req)
}

type mockSecretService struct {
	addFn            func(ctx context.Context, req models.AddSecretRequest) (string, error)
	listFn           func(ctx context.Context, userID string) ([]models.SecretRecord, error)
	updateFn         func(ctx context.Context, update models.SecretRecordUpdate) (bool, error)
	softDeleteFn     func(ctx context.Context, id, userID string) (bool, error)
	restoreFn        func(ctx context.Context, id, userID string) (bool, error)
	hardDeleteFn     func(ctx context.Context, id, userID string) (bool, error)
	listTrashFn      func(ctx context.Context, userID string) ([]models.SecretRecord, error)
	emptyTrashFn     func(ctx context.Context, userID string) (bool, error)
	toggleFavoriteFn func(ctx context.Context, id, userID string, favorite bool) (bool, error)
}

func (m *mockSecretService) Add(ctx context.Context, req models.AddSecretRequest) (string, error) {
	if m.addFn == nil {
		return "", nil
	}
	return m.addFn(ctx, req)
}

func (m *mockSecretService) List(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	if m.listFn == nil {
		return []models.SecretRecord{}, nil
	}
	return m.listFn(ctx, userID)
}

func (m *mockSecretService) Update(ctx context.Context, update models.SecretRecordUpdate) (bool, error) {
	if m.updateFn == nil {
		return false, nil
	}
	return m.updateFn(ctx, update)
}

func (m *mockSecretService) SoftDelete(ctx context.Context, id, userID string) (bool, error) {
	if m.softDeleteFn == nil {
		return false, nil
	}
	return m.softDeleteFn(ctx, id, userID)
}

func (m *mockSecretService) Restore(ctx context.Context, id, userID string) (bool, error) {
	if m.restoreFn == nil {
		return false, nil
	}
	return m.restoreFn(ctx, id, userID)
}

func (m *mockSecretService) HardDelete(ctx context.Context, id, userID string) (bool, error) {
	if m.hardDeleteFn == nil {
		return false, nil
	}
	return m.hardDeleteFn(ctx, id, userID)
}

func (m *mockSecretService) ListTrash(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	if m.listTrashFn == nil {
		return []models.SecretRecord{}, nil
	}
	return m.listTrashFn(ctx, userID)
}

func (m *mockSecretService) EmptyTrash(ctx context.Context, userID string) (bool, error) {
	if m.emptyTrashFn == nil {
		return false, nil
	}
	return m.emptyTrashFn(ctx, userID)
}

func (m *mockSecretService) ToggleFavorite(ctx context.Context, id, userID string, favorite bool) (bool, error) {
	if m.toggleFavoriteFn == nil {
		return false, nil
	}
	return m.toggleFavoriteFn(ctx, id, userID, favorite)
}

type mockCategoryService struct {
	createFn       func(ctx context.Context, req models.CreateCategoryRequest) (string, error)
	listForOwnerFn func(ctx context.Context, userID string) ([]models.Category, error)
	updateFn       func(ctx context.Context, update models.CategoryUpdate) (bool, error)
	deleteFn       func(ctx context.Context, id, userID string) (bool, error)
}

func (m *mockCategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (string, error) {
	if m.createFn == nil {
		return "", nil
	}
	return m.createFn(ctx, req)
}

func (m *mockCategoryService) ListForOwner(ctx context.Context, userID string) ([]models.Category, error) {
	if m.listForOwnerFn == nil {
		return []models.Category{}, nil
	}
	return m.listForOwnerFn(ctx, userID)
}

func (m *mockCategoryService) Update(ctx context.Context, update models.CategoryUpdate) (bool, error) {
	if m.updateFn == nil {
		return false, nil
	}
	return m.updateFn(ctx, update)
}

func (m *mockCategoryService) Delete(ctx context.Context, id, userID string) (bool, error) {
	if m.deleteFn == nil {
		return false, nil
	}
	return m.deleteFn(ctx, id, userID)
}

type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

type mockSchemaService struct {
	initSchemaFn func(ctx context.Context) error
}

func (m *mockSchemaService) InitSchema(ctx context.Context) error {
	if m.initSchemaFn == nil {
		return nil
	}
	return m.initSchemaFn(ctx)
}
