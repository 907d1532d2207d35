// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCategorySvc(t *testing.T) (CategoryService, *mock.MockCategoryRepository, *mock.MockIDGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockCategoryRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	return NewCategoryService(repo, validators.NewVaultValidator(), ids, logger.Nop()), repo, ids
}

func TestCategoryService_Create(t *testing.T) {
	svc, repo, ids := newTestCategorySvc(t)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("cat-1")
	repo.EXPECT().CreateCategories(ctx, models.Category{ID: "cat-1", UserID: "user-1", Name: "Gaming", Color: "#112233"}).Return(nil)

	id, err := svc.Create(ctx, models.CreateCategoryRequest{UserID: "user-1", Name: "Gaming", Color: "#112233"})

	require.NoError(t, err)
	assert.Equal(t, "cat-1", id)
}

func TestCategoryService_Create_InvalidColor(t *testing.T) {
	svc, _, _ := newTestCategorySvc(t)

	_, err := svc.Create(context.Background(), models.CreateCategoryRequest{UserID: "user-1", Name: "Gaming", Color: "red"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidColor)
}

func TestCategoryService_ListForOwner(t *testing.T) {
	svc, repo, _ := newTestCategorySvc(t)
	ctx := context.Background()

	repo.EXPECT().ListCategories(ctx, "user-1").Return(nil, nil)

	categories, err := svc.ListForOwner(ctx, "user-1")

	require.NoError(t, err)
	assert.NotNil(t, categories)

	_, err = svc.ListForOwner(ctx, "")
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}

func TestCategoryService_Update_NoFields(t *testing.T) {
	svc, _, _ := newTestCategorySvc(t)

	ok, err := svc.Update(context.Background(), models.CategoryUpdate{ID: "cat-1", UserID: "user-1"})

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestCategoryService_Update(t *testing.T) {
	svc, repo, _ := newTestCategorySvc(t)
	ctx := context.Background()
	name := "Work"
	update := models.CategoryUpdate{ID: "cat-1", UserID: "user-1", Name: &name}

	repo.EXPECT().UpdateCategory(ctx, update).Return(false, nil)

	ok, err := svc.Update(ctx, update)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryService_Delete(t *testing.T) {
	svc, repo, _ := newTestCategorySvc(t)
	ctx := context.Background()

	repo.EXPECT().DeleteCategory(ctx, "cat-1", "user-1").Return(true, nil)
	repo.EXPECT().DeleteCategory(ctx, "cat-2", "user-1").Return(false, store.ErrCommitingTransaction)

	ok, err := svc.Delete(ctx, "cat-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Delete(ctx, "cat-2", "user-1")
	assert.ErrorIs(t, err, store.ErrCommitingTransaction)
}
