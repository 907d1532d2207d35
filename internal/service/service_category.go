// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	validator validators.Validator
	ids       utils.IDGenerator

	logger *logger.Logger
}

func NewCategoryService(
	categoryRepository store.CategoryRepository,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validator,
		ids:                ids,
		logger:             logger,
	}
}

func (c *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid category provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	category := models.Category{
		ID:     c.ids.Generate(),
		UserID: req.UserID,
		Name:   req.Name,
		Color:  req.Color,
	}

	if err := c.categoryRepository.CreateCategories(ctx, category); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("category creation ended with error")
		return "", fmt.Errorf("category creation ended with error: %w", err)
	}

	return category.ID, nil
}

func (c *categoryService) ListForOwner(ctx context.Context, userID string) ([]models.Category, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	categories, err := c.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("listing categories ended with error")
		return nil, fmt.Errorf("listing categories ended with error: %w", err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

// Update changes the provided fields of the category. An update without any
// field fails with ErrNoFieldsToUpdate before the store is touched.
func (c *categoryService) Update(ctx context.Context, update models.CategoryUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return false, ErrNoFieldsToUpdate
	}

	if err := c.validator.Validate(ctx, update); err != nil {
		log.Warn().Err(err).Str("category_id", update.ID).Msg("invalid category update provided")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := c.categoryRepository.UpdateCategory(ctx, update)
	if err != nil {
		log.Err(err).Str("category_id", update.ID).Msg("category update ended with error")
		return false, fmt.Errorf("category update ended with error: %w", err)
	}

	return ok, nil
}

// Delete detaches the category from the owner's records and removes it.
func (c *categoryService) Delete(ctx context.Context, id, userID string) (bool, error) {
	if err := requireIdentity(id, userID); err != nil {
		return false, err
	}

	ok, err := c.categoryRepository.DeleteCategory(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category_id", id).Msg("category deletion ended with error")
		return false, fmt.Errorf("category deletion ended with error: %w", err)
	}

	return ok, nil
}
