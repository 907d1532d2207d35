// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type secretService struct {
	secretRepository   store.SecretRepository
	categoryRepository store.CategoryRepository

	cipher    crypto.CredentialCipher
	validator validators.Validator
	ids       utils.IDGenerator

	now func() time.Time

	logger *logger.Logger
}

func NewSecretService(
	secretRepository store.SecretRepository,
	categoryRepository store.CategoryRepository,
	cipher crypto.CredentialCipher,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) SecretService {
	return &secretService{
		secretRepository:   secretRepository,
		categoryRepository: categoryRepository,
		cipher:             cipher,
		validator:          validator,
		ids:                ids,
		now:                time.Now,
		logger:             logger,
	}
}

// Add encrypts the password and stores a new active record. created_at and
// updated_at are set to the same instant.
func (s *secretService) Add(ctx context.Context, req models.AddSecretRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid secret record provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkCategory(ctx, req.CategoryID, req.UserID); err != nil {
		return "", err
	}

	ciphertext, err := s.cipher.Encrypt(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*secretService.Add").Msg("password encryption failed")
		return "", fmt.Errorf("password encryption failed: %w", err)
	}

	now := s.now().UTC()
	record := models.SecretRecord{
		ID:         s.ids.Generate(),
		UserID:     req.UserID,
		Title:      req.Title,
		Username:   req.Username,
		Password:   ciphertext,
		URL:        req.URL,
		Notes:      req.Notes,
		CategoryID: emptyToNil(req.CategoryID),
		Favorite:   req.Favorite != nil && *req.Favorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.secretRepository.CreateSecret(ctx, record); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("secret record creation ended with error")
		return "", fmt.Errorf("secret record creation ended with error: %w", err)
	}

	return record.ID, nil
}

// List returns the owner's active records with decrypted passwords.
func (s *secretService) List(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	return s.list(ctx, userID, false)
}

// ListTrash returns the owner's soft-deleted records with decrypted passwords.
func (s *secretService) ListTrash(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	return s.list(ctx, userID, true)
}

func (s *secretService) list(ctx context.Context, userID string, trashed bool) ([]models.SecretRecord, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	records, err := s.secretRepository.ListSecrets(ctx, userID, trashed)
	if err != nil {
		log.Err(err).Str("user_id", userID).Bool("trashed", trashed).Msg("listing secret records ended with error")
		return nil, fmt.Errorf("listing secret records ended with error: %w", err)
	}

	for i := range records {
		plaintext, decErr := s.cipher.Decrypt(records[i].Password)
		if decErr != nil {
			log.Err(decErr).Str("record_id", records[i].ID).Msg("password decryption failed")
			return nil, fmt.Errorf("password decryption failed for record %s: %w", records[i].ID, decErr)
		}
		records[i].Password = plaintext
	}

	if records == nil {
		records = []models.SecretRecord{}
	}

	return records, nil
}

// Update applies the provided fields only. A provided password is
// re-encrypted; updated_at is always bumped.
func (s *secretService) Update(ctx context.Context, update models.SecretRecordUpdate) (bool, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return false, ErrNoFieldsToUpdate
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Warn().Err(err).Str("record_id", update.ID).Msg("invalid secret record update provided")
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.CategoryID != nil {
		if err := s.checkCategory(ctx, update.CategoryID, update.UserID); err != nil {
			return false, err
		}
	}

	if update.Password != nil {
		ciphertext, err := s.cipher.Encrypt(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "*secretService.Update").Msg("password encryption failed")
			return false, fmt.Errorf("password encryption failed: %w", err)
		}
		update.Password = &ciphertext
	}

	ok, err := s.secretRepository.UpdateSecret(ctx, update, s.now().UTC())
	if err != nil {
		log.Err(err).Str("record_id", update.ID).Msg("secret record update ended with error")
		return false, fmt.Errorf("secret record update ended with error: %w", err)
	}

	return ok, nil
}

// SoftDelete moves the record to the trash.
func (s *secretService) SoftDelete(ctx context.Context, id, userID string) (bool, error) {
	if err := requireIdentity(id, userID); err != nil {
		return false, err
	}

	ok, err := s.secretRepository.SoftDeleteSecret(ctx, id, userID, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("record_id", id).Msg("moving secret record to trash ended with error")
		return false, fmt.Errorf("moving secret record to trash ended with error: %w", err)
	}

	return ok, nil
}

// Restore takes a record out of the trash. Active records do not match.
func (s *secretService) Restore(ctx context.Context, id, userID string) (bool, error) {
	if err := requireIdentity(id, userID); err != nil {
		return false, err
	}

	ok, err := s.secretRepository.RestoreSecret(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("record_id", id).Msg("restoring secret record ended with error")
		return false, fmt.Errorf("restoring secret record ended with error: %w", err)
	}

	return ok, nil
}

// HardDelete removes a trashed record for good. Active records do not match.
func (s *secretService) HardDelete(ctx context.Context, id, userID string) (bool, error) {
	if err := requireIdentity(id, userID); err != nil {
		return false, err
	}

	ok, err := s.secretRepository.HardDeleteSecret(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("record_id", id).Msg("permanent deletion ended with error")
		return false, fmt.Errorf("permanent deletion ended with error: %w", err)
	}

	return ok, nil
}

func (s *secretService) EmptyTrash(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	deleted, err := s.secretRepository.EmptyTrash(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("emptying trash ended with error")
		return false, fmt.Errorf("emptying trash ended with error: %w", err)
	}

	log.Debug().Str("user_id", userID).Int64("deleted", deleted).Msg("trash emptied")
	return deleted > 0, nil
}

func (s *secretService) ToggleFavorite(ctx context.Context, id, userID string, favorite bool) (bool, error) {
	if err := requireIdentity(id, userID); err != nil {
		return false, err
	}

	ok, err := s.secretRepository.SetFavorite(ctx, id, userID, favorite, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("record_id", id).Msg("favorite update ended with error")
		return false, fmt.Errorf("favorite update ended with error: %w", err)
	}

	return ok, nil
}

// checkCategory rejects a category reference the owner does not hold.
// A nil or empty reference means "no category" and always passes.
func (s *secretService) checkCategory(ctx context.Context, categoryID *string, userID string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}

	exists, err := s.categoryRepository.CategoryExists(ctx, *categoryID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category_id", *categoryID).Msg("category lookup ended with error")
		return fmt.Errorf("category lookup ended with error: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", store.ErrCategoryNotFound, *categoryID)
	}

	return nil
}

func requireIdentity(id, userID string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidRecordID)
	}
	if userID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
