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

// accountService is the concrete implementation of AccountService.
// Passwords are hashed with the injected PasswordHasher; the plaintext never
// reaches the store.
type accountService struct {
	accountRepository  store.AccountRepository
	categoryRepository store.CategoryRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       utils.IDGenerator

	// now is the clock; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

func NewAccountService(
	accountRepository store.AccountRepository,
	categoryRepository store.CategoryRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accountRepository:  accountRepository,
		categoryRepository: categoryRepository,
		hasher:             hasher,
		validator:          validator,
		ids:                ids,
		now:                time.Now,
		logger:             logger,
	}
}

// Register creates a new account.
//
// Returns the new account id or:
//   - ErrInvalidDataProvided (wrapping the validator error) for missing or
//     malformed fields.
//   - a wrapped store.ErrAccountAlreadyExists when username or email is taken.
//
// The four default categories are inserted after the account in a single
// statement. A failure there is returned but does not remove the account.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, salt, err := a.hasher.HashPassword(req.Password, "")
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("password hashing failed")
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.Account{
		ID:           a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    a.now().UTC(),
	}

	if err = a.accountRepository.CreateAccount(ctx, account); err != nil {
		log.Err(err).Str("username", req.Username).Msg("account creation ended with error")
		return "", fmt.Errorf("account creation ended with error: %w", err)
	}

	defaults := make([]models.Category, 0, len(models.DefaultCategories))
	for _, c := range models.DefaultCategories {
		c.ID = a.ids.Generate()
		c.UserID = account.ID
		defaults = append(defaults, c)
	}

	if err = a.categoryRepository.CreateCategories(ctx, defaults...); err != nil {
		log.Err(err).Str("user_id", account.ID).Msg("default categories creation ended with error")
		return "", fmt.Errorf("default categories creation ended with error: %w", err)
	}

	log.Info().Str("user_id", account.ID).Msg("account registered")
	return account.ID, nil
}

// Login authenticates by username and password.
//
// Returns a wrapped store.ErrAccountNotFound for an unknown username and
// ErrWrongPassword when verification fails. On success last_login is set to
// the current time and reflected in the returned account.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid login data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.accountRepository.FindAccountByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account lookup ended with error")
		return models.Account{}, fmt.Errorf("account lookup ended with error: %w", err)
	}

	if !a.hasher.VerifyPassword(account.PasswordHash, account.Salt, req.Password) {
		log.Warn().Str("user_id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	at := a.now().UTC()
	if err = a.accountRepository.UpdateLastLogin(ctx, account.ID, at); err != nil {
		log.Err(err).Str("user_id", account.ID).Msg("last login update ended with error")
		return models.Account{}, fmt.Errorf("last login update ended with error: %w", err)
	}
	account.LastLogin = &at

	return account, nil
}
