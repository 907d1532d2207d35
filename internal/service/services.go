// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	AccountService  AccountService
	SecretService   SecretService
	CategoryService CategoryService
	AppInfoService  AppInfoService
	SchemaService   SchemaService
}

// NewServices builds the credential cipher and password hasher from cfg and
// wires every service to storages. It fails when the encryption key or the
// iteration count is unusable.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, fmt.Errorf("%w: storages", ErrNilDependency)
	}

	cipher, err := crypto.NewCredentialCipher(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("error creating credential cipher: %w", err)
	}

	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashIterations)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewVaultValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		AccountService:  NewAccountService(storages.AccountRepository, storages.CategoryRepository, hasher, validator, ids, logger),
		SecretService:   NewSecretService(storages.SecretRepository, storages.CategoryRepository, cipher, validator, ids, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, ids, logger),
		AppInfoService:  NewAppInfoService(cfg, buildInfo, logger),
		SchemaService:   NewSchemaService(storages.Schema, logger),
	}, nil
}
