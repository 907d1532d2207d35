// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type schemaService struct {
	migrator store.SchemaMigrator

	logger *logger.Logger
}

func NewSchemaService(migrator store.SchemaMigrator, logger *logger.Logger) SchemaService {
	return &schemaService{migrator: migrator, logger: logger}
}

// InitSchema applies the embedded migrations. Repeated calls are no-ops.
func (s *schemaService) InitSchema(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.migrator.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "*schemaService.InitSchema").Msg("schema initialization failed")
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	log.Info().Msg("schema initialized")
	return nil
}
