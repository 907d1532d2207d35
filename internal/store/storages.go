// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups every repository behind one shared connection pool so it
// can be handed to the service layer as a single value.
type Storages struct {
	AccountRepository  AccountRepository
	SecretRepository   SecretRepository
	CategoryRepository CategoryRepository
	Schema             SchemaMigrator

	db *DB
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB) *Storages {
	return &Storages{
		AccountRepository:  NewAccountRepository(db),
		SecretRepository:   NewSecretRepository(db),
		CategoryRepository: NewCategoryRepository(db),
		Schema:             db,
		db:                 db,
	}
}

// Open connects to the database described by cfg, applies the schema when
// migrate is set and returns the wired repositories.
func Open(ctx context.Context, cfg config.DB, migrate bool, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error opening storage: %w", err)
	}

	if migrate {
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("error migrating storage: %w", err)
		}
	}

	return NewStorages(db), nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
