// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// NewConnectSQLite opens an embedded SQLite database, creating the directory
// of the database file when it does not exist yet.
//
// Every connection to an in-memory database sees its own empty database, so
// the pool is capped at one connection for those.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dataSource := cfg.DataSource()

	if err := createLocalDBDirIfNotExists(dataSource); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, err
	}

	poolSize := cfg.PoolSize
	if isInMemorySQLite(dataSource) && poolSize != 1 {
		log.Warn().Str("func", "NewConnectSQLite").Int("pool_size", poolSize).Msg("in-memory database, pool size forced to 1")
		poolSize = 1
	}

	return openPool(ctx, config.DriverSQLite, dataSource, poolSize, log)
}

func isInMemorySQLite(dataSource string) bool {
	path, query, _ := strings.Cut(strings.TrimPrefix(dataSource, "file:"), "?")
	return path == ":memory:" || strings.Contains(query, "mode=memory")
}

func createLocalDBDirIfNotExists(dataSource string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dataSource, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("error creating DB directory %s: %w", dir, err)
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3 errors.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. SQLITE_BUSY and SQLITE_LOCKED
// are [Retryable]; everything else is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if err == nil || !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
