// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB is the shared connection pool handed to every repository. It carries the
// dialect-specific query builder and error classifier.
type DB struct {
	*sqlx.DB
	driver             string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg, sizes the pool and pings it.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver() {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.Driver())
	}
}

// NewDB wraps an already opened connection. driver must be the name the
// connection was opened with.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:     sqlx.NewDb(conn, driver),
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	return db, nil
}

func openPool(ctx context.Context, driver, dataSource string, poolSize int, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		log.Err(err).Str("func", "store.openPool").Str("driver", driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(poolSize)
	conn.SetMaxIdleConns(poolSize)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.openPool").Str("driver", driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	db, err := NewDB(conn, driver, log)
	if err != nil {
		conn.Close()
		return nil, err
	}

	log.Info().Str("func", "store.openPool").Str("driver", driver).Int("pool_size", poolSize).Msg("connected to database successfully")
	return db, nil
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema for the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB.DB, db.driver); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("schema migration failed")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Msg("schema is up to date")
	return nil
}

// classify logs err with its retry classification. Every repository failure
// passes through here exactly once.
func (db *DB) classify(log *logger.Logger, err error) {
	class := "non_retryable"
	if db.errorClassificator.Classify(err) == Retryable {
		class = "retryable"
	}
	log.Debug().Str("classification", class).Msg("database error classified")
}

// exec renders q, executes it and returns the number of affected rows.
func (db *DB) exec(ctx context.Context, fn string, q squirrel.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		db.classify(log, err)
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// selectAll renders q and scans every row into dest, a pointer to a slice.
func (db *DB) selectAll(ctx context.Context, fn string, dest any, q squirrel.Sqlizer) error {
	log := logger.FromContext(ctx)

	query, args, err := q.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		db.classify(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if err = sqlx.StructScan(rows, dest); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan rows")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
