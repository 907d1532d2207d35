// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// newTestDB returns a Postgres-flavoured *DB backed by sqlmock. Expectations
// left unmet fail the test.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	return newTestDBWithDriver(t, config.DriverPostgres)
}

func newTestDBWithDriver(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := NewDB(conn, driver, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func toDriverArgs(args []any) []driver.Value {
	values := make([]driver.Value, len(args))
	for i, a := range args {
		values[i] = a
	}
	return values
}
