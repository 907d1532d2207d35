// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDB_DriverAndDataSource(t *testing.T) {
	tests := []struct {
		name       string
		db         DB
		wantDriver string
		wantSource string
	}{
		{
			name:       "postgres dsn",
			db:         DB{DSN: "postgres://u:p@localhost:5432/vault?sslmode=disable"},
			wantDriver: DriverPostgres,
			wantSource: "postgres://u:p@localhost:5432/vault?sslmode=disable",
		},
		{
			name:       "postgres dsn ending in .db",
			db:         DB{DSN: "postgresql://localhost/vault.db"},
			wantDriver: DriverPostgres,
			wantSource: "postgresql://localhost/vault.db",
		},
		{
			name:       "sqlite scheme",
			db:         DB{DSN: "sqlite:///var/lib/vault.sqlite"},
			wantDriver: DriverSQLite,
			wantSource: "/var/lib/vault.sqlite?_foreign_keys=on",
		},
		{
			name:       "sqlite file uri with params",
			db:         DB{DSN: "file:vault.db?cache=shared"},
			wantDriver: DriverSQLite,
			wantSource: "file:vault.db?cache=shared&_foreign_keys=on",
		},
		{
			name:       "sqlite path with explicit fk",
			db:         DB{DSN: "./data/vault.db?_fk=1"},
			wantDriver: DriverSQLite,
			wantSource: "./data/vault.db?_fk=1",
		},
		{
			name:       "composed from fields",
			db:         DB{Host: "db", User: "vault", Password: "p@ss", Name: "vault"},
			wantDriver: DriverPostgres,
			wantSource: "postgres://vault:p%40ss@db:5432/vault?sslmode=disable",
		},
		{
			name:       "composed with port and ssl mode",
			db:         DB{Host: "db", Port: 6543, Name: "vault", SSLMode: "require"},
			wantDriver: DriverPostgres,
			wantSource: "postgres://db:6543/vault?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDriver, tt.db.Driver())
			assert.Equal(t, tt.wantSource, tt.db.DataSource())
		})
	}
}
