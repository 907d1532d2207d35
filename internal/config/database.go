// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

// database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultPostgresPort = 5432
	defaultSSLMode      = "disable"
	sqliteScheme        = "sqlite://"
)

// Driver returns the database/sql driver the configuration selects.
//
// postgres:// and postgresql:// DSNs select pgx; sqlite://, file: and paths
// ending in .db select SQLite. Without a DSN the discrete fields describe a
// PostgreSQL server.
func (db DB) Driver() string {
	if isSQLiteDSN(db.DSN) {
		return DriverSQLite
	}

	return DriverPostgres
}

// DataSource returns the connection string handed to sql.Open.
//
// SQLite sources always enable foreign keys so ON DELETE CASCADE holds.
func (db DB) DataSource() string {
	if db.DSN != "" {
		if isSQLiteDSN(db.DSN) {
			return sqliteDataSource(db.DSN)
		}
		return db.DSN
	}

	port := db.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(port)),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	if db.User != "" {
		u.User = url.UserPassword(db.User, db.Password)
	}

	return u.String()
}

func isSQLiteDSN(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return false
	}

	if strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, "file:") {
		return true
	}

	path, _, _ := strings.Cut(dsn, "?")
	return strings.HasSuffix(path, ".db")
}

func sqliteDataSource(dsn string) string {
	dsn = strings.TrimPrefix(dsn, sqliteScheme)
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
