// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied after all sources are merged.
const (
	DefaultHTTPAddress            = "localhost:3000"
	DefaultPoolSize               = 10
	DefaultPasswordHashIterations = 210000
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultClientServerURL        = "http://localhost:3000"
	DefaultClientRequestTimeout   = 15 * time.Second

	// MinPasswordHashIterations is the lowest PBKDF2 work factor accepted.
	MinPasswordHashIterations = 1000
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Client  Client  `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the cryptographic settings and the application version.
type App struct {
	// EncryptionKey is the hex-encoded 256-bit key every stored credential is
	// encrypted with. Mandatory; there is no fallback.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// PasswordHashIterations is the PBKDF2 work factor for account passwords.
	// Env: APP_PASSWORD_HASH_ITERATIONS
	PasswordHashIterations int `env:"PASSWORD_HASH_ITERATIONS"`

	// Version is reported by /api/version next to the build metadata.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database. Either DSN is set
// or the connection string is composed from the discrete fields.
type DB struct {
	// DSN selects the driver by its form, see [DB.Driver].
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	SSLMode  string `env:"SSLMODE"`

	// PoolSize caps the number of open connections.
	// Env: STORAGE_DB_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// Server holds the inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MigrateOnStart applies the embedded schema before serving.
	// Env: SERVER_MIGRATE_ON_START
	MigrateOnStart bool `env:"MIGRATE_ON_START"`
}

// Client holds the settings of the command-line client.
type Client struct {
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the server configuration
// from all sources in the following order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig loads the client configuration from the environment and an
// optional JSON file. Command-line flags belong to the client's subcommands
// and are not read here.
func GetClientConfig() (*Client, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return &cfg.Client, cfg.Client.validate()
}
