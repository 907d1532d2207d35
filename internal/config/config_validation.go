// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"net/url"
)

const encryptionKeySize = 32

// validate checks that the merged server configuration satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	key, err := hex.DecodeString(cfg.App.EncryptionKey)
	if err != nil || len(key) != encryptionKeySize {
		return fmt.Errorf("%w: encryption key must be %d hex characters", ErrInvalidAppConfigs, encryptionKeySize*2)
	}

	if cfg.App.PasswordHashIterations < MinPasswordHashIterations {
		return fmt.Errorf("%w: password hash iterations must be at least %d", ErrInvalidAppConfigs, MinPasswordHashIterations)
	}

	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.Name == "") {
		return fmt.Errorf("%w: either a DSN or host and database name are required", ErrInvalidStorageConfigs)
	}

	if db.PoolSize < 0 {
		return fmt.Errorf("%w: pool size must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (c *Client) validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: server url %q", ErrInvalidClientConfigs, c.ServerURL)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidClientConfigs)
	}

	return nil
}
