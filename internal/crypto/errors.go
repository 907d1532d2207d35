// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKey is returned when the encryption key is not exactly
	// 32 bytes (64 hex characters).
	ErrInvalidKey = errors.New("invalid encryption key")
	// ErrDecryption covers every decryption failure: bad hex, truncated
	// input, wrong key or a tampered ciphertext.
	ErrDecryption = errors.New("decryption failed")
	// ErrEmptySalt is returned when an explicitly supplied salt decodes to
	// zero bytes.
	ErrEmptySalt = errors.New("empty salt")
	// ErrInvalidIterations is returned for a PBKDF2 work factor below the
	// accepted minimum.
	ErrInvalidIterations = errors.New("invalid hash iterations")
)
