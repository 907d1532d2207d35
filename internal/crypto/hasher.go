// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest accepted PBKDF2 work factor.
	MinIterations = 1000
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 210000

	saltSize = 16
	hashSize = 64
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	iterations int
}

// NewPasswordHasher binds the PBKDF2-HMAC-SHA512 work factor. Zero selects
// [DefaultIterations]; anything else below [MinIterations] is rejected.
func NewPasswordHasher(iterations int) (PasswordHasher, error) {
	if iterations == 0 {
		iterations = DefaultIterations
	}

	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidIterations, iterations, MinIterations)
	}

	return &passwordHasher{iterations: iterations}, nil
}

func (h *passwordHasher) HashPassword(password, salt string) (string, string, error) {
	if salt == "" {
		raw := make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return "", "", fmt.Errorf("generate salt: %w", err)
		}
		salt = hex.EncodeToString(raw)
	}

	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", "", fmt.Errorf("decode salt: %w", err)
	}
	if len(rawSalt) == 0 {
		return "", "", ErrEmptySalt
	}

	return hex.EncodeToString(h.derive(password, rawSalt)), salt, nil
}

func (h *passwordHasher) VerifyPassword(storedHash, storedSalt, candidate string) bool {
	want, err := hex.DecodeString(storedHash)
	if err != nil || len(want) != hashSize {
		return false
	}

	rawSalt, err := hex.DecodeString(storedSalt)
	if err != nil || len(rawSalt) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(want, h.derive(candidate, rawSalt)) == 1
}

func (h *passwordHasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, hashSize, sha512.New)
}
