// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(MinIterations)
	require.NoError(t, err)
	return h
}

func TestHashPassword_GeneratesSalt(t *testing.T) {
	h := newTestHasher(t)

	hash, salt, err := h.HashPassword("hunter2", "")
	require.NoError(t, err)

	rawSalt, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, saltSize)

	rawHash, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawHash, hashSize)

	_, salt2, err := h.HashPassword("hunter2", "")
	require.NoError(t, err)
	assert.NotEqual(t, salt, salt2)
}

func TestHashPassword_DeterministicForSalt(t *testing.T) {
	h := newTestHasher(t)

	a, salt, err := h.HashPassword("hunter2", "00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	assert.Equal(t, "00112233445566778899aabbccddeeff", salt)

	b, _, err := h.HashPassword("hunter2", salt)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHashPassword_IterationsChangeHash(t *testing.T) {
	salt := "00112233445566778899aabbccddeeff"
	fast := newTestHasher(t)
	slow, err := NewPasswordHasher(MinIterations + 1)
	require.NoError(t, err)

	a, _, err := fast.HashPassword("hunter2", salt)
	require.NoError(t, err)
	b, _, err := slow.HashPassword("hunter2", salt)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_BadSalt(t *testing.T) {
	h := newTestHasher(t)

	_, _, err := h.HashPassword("hunter2", "not-hex")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, salt, err := h.HashPassword("hunter2", "")
	require.NoError(t, err)

	assert.True(t, h.VerifyPassword(hash, salt, "hunter2"))
	assert.False(t, h.VerifyPassword(hash, salt, "hunter3"))
	assert.False(t, h.VerifyPassword(hash, salt, ""))
}

func TestVerifyPassword_MalformedStoredValues(t *testing.T) {
	h := newTestHasher(t)
	hash, salt, err := h.HashPassword("hunter2", "")
	require.NoError(t, err)

	assert.False(t, h.VerifyPassword("zz", salt, "hunter2"))
	assert.False(t, h.VerifyPassword(hash[:10], salt, "hunter2"))
	assert.False(t, h.VerifyPassword(hash, "", "hunter2"))
	assert.False(t, h.VerifyPassword(hash, "xyz", "hunter2"))
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultIterations, h.(*passwordHasher).iterations)

	_, err = NewPasswordHasher(MinIterations - 1)
	assert.ErrorIs(t, err, ErrInvalidIterations)
}
