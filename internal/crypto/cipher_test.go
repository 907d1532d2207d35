// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey  = bytes.Repeat([]byte{0x42}, KeySize)
	otherKey = bytes.Repeat([]byte{0x24}, KeySize)
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	for _, plaintext := range []string{"secret123", "", "pässwörd ✓", strings.Repeat("x", 4096)} {
		ct, err := Encrypt(plaintext, testKey)
		require.NoError(t, err)

		pt, err := Decrypt(ct, testKey)
		require.NoError(t, err)
		assert.Equal(t, plaintext, pt)
	}
}

func TestEncrypt_Format(t *testing.T) {
	ct, err := Encrypt("secret123", testKey)
	require.NoError(t, err)

	_, err = hex.DecodeString(ct)
	require.NoError(t, err, "ciphertext must be hex")
	// iv (16 bytes) + plaintext (9 bytes) + gcm tag (16 bytes)
	assert.Len(t, ct, 2*(IVSize+9+16))
	assert.NotContains(t, ct, hex.EncodeToString([]byte("secret123")))
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	a, err := Encrypt("same", testKey)
	require.NoError(t, err)
	b, err := Encrypt("same", testKey)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a[:ivHexLen], b[:ivHexLen])
}

func TestDecrypt_WrongKey(t *testing.T) {
	ct, err := Encrypt("secret123", testKey)
	require.NoError(t, err)

	_, err = Decrypt(ct, otherKey)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	valid, err := Encrypt("secret123", testKey)
	require.NoError(t, err)

	tampered := []byte(valid)
	if tampered[len(tampered)-1] == '0' {
		tampered[len(tampered)-1] = '1'
	} else {
		tampered[len(tampered)-1] = '0'
	}

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "shorter than iv", in: valid[:20]},
		{name: "iv only", in: valid[:ivHexLen]},
		{name: "non-hex iv", in: strings.Repeat("z", ivHexLen) + valid[ivHexLen:]},
		{name: "non-hex payload", in: valid[:ivHexLen] + "not-hex"},
		{name: "odd payload length", in: valid[:len(valid)-1]},
		{name: "tampered tag", in: string(tampered)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.in, testKey)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestInvalidKeyLength(t *testing.T) {
	_, err := Encrypt("x", []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = Decrypt("00", make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewCredentialCipher(t *testing.T) {
	hexKey := hex.EncodeToString(testKey)

	c, err := NewCredentialCipher(hexKey)
	require.NoError(t, err)

	ct, err := c.Encrypt("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", ct)

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "secret123", pt)

	// the bound key is the same one the package functions use
	pt, err = Decrypt(ct, testKey)
	require.NoError(t, err)
	assert.Equal(t, "secret123", pt)
}

func TestNewCredentialCipher_RejectsBadKeys(t *testing.T) {
	for _, k := range []string{"", "abcd", strings.Repeat("g", 64), hex.EncodeToString(make([]byte, 16))} {
		_, err := NewCredentialCipher(k)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", k)
	}
}
