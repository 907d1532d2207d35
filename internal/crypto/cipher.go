// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the credential cipher (AES-256-GCM with a
// hex-prefixed IV) and salted PBKDF2 password hashing.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the per-ciphertext nonce length in bytes.
	IVSize = 16

	ivHexLen = IVSize * 2
)

// credentialCipher is the private implementation of [CredentialCipher].
type credentialCipher struct {
	key []byte
}

// NewCredentialCipher binds a hex-encoded 256-bit key. It returns
// ErrInvalidKey unless hexKey decodes to exactly [KeySize] bytes.
func NewCredentialCipher(hexKey string) (CredentialCipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	return &credentialCipher{key: key}, nil
}

func (c *credentialCipher) Encrypt(plaintext string) (string, error) {
	return Encrypt(plaintext, c.key)
}

func (c *credentialCipher) Decrypt(ciphertext string) (string, error) {
	return Decrypt(ciphertext, c.key)
}

// Encrypt seals plaintext with key under a fresh random IV and returns
// hex(iv) || hex(ciphertext+tag).
func Encrypt(plaintext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, IVSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	return hex.EncodeToString(iv) + hex.EncodeToString(sealed), nil
}

// Decrypt reverses [Encrypt]. Every failure is reported as ErrDecryption
// except an invalid key length, which is ErrInvalidKey.
func Decrypt(ciphertext string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(ciphertext) < ivHexLen {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	iv, err := hex.DecodeString(ciphertext[:ivHexLen])
	if err != nil {
		return "", fmt.Errorf("%w: malformed iv", ErrDecryption)
	}

	sealed, err := hex.DecodeString(ciphertext[ivHexLen:])
	if err != nil {
		return "", fmt.Errorf("%w: malformed payload", ErrDecryption)
	}

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
