// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CredentialCipher encrypts and decrypts stored credential secrets with a
// single process-wide key.
//
// Ciphertexts are hex strings: the first 32 characters encode the random
// 16-byte IV, the rest the AES-256-GCM sealed payload (ciphertext and tag).
type CredentialCipher interface {
	// Encrypt seals plaintext under a fresh random IV. Encrypting the same
	// plaintext twice yields different ciphertexts.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt with the same key.
	// Any malformed input or authentication failure yields ErrDecryption.
	Decrypt(ciphertext string) (string, error)
}

// PasswordHasher derives and verifies salted account password hashes.
type PasswordHasher interface {
	// HashPassword derives the hex-encoded hash of password. When salt is
	// empty a new random salt is generated. The salt used is returned.
	HashPassword(password, salt string) (hash string, usedSalt string, err error)

	// VerifyPassword reports whether candidate hashes to storedHash under
	// storedSalt. Malformed stored values never verify.
	VerifyPassword(storedHash, storedSalt, candidate string) bool
}
