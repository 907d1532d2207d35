// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope status values. Every API response carries one of them.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MessageResponse is the generic envelope with a human-readable message.
// It is also the shape of every error response.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Status string `json:"status"`
	UserID string `json:"userId"`
}

// LoginResponse is returned after a successful login. It contains the
// account profile together with the account's active records and categories.
type LoginResponse struct {
	Status     string         `json:"status"`
	User       AccountProfile `json:"user"`
	Passwords  []SecretRecord `json:"passwords"`
	Categories []Category     `json:"categories"`
}

// SecretsResponse wraps a list of decrypted records.
type SecretsResponse struct {
	Status    string         `json:"status"`
	Passwords []SecretRecord `json:"passwords"`
}

// SecretCreatedResponse is returned after a record was added.
type SecretCreatedResponse struct {
	Status     string `json:"status"`
	PasswordID string `json:"passwordId"`
}

// CategoriesResponse wraps a list of categories.
type CategoriesResponse struct {
	Status     string     `json:"status"`
	Categories []Category `json:"categories"`
}

// CategoryCreatedResponse is returned after a category was created.
type CategoryCreatedResponse struct {
	Status     string `json:"status"`
	CategoryID string `json:"categoryId"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Date    string `json:"buildDate,omitempty"`
	Commit  string `json:"buildCommit,omitempty"`
}
