// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the credentials of a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials of an existing account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AddSecretRequest describes a new secret record. Password is plaintext here;
// it is encrypted by the service before it reaches the store.
type AddSecretRequest struct {
	UserID     string  `json:"userId"`
	Title      string  `json:"title"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	URL        *string `json:"url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CategoryID *string `json:"category,omitempty"`
	Favorite   *bool   `json:"favorite,omitempty"`
}

// FavoriteRequest sets the favorite flag of a record.
type FavoriteRequest struct {
	UserID   string `json:"userId"`
	Favorite *bool  `json:"favorite"`
}

// OwnerRequest is a body that only identifies the acting account.
type OwnerRequest struct {
	UserID string `json:"userId"`
}

// CreateCategoryRequest describes a new category.
type CreateCategoryRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}
