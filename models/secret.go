// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecretRecord is a stored credential owned by an account.
//
// The Password field holds ciphertext while the record travels between the
// store and the service layer and plaintext once the service has decrypted
// it for the owner.
type SecretRecord struct {
	// ID is the opaque unique identifier (UUID) of the record.
	ID string `db:"id" json:"id"`

	// UserID references the owning account.
	UserID string `db:"user_id" json:"userId"`

	// Title is the human-readable label of the credential (e.g. "GitHub").
	Title string `db:"title" json:"title"`

	// Username is the login stored for the credential.
	Username string `db:"username" json:"username"`

	// Password is the secret value, see the type doc for its two states.
	Password string `db:"password" json:"password"`

	// URL is the optional address the credential belongs to.
	URL *string `db:"url" json:"url"`

	// Notes are optional free-form notes.
	Notes *string `db:"notes" json:"notes"`

	// CategoryID optionally references a category of the same owner.
	CategoryID *string `db:"category_id" json:"category"`

	// Favorite marks the record as a favorite.
	Favorite bool `db:"favorite" json:"favorite"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// DeletedAt is the soft-delete marker. A nil value means the record is
	// active, a non-nil value means it sits in the trash.
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt"`
}

// TableName returns the name of the database table
// associated with the SecretRecord model.
func (s SecretRecord) TableName() string {
	return "passwords"
}

// IsActive reports whether the record is not in the trash.
func (s SecretRecord) IsActive() bool {
	return s.DeletedAt == nil
}

// SecretRecordUpdate is a partial update of a record.
// Only non-nil fields are written; UpdatedAt is always bumped.
type SecretRecordUpdate struct {
	ID     string `json:"-"`
	UserID string `json:"userId"`

	Title      *string `json:"title,omitempty"`
	Username   *string `json:"username,omitempty"`
	Password   *string `json:"password,omitempty"`
	URL        *string `json:"url,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CategoryID *string `json:"category,omitempty"`
	Favorite   *bool   `json:"favorite,omitempty"`
}

// IsEmpty reports whether the update carries no field besides the identity.
func (u SecretRecordUpdate) IsEmpty() bool {
	return u.Title == nil && u.Username == nil && u.Password == nil &&
		u.URL == nil && u.Notes == nil && u.CategoryID == nil && u.Favorite == nil
}
