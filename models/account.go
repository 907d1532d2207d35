// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a registered vault owner.
// PasswordHash and Salt are credential material and must never leave the
// service layer; use [Account.Profile] when the account is sent to a client.
type Account struct {
	// ID is the opaque unique identifier (UUID) of the account.
	ID string `db:"id" json:"id"`

	// Username is the unique login name.
	Username string `db:"username" json:"username"`

	// Email is the unique contact address.
	Email string `db:"email" json:"email"`

	// PasswordHash is the hex-encoded PBKDF2 hash of the account password.
	PasswordHash string `db:"password_hash" json:"-"`

	// Salt is the hex-encoded random salt PasswordHash was derived with.
	Salt string `db:"salt" json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// LastLogin is the timestamp of the last successful login, nil until the
	// first one.
	LastLogin *time.Time `db:"last_login" json:"lastLogin,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// Profile returns the client-safe projection of the account.
func (a Account) Profile() AccountProfile {
	return AccountProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}

// AccountProfile is the shape of an account returned over the API.
// It intentionally has no credential fields.
type AccountProfile struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
