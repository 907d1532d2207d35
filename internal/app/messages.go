// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of JSON response envelopes. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

const (
	// MsgDatabaseInitialized confirms that the schema was created.
	MsgDatabaseInitialized = "Database initialized successfully"

	// MsgInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	MsgInvalidCredentials = "invalid username or password"

	// MsgInternalServerError replaces the details of every server-side
	// failure; the details are logged only.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGZipBody is returned when a gzip-encoded request body cannot
	// be decompressed.
	MsgInvalidGZipBody = "invalid gzip body"
)

// Secret record outcomes.
const (
	MsgPasswordUpdated         = "Password updated"
	MsgPasswordNotFound        = "Password not found"
	MsgMovedToTrash            = "Moved to trash"
	MsgPermanentlyDeleted      = "Permanently deleted"
	MsgNotFoundInTrash         = "Not found in trash"
	MsgPasswordRestored        = "Password restored"
	MsgPasswordNotFoundInTrash = "Password not found in trash"
	MsgFavoriteUpdated         = "Favorite status updated"
	MsgTrashEmptied            = "Trash emptied"
	MsgTrashIsEmpty            = "No passwords in trash"
)

// Category outcomes.
const (
	MsgCategoryUpdated  = "Category updated"
	MsgCategoryDeleted  = "Category deleted"
	MsgCategoryNotFound = "Category not found"
)
