// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("user id is required")
	ErrInvalidRecordID   = errors.New("record id is required")
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrInvalidColor      = errors.New("color must be in #rrggbb form")
	ErrEmptyFavorite     = errors.New("favorite flag is required")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)
