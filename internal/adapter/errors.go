// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from the HTTP status of a failed API call. The server's
// envelope message is appended to the wrapped error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("invalid credentials")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty server address")
)
