// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an account with the same
	// username or email already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCategoryNotFound is returned when a referenced category does not
	// exist or belongs to another account.
	ErrCategoryNotFound = errors.New("category was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when result rows cannot be mapped onto
	// the destination structs.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned for a driver other than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
