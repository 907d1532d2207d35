// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer. Validation is structural: required fields, lengths and formats.
// Ownership and existence checks belong to the services.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates an arbitrary request value. Optional field names
// restrict validation to that subset; without them a default set for the
// value's type is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
