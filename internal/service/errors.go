// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrNilDependency       = errors.New("service dependency is nil")
)
