// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-shape errors detected before a service is called.
var (
	ErrInvalidJSON   = errors.New("invalid JSON was passed")
	ErrMissingOwner  = errors.New("userId is required")
	ErrMissingPathID = errors.New("id path parameter is required")
)
