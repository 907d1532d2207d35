// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is cancelled. It returns the first error that
	// stopped the listener or the shutdown error.
	Run(ctx context.Context) error
}
