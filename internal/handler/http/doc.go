// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON-over-HTTP API of the vault.
//
// Routes live under /api and answer with a {"status": ...} envelope. Request
// tracing, access logging, CORS, body compression and panic recovery are
// applied here before a request reaches the service layer. Errors coming
// back from services are translated to status codes by statusFromError.
package http
