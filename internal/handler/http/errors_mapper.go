// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// errorStatuses is checked in order and the first match wins. Server-side
// failures come first so their details never reach a 4xx message.
var errorStatuses = []struct {
	err    error
	status int
}{
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{crypto.ErrDecryption, http.StatusInternalServerError},

	{service.ErrWrongPassword, http.StatusUnauthorized},

	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingOwner, http.StatusBadRequest},
	{ErrMissingPathID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{validators.ErrUnsupportedType, http.StatusBadRequest},
	{store.ErrAccountAlreadyExists, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError is the client-facing text for err. Server-side failures
// are reported generically; their details stay in the log.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgInternalServerError
	}
	return err.Error()
}
