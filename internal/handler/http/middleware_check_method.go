// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi calls it only when the path is registered but the method is not. It
// answers 404 with the error envelope instead of chi's bare 405, so the
// methods a path supports are not disclosed.
//
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
}
