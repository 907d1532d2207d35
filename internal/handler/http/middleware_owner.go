// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

const ownerQueryParam = "userId"

// withOwner puts the owner id carried outside the body into the request
// context: the userId query parameter first, then the X-User-ID header.
// Handlers still prefer a userId found in the JSON body.
func withOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get(ownerQueryParam)
		if owner == "" {
			owner = r.Header.Get(utils.HeaderUserID)
		}

		if owner != "" {
			r = r.WithContext(utils.WithUserID(r.Context(), owner))
		}

		next.ServeHTTP(w, r)
	})
}

// resolveOwner returns fromBody when set and the context owner otherwise.
func resolveOwner(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	owner, _ := utils.GetUserIDFromContext(r.Context())
	return owner
}
