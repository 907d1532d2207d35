// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGetServerVersion(t *testing.T) {
	svcs := newTestServices()
	svcs.appInfo.version = "1.4.0"
	svcs.appInfo.buildInfo = models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

	rec := doRequest(t, svcs.router(), http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decodeBody[models.VersionResponse](t, rec)
	assert.Equal(t, models.VersionResponse{
		Status:  models.StatusSuccess,
		Version: "1.4.0",
		Date:    "2026-10-01",
		Commit:  "abc123",
	}, body)
}

func TestGetServerVersion_NoOwnerRequired(t *testing.T) {
	rec := doRequest(t, newTestServices().router(), http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
