// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testOwner = "0190b1f4-7c2a-7000-8000-000000000001"

// testServices holds the service fakes behind a test router.
type testServices struct {
	accounts   *mockAccountService
	secrets    *mockSecretService
	categories *mockCategoryService
	appInfo    *mockAppInfoService
	schema     *mockSchemaService
}

func newTestServices() *testServices {
	return &testServices{
		accounts:   &mockAccountService{},
		secrets:    &mockSecretService{},
		categories: &mockCategoryService{},
		appInfo:    &mockAppInfoService{version: "test-version"},
		schema:     &mockSchemaService{},
	}
}

func (s *testServices) router() http.Handler {
	h := NewHandler(&service.Services{
		AccountService:  s.accounts,
		SecretService:   s.secrets,
		CategoryService: s.categories,
		AppInfoService:  s.appInfo,
		SchemaService:   s.schema,
	}, config.Server{}, logger.Nop())

	return h.Init()
}

// doRequest sends body (marshalled to JSON unless nil) through router.
func doRequest(t *testing.T, router http.Handler, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, envelopeStatus, message string) {
	t.Helper()

	assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	body := decodeBody[models.MessageResponse](t, rec)
	assert.Equal(t, envelopeStatus, body.Status)
	if message != "" {
		assert.Equal(t, message, body.Message)
	}
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestServices().router()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/init-db"},
		{http.MethodPost, "/api/register"},
		{http.MethodPost, "/api/login"},
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/api/passwords"},
		{http.MethodPost, "/api/passwords"},
		{http.MethodPut, "/api/passwords/abc"},
		{http.MethodDelete, "/api/passwords/abc"},
		{http.MethodDelete, "/api/passwords/abc/permanent"},
		{http.MethodPost, "/api/passwords/abc/restore"},
		{http.MethodPatch, "/api/passwords/abc/favorite"},
		{http.MethodGet, "/api/trash"},
		{http.MethodDelete, "/api/trash"},
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories/abc"},
		{http.MethodDelete, "/api/categories/abc"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, nil, "X-User-ID", testOwner)

			// Fakes answer "not matched" for boolean operations, which is a
			// 404 envelope with a domain message rather than the router's.
			if rec.Code == http.StatusNotFound {
				body := decodeBody[models.MessageResponse](t, rec)
				assert.NotEqual(t, http.StatusText(http.StatusNotFound), body.Message,
					"route not registered: %s %s", tc.method, tc.path)
			}
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestServices().router()

	rec := doRequest(t, router, http.MethodGet, "/api/nonexistent", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404Envelope(t *testing.T) {
	router := newTestServices().router()

	rec := doRequest(t, router, http.MethodPatch, "/api/register", nil)

	assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, http.StatusText(http.StatusNotFound))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svcs := newTestServices()
	svcs.schema.initSchemaFn = func(_ context.Context) error {
		panic("boom")
	}

	rec := doRequest(t, svcs.router(), http.MethodPost, "/api/init-db", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_CompressesJSONResponses(t *testing.T) {
	router := newTestServices().router()

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, "Accept-Encoding", "gzip")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestInit_RequestTimeoutIsApplied(t *testing.T) {
	svcs := newTestServices()
	var deadlineSet bool
	svcs.schema.initSchemaFn = func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	}

	h := NewHandler(&service.Services{SchemaService: svcs.schema}, config.Server{RequestTimeout: time.Minute}, logger.Nop())
	rec := doRequest(t, h.Init(), http.MethodPost, "/api/init-db", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deadlineSet)
}
