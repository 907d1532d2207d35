// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestListSecrets(t *testing.T) {
	t.Run("owner from query", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.listFn = func(_ context.Context, userID string) ([]models.SecretRecord, error) {
			assert.Equal(t, testOwner, userID)
			return []models.SecretRecord{{ID: "p1", UserID: userID, Title: "GitHub", Password: "plain"}}, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodGet, "/api/passwords?userId="+testOwner, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[models.SecretsResponse](t, rec)
		assert.Equal(t, models.StatusSuccess, body.Status)
		require.Len(t, body.Passwords, 1)
		assert.Equal(t, "plain", body.Passwords[0].Password)
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		rec := doRequest(t, newTestServices().router(), http.MethodGet, "/api/passwords", nil, "X-User-ID", testOwner)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success","passwords":[]}`, rec.Body.String())
	})

	t.Run("missing owner", func(t *testing.T) {
		rec := doRequest(t, newTestServices().router(), http.MethodGet, "/api/passwords", nil)

		assertEnvelope(t, rec, http.StatusBadRequest, models.StatusError, ErrMissingOwner.Error())
	})

	t.Run("decryption failure", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.listFn = func(_ context.Context, _ string) ([]models.SecretRecord, error) {
			return nil, fmt.Errorf("record p1: %w", crypto.ErrDecryption)
		}

		rec := doRequest(t, svcs.router(), http.MethodGet, "/api/passwords", nil, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusInternalServerError, models.StatusError, "internal server error")
	})
}

func TestAddSecret(t *testing.T) {
	t.Run("created with owner from body", func(t *testing.T) {
		svcs := newTestServices()
		var got models.AddSecretRequest
		svcs.secrets.addFn = func(_ context.Context, req models.AddSecretRequest) (string, error) {
			got = req
			return "p1", nil
		}

		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/passwords?userId=other",
			`{"userId":"`+testOwner+`","title":"GitHub","username":"alice","password":"plain","category":"c1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody[models.SecretCreatedResponse](t, rec)
		assert.Equal(t, "p1", body.PasswordID)
		assert.Equal(t, testOwner, got.UserID)
		assert.Equal(t, "GitHub", got.Title)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, "c1", *got.CategoryID)
	})

	t.Run("owner falls back to header", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.addFn = func(_ context.Context, req models.AddSecretRequest) (string, error) {
			assert.Equal(t, testOwner, req.UserID)
			return "p1", nil
		}

		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/passwords",
			models.AddSecretRequest{Title: "GitHub", Username: "alice", Password: "plain"}, "X-User-ID", testOwner)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("foreign category", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.addFn = func(_ context.Context, _ models.AddSecretRequest) (string, error) {
			return "", fmt.Errorf("%w: c9", store.ErrCategoryNotFound)
		}

		rec := doRequest(t, svcs.router(), http.MethodPost, "/api/passwords",
			models.AddSecretRequest{UserID: testOwner, Title: "GitHub", Password: "plain"})

		assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, "category was not found: c9")
	})
}

func TestUpdateSecret(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svcs := newTestServices()
		var got models.SecretRecordUpdate
		svcs.secrets.updateFn = func(_ context.Context, update models.SecretRecordUpdate) (bool, error) {
			got = update
			return true, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodPut, "/api/passwords/p1",
			`{"title":"GitLab","password":"new"}`, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusOK, models.StatusSuccess, "Password updated")
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, testOwner, got.UserID)
		require.NotNil(t, got.Title)
		assert.Equal(t, "GitLab", *got.Title)
		assert.Nil(t, got.Username)
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, newTestServices().router(), http.MethodPut, "/api/passwords/p1",
			`{"title":"GitLab"}`, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, "Password not found")
	})

	t.Run("nothing to update", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.updateFn = func(_ context.Context, _ models.SecretRecordUpdate) (bool, error) {
			return false, service.ErrNoFieldsToUpdate
		}

		rec := doRequest(t, svcs.router(), http.MethodPut, "/api/passwords/p1", `{}`, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusBadRequest, models.StatusError, service.ErrNoFieldsToUpdate.Error())
	})
}

func TestSecretLifecycleRoutes(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		wire        func(s *mockSecretService, matched bool)
		okMsg       string
		notFoundMsg string
	}{
		{
			name:   "soft delete",
			method: http.MethodDelete,
			target: "/api/passwords/p1",
			wire: func(s *mockSecretService, matched bool) {
				s.softDeleteFn = func(_ context.Context, id, userID string) (bool, error) {
					return matched && id == "p1" && userID == testOwner, nil
				}
			},
			okMsg:       "Moved to trash",
			notFoundMsg: "Password not found",
		},
		{
			name:   "hard delete",
			method: http.MethodDelete,
			target: "/api/passwords/p1/permanent",
			wire: func(s *mockSecretService, matched bool) {
				s.hardDeleteFn = func(_ context.Context, id, userID string) (bool, error) {
					return matched && id == "p1" && userID == testOwner, nil
				}
			},
			okMsg:       "Permanently deleted",
			notFoundMsg: "Not found in trash",
		},
		{
			name:   "restore",
			method: http.MethodPost,
			target: "/api/passwords/p1/restore",
			wire: func(s *mockSecretService, matched bool) {
				s.restoreFn = func(_ context.Context, id, userID string) (bool, error) {
					return matched && id == "p1" && userID == testOwner, nil
				}
			},
			okMsg:       "Password restored",
			notFoundMsg: "Password not found in trash",
		},
	}

	for _, tc := range tests {
		for _, matched := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s matched=%t", tc.name, matched), func(t *testing.T) {
				svcs := newTestServices()
				tc.wire(svcs.secrets, matched)

				rec := doRequest(t, svcs.router(), tc.method, tc.target, models.OwnerRequest{UserID: testOwner})

				if matched {
					assertEnvelope(t, rec, http.StatusOK, models.StatusSuccess, tc.okMsg)
				} else {
					assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, tc.notFoundMsg)
				}
			})
		}

		t.Run(tc.name+" missing owner", func(t *testing.T) {
			rec := doRequest(t, newTestServices().router(), tc.method, tc.target, nil)

			assertEnvelope(t, rec, http.StatusBadRequest, models.StatusError, ErrMissingOwner.Error())
		})
	}
}

func TestToggleFavorite(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		svcs := newTestServices()
		var gotFavorite bool
		svcs.secrets.toggleFavoriteFn = func(_ context.Context, id, userID string, favorite bool) (bool, error) {
			assert.Equal(t, "p1", id)
			assert.Equal(t, testOwner, userID)
			gotFavorite = favorite
			return true, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodPatch, "/api/passwords/p1/favorite",
			`{"userId":"`+testOwner+`","favorite":true}`)

		assertEnvelope(t, rec, http.StatusOK, models.StatusSuccess, "Favorite status updated")
		assert.True(t, gotFavorite)
	})

	t.Run("flag missing", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.toggleFavoriteFn = func(_ context.Context, _, _ string, _ bool) (bool, error) {
			t.Fatal("service must not be called")
			return false, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodPatch, "/api/passwords/p1/favorite",
			models.OwnerRequest{UserID: testOwner})

		assertEnvelope(t, rec, http.StatusBadRequest, models.StatusError, "")
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(t, newTestServices().router(), http.MethodPatch, "/api/passwords/p1/favorite",
			`{"favorite":false}`, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, "Password not found")
	})
}

func TestTrash(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.listTrashFn = func(_ context.Context, userID string) ([]models.SecretRecord, error) {
			assert.Equal(t, testOwner, userID)
			return []models.SecretRecord{{ID: "p1", Title: "Old"}}, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodGet, "/api/trash?userId="+testOwner, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[models.SecretsResponse](t, rec)
		require.Len(t, body.Passwords, 1)
		assert.Equal(t, "Old", body.Passwords[0].Title)
	})

	t.Run("empty", func(t *testing.T) {
		svcs := newTestServices()
		svcs.secrets.emptyTrashFn = func(_ context.Context, userID string) (bool, error) {
			return userID == testOwner, nil
		}

		rec := doRequest(t, svcs.router(), http.MethodDelete, "/api/trash", models.OwnerRequest{UserID: testOwner})

		assertEnvelope(t, rec, http.StatusOK, models.StatusSuccess, "Trash emptied")
	})

	t.Run("empty with nothing in trash", func(t *testing.T) {
		rec := doRequest(t, newTestServices().router(), http.MethodDelete, "/api/trash", nil, "X-User-ID", testOwner)

		assertEnvelope(t, rec, http.StatusNotFound, models.StatusError, "No passwords in trash")
	})
}
