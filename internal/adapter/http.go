// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpVaultClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVaultClient builds a [VaultClient] for the server at cfg.ServerURL.
// A bare host:port is accepted and gets the http scheme.
func NewHTTPVaultClient(cfg config.Client, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpVaultClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultClient) InitDB(ctx context.Context) error {
	return h.send(h.client.R().SetContext(ctx), resty.MethodPost, "/api/init-db", "init db")
}

func (h *httpVaultClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	err := h.send(h.client.R().SetContext(ctx).SetResult(&out), resty.MethodGet, "/api/version", "version")
	return out, err
}

func (h *httpVaultClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var out models.RegisterResponse
	err := h.send(h.client.R().SetContext(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/register", "register")
	return out.UserID, err
}

func (h *httpVaultClient) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	err := h.send(h.client.R().SetContext(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/login", "login")
	return out, err
}

func (h *httpVaultClient) ListSecrets(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	var out models.SecretsResponse
	err := h.send(h.owned(ctx, userID).SetResult(&out), resty.MethodGet, "/api/passwords", "list passwords")
	return out.Passwords, err
}

func (h *httpVaultClient) AddSecret(ctx context.Context, req models.AddSecretRequest) (string, error) {
	var out models.SecretCreatedResponse
	err := h.send(h.client.R().SetContext(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/passwords", "add password")
	return out.PasswordID, err
}

func (h *httpVaultClient) UpdateSecret(ctx context.Context, update models.SecretRecordUpdate) error {
	req := h.owned(ctx, update.UserID).
		SetPathParam("id", update.ID).
		SetBody(update)
	return h.send(req, resty.MethodPut, "/api/passwords/{id}", "update password")
}

func (h *httpVaultClient) DeleteSecret(ctx context.Context, id, userID string) error {
	return h.send(h.owned(ctx, userID).SetPathParam("id", id), resty.MethodDelete, "/api/passwords/{id}", "delete password")
}

func (h *httpVaultClient) PurgeSecret(ctx context.Context, id, userID string) error {
	return h.send(h.owned(ctx, userID).SetPathParam("id", id), resty.MethodDelete, "/api/passwords/{id}/permanent", "purge password")
}

func (h *httpVaultClient) RestoreSecret(ctx context.Context, id, userID string) error {
	req := h.client.R().SetContext(ctx).
		SetPathParam("id", id).
		SetBody(models.OwnerRequest{UserID: userID})
	return h.send(req, resty.MethodPost, "/api/passwords/{id}/restore", "restore password")
}

func (h *httpVaultClient) SetFavorite(ctx context.Context, id, userID string, favorite bool) error {
	req := h.client.R().SetContext(ctx).
		SetPathParam("id", id).
		SetBody(models.FavoriteRequest{UserID: userID, Favorite: &favorite})
	return h.send(req, resty.MethodPatch, "/api/passwords/{id}/favorite", "set favorite")
}

func (h *httpVaultClient) ListTrash(ctx context.Context, userID string) ([]models.SecretRecord, error) {
	var out models.SecretsResponse
	err := h.send(h.owned(ctx, userID).SetResult(&out), resty.MethodGet, "/api/trash", "list trash")
	return out.Passwords, err
}

func (h *httpVaultClient) EmptyTrash(ctx context.Context, userID string) error {
	return h.send(h.owned(ctx, userID), resty.MethodDelete, "/api/trash", "empty trash")
}

func (h *httpVaultClient) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	var out models.CategoriesResponse
	err := h.send(h.owned(ctx, userID).SetResult(&out), resty.MethodGet, "/api/categories", "list categories")
	return out.Categories, err
}

func (h *httpVaultClient) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (string, error) {
	var out models.CategoryCreatedResponse
	err := h.send(h.client.R().SetContext(ctx).SetBody(req).SetResult(&out), resty.MethodPost, "/api/categories", "create category")
	return out.CategoryID, err
}

func (h *httpVaultClient) UpdateCategory(ctx context.Context, update models.CategoryUpdate) error {
	req := h.owned(ctx, update.UserID).
		SetPathParam("id", update.ID).
		SetBody(update)
	return h.send(req, resty.MethodPut, "/api/categories/{id}", "update category")
}

func (h *httpVaultClient) DeleteCategory(ctx context.Context, id, userID string) error {
	return h.send(h.owned(ctx, userID).SetPathParam("id", id), resty.MethodDelete, "/api/categories/{id}", "delete category")
}

// owned starts a request carrying the owner id in the userId query parameter.
func (h *httpVaultClient) owned(ctx context.Context, userID string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetQueryParam("userId", userID)
}

func (h *httpVaultClient) send(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}

	h.logger.Debug().
		Str("func", "*httpVaultClient.send").
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(utils.HeaderTraceID)).
		Msg("api call")

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
