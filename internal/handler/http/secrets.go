// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	owner := resolveOwner(r, "")
	if owner == "" {
		writeError(w, r, "*Handler.listSecrets", ErrMissingOwner)
		return
	}

	passwords, err := h.services.SecretService.List(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.listSecrets", err)
		return
	}

	writeResponse(w, r, models.SecretsResponse{Status: models.StatusSuccess, Passwords: passwords}, http.StatusOK)
}

func (h *Handler) addSecret(w http.ResponseWriter, r *http.Request) {
	var req models.AddSecretRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.addSecret", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	req.UserID = resolveOwner(r, req.UserID)

	id, err := h.services.SecretService.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.addSecret", err)
		return
	}

	writeResponse(w, r, models.SecretCreatedResponse{Status: models.StatusSuccess, PasswordID: id}, http.StatusCreated)
}

func (h *Handler) updateSecret(w http.ResponseWriter, r *http.Request) {
	var update models.SecretRecordUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateSecret", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.UserID = resolveOwner(r, update.UserID)

	ok, err := h.services.SecretService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, "*Handler.updateSecret", err)
		return
	}

	writeMatched(w, r, ok, app.MsgPasswordUpdated, app.MsgPasswordNotFound)
}

func (h *Handler) softDeleteSecret(w http.ResponseWriter, r *http.Request) {
	id, owner, ok := h.recordTarget(w, r, "*Handler.softDeleteSecret")
	if !ok {
		return
	}

	matched, err := h.services.SecretService.SoftDelete(r.Context(), id, owner)
	if err != nil {
		writeError(w, r, "*Handler.softDeleteSecret", err)
		return
	}

	writeMatched(w, r, matched, app.MsgMovedToTrash, app.MsgPasswordNotFound)
}

func (h *Handler) hardDeleteSecret(w http.ResponseWriter, r *http.Request) {
	id, owner, ok := h.recordTarget(w, r, "*Handler.hardDeleteSecret")
	if !ok {
		return
	}

	matched, err := h.services.SecretService.HardDelete(r.Context(), id, owner)
	if err != nil {
		writeError(w, r, "*Handler.hardDeleteSecret", err)
		return
	}

	writeMatched(w, r, matched, app.MsgPermanentlyDeleted, app.MsgNotFoundInTrash)
}

func (h *Handler) restoreSecret(w http.ResponseWriter, r *http.Request) {
	id, owner, ok := h.recordTarget(w, r, "*Handler.restoreSecret")
	if !ok {
		return
	}

	matched, err := h.services.SecretService.Restore(r.Context(), id, owner)
	if err != nil {
		writeError(w, r, "*Handler.restoreSecret", err)
		return
	}

	writeMatched(w, r, matched, app.MsgPasswordRestored, app.MsgPasswordNotFoundInTrash)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.toggleFavorite", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	owner := resolveOwner(r, req.UserID)
	if owner == "" {
		writeError(w, r, "*Handler.toggleFavorite", ErrMissingOwner)
		return
	}
	if req.Favorite == nil {
		writeError(w, r, "*Handler.toggleFavorite", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyFavorite))
		return
	}

	matched, err := h.services.SecretService.ToggleFavorite(r.Context(), chi.URLParam(r, "id"), owner, *req.Favorite)
	if err != nil {
		writeError(w, r, "*Handler.toggleFavorite", err)
		return
	}

	writeMatched(w, r, matched, app.MsgFavoriteUpdated, app.MsgPasswordNotFound)
}

func (h *Handler) listTrash(w http.ResponseWriter, r *http.Request) {
	owner := resolveOwner(r, "")
	if owner == "" {
		writeError(w, r, "*Handler.listTrash", ErrMissingOwner)
		return
	}

	passwords, err := h.services.SecretService.ListTrash(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.listTrash", err)
		return
	}

	writeResponse(w, r, models.SecretsResponse{Status: models.StatusSuccess, Passwords: passwords}, http.StatusOK)
}

func (h *Handler) emptyTrash(w http.ResponseWriter, r *http.Request) {
	var req models.OwnerRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.emptyTrash", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	owner := resolveOwner(r, req.UserID)
	if owner == "" {
		writeError(w, r, "*Handler.emptyTrash", ErrMissingOwner)
		return
	}

	matched, err := h.services.SecretService.EmptyTrash(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.emptyTrash", err)
		return
	}

	writeMatched(w, r, matched, app.MsgTrashEmptied, app.MsgTrashIsEmpty)
}

// recordTarget extracts the {id} path parameter and the owner (optional JSON
// body, query, header). On failure the error response is already written.
func (h *Handler) recordTarget(w http.ResponseWriter, r *http.Request, op string) (id, owner string, ok bool) {
	var req models.OwnerRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, op, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return "", "", false
	}

	id = chi.URLParam(r, "id")
	if id == "" {
		writeError(w, r, op, ErrMissingPathID)
		return "", "", false
	}

	owner = resolveOwner(r, req.UserID)
	if owner == "" {
		writeError(w, r, op, ErrMissingOwner)
		return "", "", false
	}

	return id, owner, true
}
