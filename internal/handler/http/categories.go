// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	owner := resolveOwner(r, "")
	if owner == "" {
		writeError(w, r, "*Handler.listCategories", ErrMissingOwner)
		return
	}

	categories, err := h.services.CategoryService.ListForOwner(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.listCategories", err)
		return
	}

	writeResponse(w, r, models.CategoriesResponse{Status: models.StatusSuccess, Categories: categories}, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.createCategory", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	req.UserID = resolveOwner(r, req.UserID)

	id, err := h.services.CategoryService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createCategory", err)
		return
	}

	writeResponse(w, r, models.CategoryCreatedResponse{Status: models.StatusSuccess, CategoryID: id}, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var update models.CategoryUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, "*Handler.updateCategory", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.UserID = resolveOwner(r, update.UserID)

	ok, err := h.services.CategoryService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, "*Handler.updateCategory", err)
		return
	}

	writeMatched(w, r, ok, app.MsgCategoryUpdated, app.MsgCategoryNotFound)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, owner, ok := h.recordTarget(w, r, "*Handler.deleteCategory")
	if !ok {
		return
	}

	matched, err := h.services.CategoryService.Delete(r.Context(), id, owner)
	if err != nil {
		writeError(w, r, "*Handler.deleteCategory", err)
		return
	}

	writeMatched(w, r, matched, app.MsgCategoryDeleted, app.MsgCategoryNotFound)
}
