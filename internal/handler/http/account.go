// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) initDB(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SchemaService.InitSchema(r.Context()); err != nil {
		writeError(w, r, "*Handler.initDB", err)
		return
	}

	writeMessage(w, r, app.MsgDatabaseInitialized)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	userID, err := h.services.AccountService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	writeResponse(w, r, models.RegisterResponse{Status: models.StatusSuccess, UserID: userID}, http.StatusCreated)
}

// login answers with the account profile plus its active records and
// categories. Unknown usernames and wrong passwords are indistinguishable.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	account, err := h.services.AccountService.Login(ctx, req)
	if errors.Is(err, store.ErrAccountNotFound) || errors.Is(err, service.ErrWrongPassword) {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.login").Msg("invalid credentials")
		writeFailure(w, r, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	passwords, err := h.services.SecretService.List(ctx, account.ID)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	categories, err := h.services.CategoryService.ListForOwner(ctx, account.ID)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	writeResponse(w, r, models.LoginResponse{
		Status:     models.StatusSuccess,
		User:       account.Profile(),
		Passwords:  passwords,
		Categories: categories,
	}, http.StatusOK)
}
