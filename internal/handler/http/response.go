// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// writeResponse writes body as JSON with the given status.
func writeResponse(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeResponse").Msg("error writing response")
	}
}

// writeMessage writes a success envelope carrying message.
func writeMessage(w http.ResponseWriter, r *http.Request, message string) {
	writeResponse(w, r, models.MessageResponse{Status: models.StatusSuccess, Message: message}, http.StatusOK)
}

// writeFailure writes an error envelope with an explicit status.
func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeResponse(w, r, models.MessageResponse{Status: models.StatusError, Message: message}, status)
}

// writeError classifies err, logs it once and writes the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", op).Int("status", status).Msg("request failed")

	writeFailure(w, r, status, messageFromError(err, status))
}

// writeMatched answers a boolean service result: success with okMessage, or
// 404 with notFoundMessage.
func writeMatched(w http.ResponseWriter, r *http.Request, matched bool, okMessage, notFoundMessage string) {
	if !matched {
		writeFailure(w, r, http.StatusNotFound, notFoundMessage)
		return
	}
	writeMessage(w, r, okMessage)
}
