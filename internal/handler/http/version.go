// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService.GetBuildInfo(ctx)

	writeResponse(w, r, models.VersionResponse{
		Status:  models.StatusSuccess,
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
