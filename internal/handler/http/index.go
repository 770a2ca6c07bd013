// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/utils"
	"github.com/PiotMik/devops-capstone-project/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.index").Msg("error writing response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthStatus{Status: models.HealthStatusOK}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}
