// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/service"
	"github.com/PiotMik/devops-capstone-project/internal/store"
	"github.com/PiotMik/devops-capstone-project/internal/utils"
	"github.com/PiotMik/devops-capstone-project/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:   http.StatusBadRequest,
	ErrRequestBodyTooLarge:  http.StatusRequestEntityTooLarge,
	ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrRouteNotFound:        http.StatusNotFound,

	service.ErrInvalidAccount: http.StatusBadRequest,

	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrInvalidAccount:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err with the request logger and answers with an
// [models.ErrorResponse]. Details of 5xx errors are not exposed to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
