// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/PiotMik/devops-capstone-project/internal/logger"
	"github.com/PiotMik/devops-capstone-project/internal/store"
	"github.com/PiotMik/devops-capstone-project/internal/utils"
	"github.com/PiotMik/devops-capstone-project/models"
	"github.com/go-chi/chi/v5"
)

// maxRequestBodySize caps POST and PUT bodies at 1 MiB.
const maxRequestBodySize = 1 << 20

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r).With().Str("func", "*Handler.createAccount").Logger()

	account, err := decodeAccount(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.AccountService.CreateAccount(ctx, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", created.ID).Msg("account created")

	w.Header().Set("Location", accountLocation(created.ID))
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.listAccounts").Logger()

	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	log.Debug().Int("count", len(accounts)).Msg("accounts listed")

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.getAccount").Logger()

	id, err := accountIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r).With().Str("func", "*Handler.updateAccount").Logger()

	id, err := accountIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := decodeAccount(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AccountService.UpdateAccount(r.Context(), id, account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", updated.ID).Msg("account updated")

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.deleteAccount").
		Int64("account_id", id).
		Msg("account deleted")

	w.WriteHeader(http.StatusNoContent)
}

// decodeAccount reads a single account from the request body.
func decodeAccount(w http.ResponseWriter, r *http.Request) (models.Account, error) {
	var account models.Account

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&account); err != nil {
		return models.Account{}, bodyError(err)
	}

	// The body must hold exactly one JSON value.
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return models.Account{}, bodyError(err)
		}
		return models.Account{}, fmt.Errorf("%w: unexpected data after JSON body", ErrInvalidRequestBody)
	}

	return account, nil
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}

// accountIDFromRequest parses the {id} route parameter. Ids that do not fit
// an int64 cannot exist and are reported as not found.
func accountIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: account id %q", store.ErrAccountNotFound, raw)
	}

	return id, nil
}

func accountLocation(id int64) string {
	return "/accounts/" + strconv.FormatInt(id, 10)
}
