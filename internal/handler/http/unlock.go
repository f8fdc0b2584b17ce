// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/internal/utils"
	"github.com/MKhiriev/sealed-vitae/models"
)

// unlock answers with the private view when the credential opens a payload
// and with the public view otherwise. The response does not say which.
func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := decodeUnlockRequest(r.Body)
	if err != nil {
		log.Err(err).Msg("invalid unlock request")
		writeError(w, err)
		return
	}

	view, err := h.services.UnlockService.Unlock(r.Context(), request.Credential)
	if err != nil {
		log.Err(err).Msg("unlock failed")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing unlock response")
	}
}

func (h *Handler) public(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	view, err := h.services.UnlockService.Public(r.Context())
	if err != nil {
		log.Err(err).Msg("loading public view failed")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing public response")
	}
}

func decodeUnlockRequest(body io.Reader) (models.UnlockRequest, error) {
	var request models.UnlockRequest
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.UnlockRequest{}, fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
		}
		return models.UnlockRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return request, nil
}
