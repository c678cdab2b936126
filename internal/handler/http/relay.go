// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-clip-keeper/internal/app"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/utils"
	"github.com/MKhiriev/go-clip-keeper/models"
)

// maxDecryptBody bounds the optional JSON body of a decrypt request.
const maxDecryptBody = 1 << 20

// decrypt handles POST /relay/decrypt.
//
// The body is optional. When it carries {"data": "..."} that payload is
// relayed as is; otherwise the relay reads the system clipboard. The reply
// is always 200 with a DecryptResult, failures included, so the caller only
// has to inspect the success flag.
func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxDecryptBody)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("invalid decrypt request body")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result := h.services.Cycle.DecryptClipboard(r.Context(), req.Data)
	if !result.Success {
		log.Info().Str("reason", result.Error).Msg("decrypt failed")
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write decrypt result")
	}
}

// sanitize handles POST /relay/sanitize. The pass runs detached from the
// request and the caller gets 202 immediately.
func (h *Handler) sanitize(w http.ResponseWriter, r *http.Request) {
	h.services.Cycle.ScheduleSanitize(r.Context())

	_, _ = utils.WriteJSON(w, map[string]string{"message": app.MsgSanitizeScheduled}, http.StatusAccepted)
}

// status handles GET /relay/status.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	report := h.services.Status.Check(r.Context())

	if _, err := utils.WriteJSON(w, report, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write status report")
	}
}
