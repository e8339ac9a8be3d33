// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", result.UserID).Msg("user registered")
	writeAuthResult(w, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Debug().Err(err).Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.UserID).Msg("user logged in")
	writeAuthResult(w, result, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, profile, http.StatusOK)
}

// writeAuthResult sends the token both in the body and as a bearer
// "Authorization" header.
func writeAuthResult(w http.ResponseWriter, result models.AuthResult, status int) {
	w.Header().Set(utils.AuthorizationHeader, utils.BearerValue(result.Token))
	_ = utils.WriteResponse(w, models.Response{
		Success: true,
		Token:   result.Token,
		UserID:  result.UserID,
	}, status)
}
