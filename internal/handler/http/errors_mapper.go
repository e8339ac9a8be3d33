// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/voyager/internal/app"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

const serverErrorMessage = app.MsgServerError

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrRequestTooLarge:             http.StatusRequestEntityTooLarge,
	ErrEmptyAuthorizationHeader:    http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:  http.StatusUnauthorized,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUserAlreadyExists:   http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid:               http.StatusUnauthorized,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusUnauthorized,

	errRouteNotFound:        http.StatusNotFound,
	service.ErrUserNotFound: http.StatusNotFound,
	service.ErrPostNotFound: http.StatusNotFound,
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors yield 500 and a nil target.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError writes the error envelope for err. Bad-request errors carry
// their full message so the client can see which field failed; the rest
// carry only the sentinel text. Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)

	message := serverErrorMessage
	switch {
	case target == nil:
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error")
	case status == http.StatusBadRequest:
		message = err.Error()
	default:
		message = target.Error()
	}

	if status != http.StatusInternalServerError {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	_ = utils.WriteResponse(w, models.Response{Success: false, Error: message}, status)
}

func writeData(w http.ResponseWriter, data any, status int) {
	_ = utils.WriteResponse(w, models.Response{Success: true, Data: data}, status)
}
