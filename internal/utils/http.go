// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/voyager/internal/app"
	"github.com/MKhiriev/voyager/models"
)

// AuthorizationHeader carries "Bearer <token>" on HTTP requests and on the
// register/login responses.
const AuthorizationHeader = "Authorization"

const bearerScheme = "Bearer"

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return bearerScheme + " " + token
}

// WriteResponse writes response as the JSON envelope with the given status.
//
// An envelope that cannot be encoded (for example Data holding a channel) is
// replaced by a 500 envelope carrying the generic server error, and the
// encoding error is returned to the caller for logging.
func WriteResponse(w http.ResponseWriter, response models.Response, status int) error {
	body, err := json.Marshal(response)
	if err != nil {
		body, _ = json.Marshal(models.Response{Success: false, Error: app.MsgServerError})
		status = http.StatusInternalServerError
		err = fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, writeErr := w.Write(body); writeErr != nil && err == nil {
		err = fmt.Errorf("error writing response: %w", writeErr)
	}
	return err
}
