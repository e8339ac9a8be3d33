// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
)

// maxRequestBodySize caps JSON bodies after gzip inflation.
const maxRequestBodySize = 1 << 20

// decodeJSON reads one JSON value from the request body into v. It returns
// ErrRequestTooLarge past maxRequestBodySize and ErrInvalidJSON for any other
// decoding failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrRequestTooLarge
		}
		return ErrInvalidJSON
	}
	return nil
}
