// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voyager/internal/service"
	"github.com/MKhiriev/voyager/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrTextRequired, http.StatusBadRequest},
		{fmt.Errorf("%w: name is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrUserAlreadyExists, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusBadRequest},
		{ErrInvalidJSON, http.StatusBadRequest},
		{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusUnauthorized},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrPostNotFound, http.StatusNotFound},
		{fmt.Errorf("listing posts failed: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got, _ := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("post search failed: %w", errors.New("pq: relation \"posts\" does not exist")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Server Error"}`, rec.Body.String())
}

func TestWriteError_NotFoundUsesSentinelText(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("wrapped: %w", service.ErrPostNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"post not found"}`, rec.Body.String())
}
