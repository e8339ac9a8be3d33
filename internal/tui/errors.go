// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/voyager/internal/service"
)

// humanizeError turns a client service error into a line for the user.
// Validation and conflict errors already carry readable server wording.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnavailable):
		return "Network is down or the server is unavailable"
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, please log in again"
	case errors.Is(err, service.ErrUnauthorizedAccessToDifferentUserData):
		return "Only the author can change this post"
	case errors.Is(err, service.ErrPostNotFound):
		return "Post no longer exists"
	case errors.Is(err, service.ErrServerError):
		return "Server error, try again later"
	}
	return err.Error()
}

// sessionLost reports whether err means the user must sign in again.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid)
}
