// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/internal/app"
)

// messageErrorMap resolves server messages back to the sentinels the server
// built them from.
var messageErrorMap = map[string]error{
	ErrTextRequired.Error():        ErrTextRequired,
	app.MsgUserAlreadyExists:       ErrUserAlreadyExists,
	app.MsgInvalidCredentials:      ErrInvalidCredentials,
	app.MsgUserNotFound:            ErrUserNotFound,
	app.MsgPostNotFound:            ErrPostNotFound,
	app.MsgUserNotAuthorized:       ErrUnauthorizedAccessToDifferentUserData,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	app.MsgServerError:             ErrServerError,
}

// mapAdapterError translates an adapter error into a service error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotLoggedIn
	case errors.Is(err, adapter.ErrRequestFailed):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}

	if sentinel, ok := messageErrorMap[respErr.Message]; ok {
		return sentinel
	}
	if detail, ok := strings.CutPrefix(respErr.Message, app.MsgInvalidDataProvided); ok {
		return fmt.Errorf("%w%s", ErrInvalidDataProvided, detail)
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerError
	}

	return err
}
