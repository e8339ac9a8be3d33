// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/voyager/internal/app"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/service"
)

const serverErrorMessage = app.MsgServerError

var errorCodeMap = map[error]codes.Code{
	ErrEmptyRequest:                codes.InvalidArgument,
	service.ErrInvalidDataProvided: codes.InvalidArgument,
	service.ErrUserAlreadyExists:   codes.InvalidArgument,
	service.ErrInvalidCredentials:  codes.InvalidArgument,

	ErrEmptyAuthorizationMetadata:                    codes.Unauthenticated,
	ErrInvalidAuthorizationMetadata:                  codes.Unauthenticated,
	service.ErrTokenIsExpiredOrInvalid:               codes.Unauthenticated,
	service.ErrUnauthorizedAccessToDifferentUserData: codes.Unauthenticated,

	service.ErrUserNotFound: codes.NotFound,
	service.ErrPostNotFound: codes.NotFound,
}

// codeFromError returns the code for err and the sentinel it matched.
// Unknown errors yield codes.Internal and a nil target.
func codeFromError(err error) (codes.Code, error) {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code, target
		}
	}
	return codes.Internal, nil
}

// toStatus converts err into a status error. Invalid-argument errors keep
// their full message, the rest carry only the sentinel text. Internal
// details never reach the client.
func toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	log := logger.FromContext(ctx)

	code, target := codeFromError(err)

	message := serverErrorMessage
	switch {
	case target == nil:
		log.Err(err).Msg("unexpected error")
	case code == codes.InvalidArgument:
		message = err.Error()
	default:
		message = target.Error()
	}

	if code != codes.Internal {
		log.Debug().Err(err).Str("code", code.String()).Msg("call rejected")
	}

	return status.Error(code, message)
}
