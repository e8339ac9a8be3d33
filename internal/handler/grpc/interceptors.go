// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/utils"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// protectedMethods require a valid bearer token.
var protectedMethods = map[string]struct{}{
	MethodCreatePost: {},
	MethodUpdatePost: {},
	MethodDeletePost: {},
}

// withRecovery turns a panic in a later interceptor or handler into an
// Internal status.
func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Str("method", info.FullMethod).
				Str("panic", fmt.Sprint(r)).
				Msg("panic while handling call")
			resp, err = nil, toStatus(ctx, errPanicRecovered)
		}
	}()

	return handler(ctx, req)
}

// withTraceID attaches a child logger tagged with the call trace id to the
// context. A trace id sent in the "x-trace-id" metadata is reused; otherwise
// a new one is generated. The id is echoed in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("call handled")

	return resp, err
}

// auth admits calls to protected methods only when they carry
// "authorization: Bearer <token>" metadata with a valid token, and stores the
// token subject in the context under [utils.UserIDCtxKey].
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	authValue := firstMetadataValue(ctx, authorizationKey)
	if authValue == "" {
		return nil, toStatus(ctx, ErrEmptyAuthorizationMetadata)
	}

	tokenString, err := utils.ParseBearerToken(authValue)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("malformed authorization metadata")
		return nil, toStatus(ctx, ErrInvalidAuthorizationMetadata)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return handler(utils.WithUserID(ctx, token.UserID), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
