// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

func (h *Handler) Register(ctx context.Context, request *models.RegisterRequest) (*models.AuthResult, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}

	result, err := h.services.AuthService.Register(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	setAuthorizationHeader(ctx, result.Token)
	return &result, nil
}

func (h *Handler) Login(ctx context.Context, request *models.LoginRequest) (*models.AuthResult, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}

	result, err := h.services.AuthService.Login(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	setAuthorizationHeader(ctx, result.Token)
	return &result, nil
}

func (h *Handler) GetUser(ctx context.Context, request *models.UserIDRequest) (*models.UserProfile, error) {
	if request == nil {
		return nil, toStatus(ctx, ErrEmptyRequest)
	}

	profile, err := h.services.UserService.GetUser(ctx, request.ID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &profile, nil
}

// setAuthorizationHeader mirrors the HTTP "Authorization: Bearer" response
// header. Outside a server call there is no stream and the header is dropped.
func setAuthorizationHeader(ctx context.Context, token string) {
	_ = grpc.SetHeader(ctx, metadata.Pairs(authorizationKey, utils.BearerValue(token)))
}
