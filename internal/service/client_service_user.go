// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter
}

func NewClientUserService(serverAdapter adapter.ServerAdapter) ClientUserService {
	return &clientUserService{adapter: serverAdapter}
}

func (u *clientUserService) GetUser(ctx context.Context, userID string) (models.UserProfile, error) {
	profile, err := u.adapter.GetUser(ctx, userID)
	return profile, mapAdapterError(err)
}

func (u *clientUserService) ServerInfo(ctx context.Context) (models.AppInfo, error) {
	info, err := u.adapter.Version(ctx)
	return info, mapAdapterError(err)
}
