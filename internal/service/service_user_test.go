// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/mock"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/models"
)

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, logger.Nop())
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "u1").Return(ann, nil)

	profile, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, "a@x.io", profile.Email)

	body, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(body), ann.Password)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, logger.Nop())
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUser(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
