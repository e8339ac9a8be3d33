// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the public profile of userID. The password hash never
// leaves this method.
func (s *userService) GetUser(ctx context.Context, userID string) (models.UserProfile, error) {
	if userID == "" {
		return models.UserProfile{}, ErrUserNotFound
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserProfile{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Msg("user search by id failed")
		return models.UserProfile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Profile(), nil
}
