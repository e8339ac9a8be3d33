// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/crypto"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	PostService    PostService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg.App, logger)
	hasher := crypto.NewBcryptHasher(crypto.DefaultCost)

	postService := NewPostValidationService().Wrap(
		NewPostService(storages.PostRepository, storages.UserRepository, ids, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokenService, ids, logger),
		TokenService:   tokenService,
		PostService:    postService,
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
