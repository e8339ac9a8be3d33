// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/validators"
	"github.com/MKhiriev/voyager/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   *clientSession
	validator validators.Validator

	logger *logger.Logger
}

func newClientAuthService(serverAdapter adapter.ServerAdapter, session *clientSession, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewCredentialsValidator(),
		logger:    logger,
	}
}

// Register checks the form locally, so an empty field never costs a round
// trip, then opens a session for the new account.
func (a *clientAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Session{}, validationError(err)
	}

	result, err := a.adapter.Register(ctx, request)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Register").Msg("register rejected")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{UserID: result.UserID, Name: request.Name, Email: request.Email}
	a.session.set(session)
	return session, nil
}

// Login opens a session and fills the display name from the public profile.
// A failed profile lookup keeps the session without a name.
func (a *clientAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Session{}, validationError(err)
	}

	result, err := a.adapter.Login(ctx, request)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Login").Msg("login rejected")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{UserID: result.UserID, Email: request.Email}
	if profile, err := a.adapter.GetUser(ctx, result.UserID); err == nil {
		session.Name = profile.Name
	} else {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Login").Msg("profile lookup failed")
	}

	a.session.set(session)
	return session, nil
}

func (a *clientAuthService) Logout() {
	a.session.clear()
}

func (a *clientAuthService) Session() (models.Session, bool) {
	return a.session.get()
}
