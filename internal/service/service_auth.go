// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/voyager/internal/crypto"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/store"
	"github.com/MKhiriev/voyager/internal/validators"
	"github.com/MKhiriev/voyager/models"
)

// decoyPassword is hashed once and verified against whenever a login names
// an unknown email, so both failure paths cost one bcrypt comparison.
const decoyPassword = "voyager-decoy-password"

// fallbackDecoyHash is a well-formed cost-10 bcrypt hash used when hashing
// decoyPassword fails, so unknown-email logins still pay for a comparison.
const fallbackDecoyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// authService registers users and exchanges credentials for tokens.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokenService   TokenService
	validator      validators.Validator
	ids            IDGenerator

	now func() time.Time

	decoyOnce sync.Once
	decoyHash string

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokenService TokenService, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		validator:      validators.NewCredentialsValidator(),
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates an account and returns a token for it.
//
// Returns:
//   - ErrInvalidDataProvided if name, email or password is empty or the
//     password is too long to hash.
//   - ErrUserAlreadyExists if the email is taken, including when a concurrent
//     registration wins the unique index.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid registration data")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err == nil {
		return models.AuthResult{}, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "*authService.Register").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(request.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:    a.ids.Generate(),
		Name:      request.Name,
		Email:     request.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResult{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResult(ctx, user.UserID)
}

// Login verifies credentials and returns a fresh token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.verifyDecoy(ctx, request.Password)
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("stored password hash is unreadable")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if !ok {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	return a.authResult(ctx, user.UserID)
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.tokenService.Verify(ctx, tokenString)
}

func (a *authService) authResult(ctx context.Context, userID string) (models.AuthResult, error) {
	token, err := a.tokenService.Issue(ctx, userID)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{UserID: userID, Token: token.SignedString}, nil
}

func (a *authService) verifyDecoy(ctx context.Context, password string) {
	a.decoyOnce.Do(func() {
		hash, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*authService.verifyDecoy").Msg("error hashing decoy password, using fallback hash")
			hash = fallbackDecoyHash
		}
		a.decoyHash = hash
	})

	_, _ = a.hasher.Verify(password, a.decoyHash)
}
