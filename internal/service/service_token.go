// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/voyager/internal/config"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/utils"
	"github.com/MKhiriev/voyager/models"
)

// tokenService signs HS256 tokens with a process-wide key. There is no
// session store; a token stays valid until it expires.
type tokenService struct {
	signKey string
	issuer  string
	ttl     time.Duration

	// now is the clock used for issuing and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.now(), s.ttl, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify rejects bad signatures, other algorithms, foreign issuers, expired
// tokens and tokens without a subject alike.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
