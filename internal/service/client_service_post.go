// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/voyager/internal/adapter"
	"github.com/MKhiriev/voyager/internal/logger"
	"github.com/MKhiriev/voyager/internal/validators"
	"github.com/MKhiriev/voyager/models"
)

type clientPostService struct {
	adapter   adapter.ServerAdapter
	session   *clientSession
	validator validators.Validator

	logger *logger.Logger
}

func newClientPostService(serverAdapter adapter.ServerAdapter, session *clientSession, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewPostValidator(),
		logger:    logger,
	}
}

func (p *clientPostService) Feed(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := p.adapter.ListPosts(ctx, filter)
	if err != nil {
		return nil, p.mapError(err)
	}
	return posts, nil
}

func (p *clientPostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.adapter.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, p.mapError(err)
	}
	return post, nil
}

func (p *clientPostService) CreatePost(ctx context.Context, text string) (models.Post, error) {
	session, ok := p.session.get()
	if !ok {
		return models.Post{}, ErrNotLoggedIn
	}
	if err := p.validator.Validate(ctx, models.Post{UserID: session.UserID, Text: text}); err != nil {
		return models.Post{}, validationError(err)
	}

	post, err := p.adapter.CreatePost(ctx, text)
	if err != nil {
		return models.Post{}, p.mapError(err)
	}
	return post, nil
}

func (p *clientPostService) EditPost(ctx context.Context, postID, text string) (models.Post, error) {
	if _, ok := p.session.get(); !ok {
		return models.Post{}, ErrNotLoggedIn
	}

	patch := models.PostPatch{Text: &text}
	if err := p.validator.Validate(ctx, patch); err != nil {
		return models.Post{}, validationError(err)
	}

	post, err := p.adapter.UpdatePost(ctx, postID, patch)
	if err != nil {
		return models.Post{}, p.mapError(err)
	}
	return post, nil
}

func (p *clientPostService) DeletePost(ctx context.Context, postID string) error {
	if _, ok := p.session.get(); !ok {
		return ErrNotLoggedIn
	}

	if err := p.adapter.DeletePost(ctx, postID); err != nil {
		return p.mapError(err)
	}
	return nil
}

func (p *clientPostService) IsOwn(post models.Post) bool {
	session, ok := p.session.get()
	return ok && session.UserID != "" && session.UserID == post.UserID
}

// mapError maps err and closes the session when the server no longer
// accepts its token.
func (p *clientPostService) mapError(err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrTokenIsExpiredOrInvalid) {
		p.logger.Info().Msg("session token rejected, signing out")
		p.session.clear()
	}
	return mapped
}
