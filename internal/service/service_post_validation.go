// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/voyager/internal/validators"
	"github.com/MKhiriev/voyager/models"
)

// PostValidationService rejects requests without a caller and new posts
// without text before they reach the wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *PostValidationService) CreatePost(ctx context.Context, callerID, text string) (models.Post, error) {
	if callerID == "" {
		return models.Post{}, ErrUnauthorizedAccessToDifferentUserData
	}

	if err := v.validator.Validate(ctx, models.Post{UserID: callerID, Text: text}); err != nil {
		return models.Post{}, validationError(err)
	}

	return v.inner.CreatePost(ctx, callerID, text)
}

func (v *PostValidationService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return v.inner.ListPosts(ctx, filter)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

// UpdatePost leaves patch validation to the wrapped service, which runs it
// after the ownership check.
func (v *PostValidationService) UpdatePost(ctx context.Context, callerID, postID string, patch models.PostPatch) (models.Post, error) {
	if callerID == "" {
		return models.Post{}, ErrUnauthorizedAccessToDifferentUserData
	}

	return v.inner.UpdatePost(ctx, callerID, postID, patch)
}

func (v *PostValidationService) DeletePost(ctx context.Context, callerID, postID string) error {
	if callerID == "" {
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return v.inner.DeletePost(ctx, callerID, postID)
}

// validationError maps a validator error onto the service sentinels.
func validationError(err error) error {
	if errors.Is(err, validators.ErrEmptyText) {
		return ErrTextRequired
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
