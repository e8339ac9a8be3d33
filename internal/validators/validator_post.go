// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/voyager/models"
)

// PostValidator validates new posts and post patches.
//
// Text is checked for presence only; it is stored exactly as received.
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)

	case models.PostPatch:
		return v.validatePatch(value, fields...)
	case *models.PostPatch:
		return v.validatePatch(*value, fields...)
	}

	return ErrUnsupportedType
}

func (v *PostValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if post.UserID == "" {
				return ErrEmptyUserID
			}
		case FieldText:
			if post.Text == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch accepts an empty patch; a set Text must not be empty.
func (v *PostValidator) validatePatch(patch models.PostPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if patch.Text != nil && *patch.Text == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
