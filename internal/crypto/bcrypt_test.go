// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"default cost", DefaultCost, 10},
		{"minimum cost", bcrypt.MinCost, bcrypt.MinCost},
		{"below minimum falls back", 1, DefaultCost},
		{"above maximum falls back", 99, DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := NewBcryptHasher(tt.cost).Hash("secret123")
			require.NoError(t, err)
			cost, err := bcrypt.Cost([]byte(hashed))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"), "unexpected hash prefix: %s", hashed)

	ok, err := h.Verify("secret123", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hashed := range []string{first, second} {
		ok, err := h.Verify("same-password", hashed)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_DefaultCostEncoded(t *testing.T) {
	h := NewBcryptHasher(DefaultCost)

	hashed, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"too short", "$2a$10$abc"},
		{"not bcrypt", strings.Repeat("x", 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("pw", tt.hash)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidHashFormat)
		})
	}
}
