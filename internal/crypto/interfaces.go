// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// The hasher knows nothing about users or storage. Every Hash call uses a
// fresh random salt, so hashing the same password twice yields different
// strings that both verify.
type PasswordHasher interface {
	// Hash returns the encoded hash of plaintext.
	// Returns ErrPasswordTooLong if plaintext exceeds the algorithm's input
	// limit and ErrHashingFailed on any other failure.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash.
	// A mismatch is (false, nil); a hash that cannot be decoded is
	// (false, ErrInvalidHashFormat).
	Verify(plaintext, hash string) (bool, error)
}
