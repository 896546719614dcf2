// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way, salted bcrypt hash from the given
// plaintext password. The salt is generated by bcrypt itself, so two hashes
// of the same password never compare equal as strings.
//
// The plaintext must already be length-bounded by input validation: bcrypt
// silently truncates inputs longer than 72 bytes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time within bcrypt.
func VerifyPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
