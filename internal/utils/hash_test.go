// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package utils

import "testing"

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !VerifyPassword("correct-horse", hash) {
		t.Error("expected the original password to verify against its hash")
	}
	if VerifyPassword("wrong-guess", hash) {
		t.Error("expected a different password to fail verification")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ due to random salt")
	}
}

func TestVerifyPassword_EmptyHash(t *testing.T) {
	if VerifyPassword("anything", "") {
		t.Error("expected verification against an empty hash to fail")
	}
}
