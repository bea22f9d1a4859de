// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package secrets

import (
	"regexp"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

var keyFormat = regexp.MustCompile(`^[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`)

func TestGenerateFormat(t *testing.T) {
	m := New(bcrypt.MinCost)

	for i := 0; i < 50; i++ {
		key, err := m.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !keyFormat.MatchString(key) {
			t.Fatalf("key %q does not match XXXX-XXXX-XXXX hex format", key)
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	m := New(bcrypt.MinCost)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := m.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}

func TestHashAndVerify(t *testing.T) {
	m := New(bcrypt.MinCost)

	key, err := m.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	digest, err := m.Hash(key)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if digest == key {
		t.Fatal("digest must not equal the plaintext key")
	}
	if !m.Verify(key, digest) {
		t.Error("correct key failed verification")
	}
	if m.Verify("0000-0000-0000", digest) {
		t.Error("wrong key passed verification")
	}
}

func TestVerifyCaseInsensitive(t *testing.T) {
	m := New(bcrypt.MinCost)

	digest, err := m.Hash("A1B2-C3D4-E5F6")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	for _, presented := range []string{
		"a1b2-c3d4-e5f6",
		"A1B2-C3D4-E5F6",
		"  A1B2-C3D4-E5F6  ",
	} {
		if !m.Verify(presented, digest) {
			t.Errorf("expected %q to verify", presented)
		}
	}
}

func TestHashesDiffer(t *testing.T) {
	m := New(bcrypt.MinCost)

	first, err := m.Hash("A1B2-C3D4-E5F6")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := m.Hash("A1B2-C3D4-E5F6")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	// bcrypt salts every digest, so equal inputs produce distinct digests.
	if first == second {
		t.Error("expected salted digests to differ")
	}
}

func TestNewClampsCost(t *testing.T) {
	for _, cost := range []int{-1, 0, 99} {
		m := New(cost)
		if m.cost != DefaultCost {
			t.Errorf("New(%d) cost = %d, want %d", cost, m.cost, DefaultCost)
		}
	}
}
