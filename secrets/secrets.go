// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used in production.
const DefaultCost = 10

// Manager generates change keys and produces/verifies their one-way
// digests. Keys are random (never derived), returned to the caller exactly
// once, and only their bcrypt hash is ever stored.
type Manager struct {
	cost int
}

// New returns a Manager with the given bcrypt cost. Costs outside bcrypt's
// supported range fall back to DefaultCost.
func New(cost int) *Manager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Manager{cost: cost}
}

// Generate creates a change key: 6 bytes from crypto/rand, hex encoded,
// uppercased, and grouped as XXXX-XXXX-XXXX for transcription.
func (m *Manager) Generate() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate change key: %w", err)
	}

	key := strings.ToUpper(hex.EncodeToString(b))
	return key[0:4] + "-" + key[4:8] + "-" + key[8:12], nil
}

// Hash returns the salted bcrypt digest of key. The key is canonicalized
// first so verification is case-insensitive.
func (m *Manager) Hash(key string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(canonical(key)), m.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash change key: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether key matches digest. Comparison goes through
// bcrypt's own constant-time path; digests are never string-compared.
func (m *Manager) Verify(key, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(canonical(key))) == nil
}

func canonical(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
