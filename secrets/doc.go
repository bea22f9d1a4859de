// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package secrets manages change keys: the single-use proofs that authorize
changing a previously cast vote.

# Generation

Keys come from crypto/rand, rendered as 12 uppercase hex characters in
three 4-character blocks:

	key, err := m.Generate()  // "A1B2-C3D4-E5F6"

A key is returned to the caller exactly once, at generation time. There is
no recovery path: a lost key forfeits the change privilege for the period.

# Hashing

Storage only ever sees a bcrypt digest:

	digest, err := m.Hash(key)
	ok := m.Verify(presented, digest)

bcrypt is deliberately expensive so stolen digests resist offline brute
force. Verification goes through bcrypt's comparison, and keys are
canonicalized (trimmed, uppercased) first so entry is case-insensitive.
*/
package secrets
