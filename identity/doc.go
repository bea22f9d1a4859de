// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity issues and reads the anonymous caller identity (PID).

A PID is an opaque UUID carried in a long-lived HttpOnly cookie. It is
independent of any order number: the ledger binds the two on first
successful submission. The cookie is the only identity mechanism; there
are no accounts.

# Usage

Handlers that may legitimately be a caller's first contact mint the
cookie:

	pid := identity.GetOrCreate(w, r)

Handlers that require an established identity read it without minting:

	pid, ok := identity.GetExisting(r)
	if !ok {
		// reject with PID_REQUIRED
	}

A present but malformed cookie counts as absent.
*/
package identity
