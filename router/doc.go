// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ method-aware patterns.

# Routes

	GET  /health                    → liveness probe
	POST /api/one-pick/submit       → cast a vote, receive the change key
	POST /api/one-pick/change       → change a vote using the change key
	GET  /api/one-pick/verify       → look up a vote and its change history
	GET  /api/one-pick/leaderboard  → ranked standings for a period
	GET  /api/one-pick/periods      → list all voting periods
	GET  /                          → API banner

NewRouter wires the period registry and the vote ledger once and hands
them to the handlers; all routes share one *sql.DB pool. The returned
handler is the mux wrapped in credentials-allowing CORS so the identity
cookie travels on cross-origin requests.
*/
package router
