// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the One-Pick API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VoteHandler: submit, change, and verify operations (delegates the
    state machine to the ledger package)
  - LeaderboardHandler: aggregate standings for a period
  - PeriodHandler: read-only period listing

# Voting Flow

	POST /api/one-pick/submit  → Submit (issues the change key, mints PID cookie)
	POST /api/one-pick/change  → Change (requires PID cookie + change key)
	GET  /api/one-pick/verify  → Verify (read-only, keyed by order number)

# Read Endpoints

	GET /api/one-pick/leaderboard → Get (roster-merged ranked counts)
	GET /api/one-pick/periods     → List

# Leaderboard Algorithm

The aggregation is implemented in leaderboard.go:

	entries, total, err := ComputeLeaderboard(ctx, db, periodID)

Valid votes are counted per candidate, merged with the full roster so
zero-vote candidates appear, sorted descending by count with roster order
as the stable tie-break, and ranked 1-based.

# Error Mapping

Ledger rejections carry stable codes; statusForCode maps each code to its
HTTP status and writeLedgerError renders the envelope. Non-coded errors
are logged and surfaced as an opaque 500.
*/
package handlers
