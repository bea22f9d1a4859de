// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the One-Pick API server.

One-Pick lets the holder of a purchase-order number cast exactly one vote
per voting period for a candidate, change that vote at most once using a
single-use rotating change key, and read an aggregate leaderboard.

# Starting the Server

The server requires a database URL via environment or CLI flags:

	DATABASE_URL=postgres://... go run main.go -t postgres

Or self-contained with sqlite:

	go run main.go -d "file:votes.db" -seed

# Configuration

  - DATABASE_URL (-d): connection string (required)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PORT (-p): server port (default: 3321)
  - BCRYPT_COST (-cost): change-key hashing work factor (default: 10)
  - -seed: create current/next quarter periods on an empty table

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - order: purchase-order number validation (structural, temporal, fraud)
  - secrets: change-key generation and bcrypt hashing
  - period: voting-period registry and quarter naming
  - ledger: the vote state machine (submit/change/verify, transactional)
  - roster: the static candidate roster
  - identity: anonymous PID cookie issuance
  - handlers: HTTP request handlers (vote, leaderboard, periods)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON envelope helpers
  - models: request/response/domain types and error codes
  - db: schema creation and query plumbing

See package documentation for each component.
*/
package main
