// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: order_id, candidate_id
  - ChangeVoteRequest: order_id, candidate_id, change_key

# Response Types

Types for JSON responses, always wrapped in an envelope:

  - SubmitVoteResponse: order_id, period, change_key
  - ChangeVoteResponse: order_id, period, change_key, changes_remaining
  - VerifyVoteResponse: vote details plus change history
  - LeaderboardResponse: ranked candidates with vote counts
  - PeriodListResponse: all voting periods

# Envelope

Every response uses a uniform envelope:

	{"success": true,  "data": {...}}
	{"success": false, "error": {"code": "...", "message": "..."}}

Error codes form a closed enumeration (Code* constants). Clients branch on
the code, not the message.

# Domain Types

Internal data structures:

  - Period: a named voting window with lifecycle status
  - OrderBinding: permanent 1:1 mapping of anonymous PID to order number
  - Vote: one vote per order per period
  - ChangeSecret: bcrypt digest of the live change key for an order/period
  - ChangeLogEntry: append-only audit record of a vote change

# Constants

Period status values:

	PeriodUpcoming = "upcoming"
	PeriodActive   = "active"
	PeriodClosed   = "closed"

Vote status values:

	VoteValid   = "valid"
	VoteFrozen  = "frozen"
	VoteInvalid = "invalid"
*/
package models
