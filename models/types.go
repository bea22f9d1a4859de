// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Period status constants
const (
	PeriodUpcoming = "upcoming"
	PeriodActive   = "active"
	PeriodClosed   = "closed"
)

// Vote status constants
const (
	VoteValid   = "valid"
	VoteFrozen  = "frozen"
	VoteInvalid = "invalid"
)

// Error codes returned in the error envelope. The set is closed: handlers
// never emit a code outside this list.
const (
	CodeInvalidOrderID     = "INVALID_ORDER_ID"
	CodeOrderAlreadyBound  = "ORDER_ID_ALREADY_BOUND"
	CodeOrderNotFound      = "ORDER_ID_NOT_FOUND"
	CodePIDRequired        = "PID_REQUIRED"
	CodePIDOrderMismatch   = "PID_ORDER_MISMATCH"
	CodeInvalidCandidate   = "INVALID_CANDIDATE_ID"
	CodePeriodNotFound     = "SEASON_NOT_FOUND"
	CodePeriodNotActive    = "SEASON_NOT_ACTIVE"
	CodeVoteAlreadyExists  = "VOTE_ALREADY_EXISTS"
	CodeVoteNotFound       = "VOTE_NOT_FOUND"
	CodeChangeLimitReached = "CHANGE_LIMIT_REACHED"
	CodeInvalidChangeKey   = "INVALID_CHANGE_KEY"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeValidationError    = "VALIDATION_ERROR"
)

// Request types

type SubmitVoteRequest struct {
	OrderID     string `json:"order_id"`
	CandidateID string `json:"candidate_id"`
}

type ChangeVoteRequest struct {
	OrderID     string `json:"order_id"`
	CandidateID string `json:"candidate_id"`
	ChangeKey   string `json:"change_key"`
}

// Response types

type SubmitVoteResponse struct {
	OrderID   string `json:"order_id"`
	Period    string `json:"period"`
	ChangeKey string `json:"change_key"`
}

type ChangeVoteResponse struct {
	OrderID          string `json:"order_id"`
	Period           string `json:"period"`
	ChangeKey        string `json:"change_key"`
	ChangesRemaining int    `json:"changes_remaining"`
}

type VerifyVoteResponse struct {
	OrderID       string          `json:"order_id"`
	Period        string          `json:"period"`
	Vote          VoteDetails     `json:"vote"`
	HasChanged    bool            `json:"has_changed"`
	CanChange     bool            `json:"can_change"`
	ChangeHistory []ChangeSummary `json:"change_history"`
}

type VoteDetails struct {
	CandidateID   string    `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChangeSummary struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}

type LeaderboardResponse struct {
	Period       string             `json:"period"`
	PeriodStatus string             `json:"period_status"`
	TotalVotes   int                `json:"total_votes"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Avatar        string `json:"avatar"`
	VoteCount     int    `json:"vote_count"`
}

type PeriodListResponse struct {
	Periods []Period `json:"periods"`
}

// Envelope types

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Domain types

type Period struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  string    `json:"status"`
}

type OrderBinding struct {
	PID       string    `json:"-"` // Never expose in JSON
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	PeriodID    string    `json:"period_id"`
	OrderID     string    `json:"order_id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChangeSecret struct {
	OrderID  string
	PeriodID string
	KeyHash  string // Never exposed; bcrypt digest of the change key
	IssuedAt time.Time
}

type ChangeLogEntry struct {
	ID              string    `json:"id"`
	PID             string    `json:"-"` // Never expose in JSON
	OrderID         string    `json:"order_id"`
	PeriodID        string    `json:"period_id"`
	FromCandidateID string    `json:"from_candidate_id"`
	ToCandidateID   string    `json:"to_candidate_id"`
	ChangedAt       time.Time `json:"changed_at"`
}
