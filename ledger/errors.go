// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"strings"

	"github.com/danielhkuo/one-pick/models"
)

// Error is a rejection with a stable machine-readable code. Every business
// rule failure in the ledger is one of these; anything else reaching the
// handler is an internal error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrOrderAlreadyBound = &Error{Code: models.CodeOrderAlreadyBound, Message: "order number already in use"}
	ErrPIDAlreadyBound   = &Error{Code: models.CodePIDOrderMismatch, Message: "this user is already bound to a different order number"}
	ErrOrderNotFound     = &Error{Code: models.CodeOrderNotFound, Message: "order number is not bound"}
	ErrPIDOrderMismatch  = &Error{Code: models.CodePIDOrderMismatch, Message: "order number does not belong to this user"}
	ErrInvalidCandidate  = &Error{Code: models.CodeInvalidCandidate, Message: "invalid candidate"}
	ErrPeriodNotFound    = &Error{Code: models.CodePeriodNotFound, Message: "period not found"}
	ErrPeriodNotActive   = &Error{Code: models.CodePeriodNotActive, Message: "no active voting period"}
	ErrVoteAlreadyExists = &Error{Code: models.CodeVoteAlreadyExists, Message: "vote already submitted this period"}
	ErrVoteNotFound      = &Error{Code: models.CodeVoteNotFound, Message: "no vote this period"}
	ErrChangeLimit       = &Error{Code: models.CodeChangeLimitReached, Message: "change limit reached for this period"}
	ErrChangeKeyMissing  = &Error{Code: models.CodeInvalidChangeKey, Message: "no change key on record"}
	ErrChangeKeyInvalid  = &Error{Code: models.CodeInvalidChangeKey, Message: "change key is incorrect"}
)

// invalidOrderError carries the concatenated validator messages so the
// caller can render exactly what failed.
func invalidOrderError(messages []string) *Error {
	return &Error{
		Code:    models.CodeInvalidOrderID,
		Message: strings.Join(messages, "; "),
	}
}
