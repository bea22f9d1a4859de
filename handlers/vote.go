// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/one-pick/identity"
	"github.com/danielhkuo/one-pick/ledger"
	"github.com/danielhkuo/one-pick/middleware"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/roster"
)

type VoteHandler struct {
	ledger *ledger.Ledger
}

func NewVoteHandler(l *ledger.Ledger) *VoteHandler {
	return &VoteHandler{ledger: l}
}

// statusForCode maps rejection codes to HTTP statuses. Input-malformed and
// exhausted-privilege rejections are 400s; ownership failures are 401/403;
// the not-found family is 404 so clients can branch on "never voted".
var statusForCode = map[string]int{
	models.CodeInvalidOrderID:     http.StatusBadRequest,
	models.CodeOrderAlreadyBound:  http.StatusBadRequest,
	models.CodeOrderNotFound:      http.StatusNotFound,
	models.CodePIDRequired:        http.StatusUnauthorized,
	models.CodePIDOrderMismatch:   http.StatusForbidden,
	models.CodeInvalidCandidate:   http.StatusBadRequest,
	models.CodePeriodNotFound:     http.StatusNotFound,
	models.CodePeriodNotActive:    http.StatusBadRequest,
	models.CodeVoteAlreadyExists:  http.StatusBadRequest,
	models.CodeVoteNotFound:       http.StatusNotFound,
	models.CodeChangeLimitReached: http.StatusBadRequest,
	models.CodeInvalidChangeKey:   http.StatusUnauthorized,
	models.CodeValidationError:    http.StatusBadRequest,
}

// writeLedgerError renders a ledger rejection, or a generic 500 for
// anything that is not a coded rejection.
func writeLedgerError(w http.ResponseWriter, op string, err error) {
	var lerr *ledger.Error
	if errors.As(err, &lerr) {
		status, ok := statusForCode[lerr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		middleware.Error(w, status, lerr.Code, lerr.Message)
		return
	}

	slog.Error(op+" failed", "error", err)
	middleware.Error(w, http.StatusInternalServerError, models.CodeInternalError, "internal server error")
}

// Submit handles POST /api/one-pick/submit
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.Error(w, http.StatusBadRequest, models.CodeValidationError, "invalid JSON")
		return
	}

	// Mints the PID cookie on first contact; the binding happens in the
	// ledger if the submission succeeds.
	pid := identity.GetOrCreate(w, r)

	result, err := h.ledger.Submit(r.Context(), req.OrderID, req.CandidateID, pid)
	if err != nil {
		writeLedgerError(w, "submit", err)
		return
	}

	middleware.Success(w, http.StatusOK, models.SubmitVoteResponse{
		OrderID:   result.OrderID,
		Period:    result.Period,
		ChangeKey: result.ChangeKey,
	})
}

// Change handles POST /api/one-pick/change
func (h *VoteHandler) Change(w http.ResponseWriter, r *http.Request) {
	var req models.ChangeVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.Error(w, http.StatusBadRequest, models.CodeValidationError, "invalid JSON")
		return
	}

	// Changing requires an already-issued identity; never mint one here.
	pid, ok := identity.GetExisting(r)
	if !ok {
		middleware.Error(w, http.StatusUnauthorized, models.CodePIDRequired, "user identity not found")
		return
	}

	result, err := h.ledger.Change(r.Context(), req.OrderID, req.CandidateID, req.ChangeKey, pid)
	if err != nil {
		writeLedgerError(w, "change", err)
		return
	}

	middleware.Success(w, http.StatusOK, models.ChangeVoteResponse{
		OrderID:          result.OrderID,
		Period:           result.Period,
		ChangeKey:        result.ChangeKey,
		ChangesRemaining: result.ChangesRemaining,
	})
}

// Verify handles GET /api/one-pick/verify?order_id=...&period=...
func (h *VoteHandler) Verify(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		middleware.Error(w, http.StatusBadRequest, models.CodeValidationError, "order_id is required")
		return
	}
	periodName := r.URL.Query().Get("period")

	result, err := h.ledger.Verify(r.Context(), orderID, periodName)
	if err != nil {
		writeLedgerError(w, "verify", err)
		return
	}

	history := make([]models.ChangeSummary, 0, len(result.History))
	for _, e := range result.History {
		history = append(history, models.ChangeSummary{
			From:      roster.NameOf(e.FromCandidateID),
			To:        roster.NameOf(e.ToCandidateID),
			ChangedAt: e.ChangedAt,
		})
	}

	middleware.Success(w, http.StatusOK, models.VerifyVoteResponse{
		OrderID: result.OrderID,
		Period:  result.Period.Name,
		Vote: models.VoteDetails{
			CandidateID:   result.Vote.CandidateID,
			CandidateName: roster.NameOf(result.Vote.CandidateID),
			Status:        result.Vote.Status,
			CreatedAt:     result.Vote.CreatedAt,
			UpdatedAt:     result.Vote.UpdatedAt,
		},
		HasChanged:    result.HasChanged,
		CanChange:     result.CanChange,
		ChangeHistory: history,
	})
}
