// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/one-pick/db"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/order"
	"github.com/danielhkuo/one-pick/period"
	"github.com/danielhkuo/one-pick/roster"
	"github.com/danielhkuo/one-pick/secrets"
)

// changeLimit is the number of changes allowed per order number per period.
const changeLimit = 1

// Ledger is the vote state machine. Per (order number, period) the states
// are: unbound -> bound-unvoted -> voted -> voted-changed. The binding
// itself is period-independent and permanent.
//
// Every check-then-write sequence runs inside one transaction; uniqueness
// constraints in the store back up each insert so concurrent requests
// degrade to clean rejections.
type Ledger struct {
	db        *sql.DB
	validator *order.Validator
	keys      *secrets.Manager
	periods   *period.Registry
}

func New(conn *sql.DB, validator *order.Validator, keys *secrets.Manager, periods *period.Registry) *Ledger {
	return &Ledger{db: conn, validator: validator, keys: keys, periods: periods}
}

// SubmitResult is returned on a successful submission. ChangeKey is the
// only copy of the plaintext key that will ever exist.
type SubmitResult struct {
	OrderID   string
	Period    string
	ChangeKey string
}

// ChangeResult is returned on a successful change. The rotated key is
// issued for audit symmetry but is never usable: the limit is absolute.
type ChangeResult struct {
	OrderID          string
	Period           string
	ChangeKey        string
	ChangesRemaining int
}

// VerifyResult is the read-only view of one (order number, period) pair.
type VerifyResult struct {
	OrderID    string
	Period     *models.Period
	Vote       *models.Vote
	HasChanged bool
	CanChange  bool
	History    []models.ChangeLogEntry
}

// Submit casts a vote for candidateID on behalf of pid, binding the order
// number to pid if it was never seen before.
func (l *Ledger) Submit(ctx context.Context, rawOrderID, candidateID, pid string) (*SubmitResult, error) {
	orderID, err := l.checkInput(rawOrderID, candidateID)
	if err != nil {
		return nil, err
	}

	// Generate and hash the change key up front: bcrypt is deliberately
	// slow and has no business inside the transaction.
	changeKey, err := l.keys.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate change key: %w", err)
	}
	keyHash, err := l.keys.Hash(changeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash change key: %w", err)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	active, err := period.Active(ctx, tx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotActive
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active period: %w", err)
	}

	now := time.Now().UTC()

	// Bind the order number, or confirm the caller owns the existing
	// binding. The binding is 1:1 both ways: one order, one owner, and one
	// order per owner, forever.
	var boundPID string
	err = tx.QueryRowContext(ctx, `
		SELECT pid FROM order_bindings WHERE order_id = $1
	`, orderID).Scan(&boundPID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// The order is unbound; the caller must be too. An identity that
		// already owns a different order gets its own rejection rather than
		// the order-side conflict.
		var boundOrder string
		err = tx.QueryRowContext(ctx, `
			SELECT order_id FROM order_bindings WHERE pid = $1
		`, pid).Scan(&boundOrder)
		if err == nil {
			return nil, ErrPIDAlreadyBound
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to query identity binding: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_bindings (pid, order_id, created_at)
			VALUES ($1, $2, $3)
		`, pid, orderID, now)
		if db.IsUniqueViolation(err) {
			// A concurrent submit claimed it first.
			return nil, ErrOrderAlreadyBound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create order binding: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to query order binding: %w", err)
	case boundPID != pid:
		return nil, ErrOrderAlreadyBound
	}

	// One vote per order number per period.
	var voteExists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM votes WHERE period_id = $1 AND order_id = $2)
	`, active.ID, orderID).Scan(&voteExists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if voteExists {
		return nil, ErrVoteAlreadyExists
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO votes (id, period_id, order_id, candidate_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), active.ID, orderID, candidateID, models.VoteValid, now, now)
	if db.IsUniqueViolation(err) {
		return nil, ErrVoteAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO change_secrets (order_id, period_id, key_hash, issued_at)
		VALUES ($1, $2, $3, $4)
	`, orderID, active.ID, keyHash, now)
	if err != nil {
		return nil, fmt.Errorf("failed to store change key: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submit: %w", err)
	}

	slog.Info("vote submitted", "order_id", orderID, "period", active.Name, "candidate_id", candidateID)

	return &SubmitResult{
		OrderID:   orderID,
		Period:    active.Name,
		ChangeKey: changeKey,
	}, nil
}

// Change applies the single allowed vote change, authorized by the change
// key issued at submission, and rotates the key.
func (l *Ledger) Change(ctx context.Context, rawOrderID, candidateID, presentedKey, pid string) (*ChangeResult, error) {
	orderID, err := l.checkInput(rawOrderID, candidateID)
	if err != nil {
		return nil, err
	}
	if presentedKey == "" {
		return nil, ErrChangeKeyInvalid
	}

	// Pre-hash the replacement key for the same reason as in Submit.
	newKey, err := l.keys.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate change key: %w", err)
	}
	newHash, err := l.keys.Hash(newKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash change key: %w", err)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	active, err := period.Active(ctx, tx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotActive
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active period: %w", err)
	}

	var boundPID string
	err = tx.QueryRowContext(ctx, `
		SELECT pid FROM order_bindings WHERE order_id = $1
	`, orderID).Scan(&boundPID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order binding: %w", err)
	}
	if boundPID != pid {
		return nil, ErrPIDOrderMismatch
	}

	var vote models.Vote
	err = tx.QueryRowContext(ctx, `
		SELECT id, period_id, order_id, candidate_id, status, created_at, updated_at
		FROM votes
		WHERE period_id = $1 AND order_id = $2
	`, active.ID, orderID).Scan(
		&vote.ID, &vote.PeriodID, &vote.OrderID, &vote.CandidateID,
		&vote.Status, &vote.CreatedAt, &vote.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote: %w", err)
	}

	// The change-log count is the authoritative changes-used counter.
	var changesUsed int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM change_logs WHERE order_id = $1 AND period_id = $2
	`, orderID, active.ID).Scan(&changesUsed)
	if err != nil {
		return nil, fmt.Errorf("failed to count changes: %w", err)
	}
	if changesUsed >= changeLimit {
		return nil, ErrChangeLimit
	}

	var storedHash string
	err = tx.QueryRowContext(ctx, `
		SELECT key_hash FROM change_secrets WHERE order_id = $1 AND period_id = $2
	`, orderID, active.ID).Scan(&storedHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChangeKeyMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query change key: %w", err)
	}

	if !l.keys.Verify(presentedKey, storedHash) {
		return nil, ErrChangeKeyInvalid
	}

	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE votes SET candidate_id = $1, updated_at = $2 WHERE id = $3
	`, candidateID, now, vote.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update vote: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO change_logs (id, pid, order_id, period_id, from_candidate_id, to_candidate_id, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.NewString(), pid, orderID, active.ID, vote.CandidateID, candidateID, now)
	if db.IsUniqueViolation(err) {
		// A concurrent change won the race; its commit made this append a
		// duplicate. Surface the same rejection the count check gives.
		return nil, ErrChangeLimit
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append change log: %w", err)
	}

	// Rotate: replace the old key record in the same transaction so no
	// window exists where the pair has no key on record.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM change_secrets WHERE order_id = $1 AND period_id = $2
	`, orderID, active.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete change key: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO change_secrets (order_id, period_id, key_hash, issued_at)
		VALUES ($1, $2, $3, $4)
	`, orderID, active.ID, newHash, now)
	if err != nil {
		return nil, fmt.Errorf("failed to store rotated change key: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit change: %w", err)
	}

	slog.Info("vote changed",
		"order_id", orderID,
		"period", active.Name,
		"from_candidate_id", vote.CandidateID,
		"to_candidate_id", candidateID,
	)

	return &ChangeResult{
		OrderID:          orderID,
		Period:           active.Name,
		ChangeKey:        newKey,
		ChangesRemaining: 0,
	}, nil
}

// Verify returns the vote and change history for an order number in the
// named period (or the active one when periodName is empty). Read-only.
func (l *Ledger) Verify(ctx context.Context, rawOrderID, periodName string) (*VerifyResult, error) {
	orderID := order.Normalize(rawOrderID)
	if res := l.validator.Validate(orderID); !res.Valid {
		return nil, invalidOrderError(res.Errors)
	}

	var p *models.Period
	var err error
	if periodName != "" {
		p, err = l.periods.ByName(ctx, periodName)
	} else {
		p, err = l.periods.Active(ctx)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period: %w", err)
	}

	var vote models.Vote
	err = l.db.QueryRowContext(ctx, `
		SELECT id, period_id, order_id, candidate_id, status, created_at, updated_at
		FROM votes
		WHERE period_id = $1 AND order_id = $2
	`, p.ID, orderID).Scan(
		&vote.ID, &vote.PeriodID, &vote.OrderID, &vote.CandidateID,
		&vote.Status, &vote.CreatedAt, &vote.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vote: %w", err)
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, pid, order_id, period_id, from_candidate_id, to_candidate_id, changed_at
		FROM change_logs
		WHERE order_id = $1 AND period_id = $2
		ORDER BY changed_at
	`, orderID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query change logs: %w", err)
	}
	defer rows.Close()

	history := []models.ChangeLogEntry{}
	for rows.Next() {
		var e models.ChangeLogEntry
		if err := rows.Scan(&e.ID, &e.PID, &e.OrderID, &e.PeriodID,
			&e.FromCandidateID, &e.ToCandidateID, &e.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan change log: %w", err)
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read change logs: %w", err)
	}

	return &VerifyResult{
		OrderID:    orderID,
		Period:     p,
		Vote:       &vote,
		HasChanged: len(history) > 0,
		CanChange:  len(history) < changeLimit && p.Status == models.PeriodActive,
		History:    history,
	}, nil
}

// checkInput runs the structural checks shared by Submit and Change:
// order-number validation (warnings logged, never blocking) and roster
// membership.
func (l *Ledger) checkInput(rawOrderID, candidateID string) (string, error) {
	orderID := order.Normalize(rawOrderID)
	res := l.validator.Validate(orderID)
	if !res.Valid {
		return "", invalidOrderError(res.Errors)
	}
	if len(res.Warnings) > 0 {
		slog.Warn("order number flagged", "order_id", orderID, "warnings", res.Warnings)
	}

	if !roster.IsValidID(candidateID) {
		return "", ErrInvalidCandidate
	}

	return orderID, nil
}
