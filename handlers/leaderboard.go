// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/danielhkuo/one-pick/db"
	"github.com/danielhkuo/one-pick/middleware"
	"github.com/danielhkuo/one-pick/models"
	"github.com/danielhkuo/one-pick/period"
	"github.com/danielhkuo/one-pick/roster"
)

type LeaderboardHandler struct {
	db      *sql.DB
	periods *period.Registry
}

func NewLeaderboardHandler(conn *sql.DB, periods *period.Registry) *LeaderboardHandler {
	return &LeaderboardHandler{db: conn, periods: periods}
}

// Get handles GET /api/one-pick/leaderboard?period=...
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	periodName := r.URL.Query().Get("period")

	var p *models.Period
	var err error
	if periodName != "" {
		p, err = h.periods.ByName(r.Context(), periodName)
	} else {
		p, err = h.periods.Active(r.Context())
	}
	if errors.Is(err, sql.ErrNoRows) {
		middleware.Error(w, http.StatusNotFound, models.CodePeriodNotFound, "period not found")
		return
	}
	if err != nil {
		slog.Error("failed to resolve period", "error", err)
		middleware.Error(w, http.StatusInternalServerError, models.CodeInternalError, "internal server error")
		return
	}

	entries, total, err := ComputeLeaderboard(r.Context(), h.db, p.ID)
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err, "period", p.Name)
		middleware.Error(w, http.StatusInternalServerError, models.CodeInternalError, "internal server error")
		return
	}

	middleware.Success(w, http.StatusOK, models.LeaderboardResponse{
		Period:       p.Name,
		PeriodStatus: p.Status,
		TotalVotes:   total,
		Leaderboard:  entries,
	})
}

// ComputeLeaderboard tallies valid votes per candidate for a period and
// left-merges the static roster so zero-vote candidates appear with count
// 0. Entries are sorted by count descending; ties keep roster declaration
// order (stable sort), which makes ranking deterministic. Rank is the
// 1-based position in the sorted order.
func ComputeLeaderboard(ctx context.Context, q db.Querier, periodID string) ([]models.LeaderboardEntry, int, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT candidate_id, COUNT(*)
		FROM votes
		WHERE period_id = $1 AND status = $2
		GROUP BY candidate_id
	`, periodID, models.VoteValid)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var candidateID string
		var count int
		if err := rows.Scan(&candidateID, &count); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[candidateID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read vote counts: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(roster.Candidates))
	total := 0
	for _, c := range roster.Candidates {
		count := counts[c.ID]
		total += count
		entries = append(entries, models.LeaderboardEntry{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			Avatar:        c.Avatar,
			VoteCount:     count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VoteCount > entries[j].VoteCount
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, total, nil
}
