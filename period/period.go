// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package period

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/danielhkuo/one-pick/db"
	"github.com/danielhkuo/one-pick/models"
)

// Registry resolves voting periods from the store. It never mutates period
// lifecycle; that is administered externally.
type Registry struct {
	db *sql.DB
}

func NewRegistry(conn *sql.DB) *Registry {
	return &Registry{db: conn}
}

// Active returns the period currently flagged active, or sql.ErrNoRows.
func (r *Registry) Active(ctx context.Context) (*models.Period, error) {
	return Active(ctx, r.db)
}

// ByName returns the period with the exact given name, or sql.ErrNoRows.
func (r *Registry) ByName(ctx context.Context, name string) (*models.Period, error) {
	return ByName(ctx, r.db, name)
}

// List returns all periods, most recent start time first.
func (r *Registry) List(ctx context.Context) ([]models.Period, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, start_at, end_at, status
		FROM periods
		ORDER BY start_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods := []models.Period{}
	for rows.Next() {
		var p models.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartAt, &p.EndAt, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// Active is the transaction-friendly form of Registry.Active: the ledger
// calls it on its own *sql.Tx so period resolution shares the submit/change
// transaction.
func Active(ctx context.Context, q db.Querier) (*models.Period, error) {
	return scanOne(q.QueryRowContext(ctx, `
		SELECT id, name, start_at, end_at, status
		FROM periods
		WHERE status = $1
		LIMIT 1
	`, models.PeriodActive))
}

// ByName is the transaction-friendly form of Registry.ByName.
func ByName(ctx context.Context, q db.Querier, name string) (*models.Period, error) {
	return scanOne(q.QueryRowContext(ctx, `
		SELECT id, name, start_at, end_at, status
		FROM periods
		WHERE name = $1
		LIMIT 1
	`, name))
}

func scanOne(row *sql.Row) (*models.Period, error) {
	var p models.Period
	if err := row.Scan(&p.ID, &p.Name, &p.StartAt, &p.EndAt, &p.Status); err != nil {
		return nil, err
	}
	return &p, nil
}

// Quarter naming. Periods follow the "2026 Q1" convention.

var nameFormat = regexp.MustCompile(`^(\d{4})\s*Q(\d)$`)

// CurrentName returns the quarter name containing now, e.g. "2026 Q1".
func CurrentName(now time.Time) string {
	quarter := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("%d Q%d", now.Year(), quarter)
}

// ParseName parses a quarter name like "2026 Q1" or "2026Q1".
func ParseName(name string) (year, quarter int, ok bool) {
	m := nameFormat.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	quarter, _ = strconv.Atoi(m[2])
	if quarter < 1 || quarter > 4 {
		return 0, 0, false
	}
	return year, quarter, true
}

// QuarterRange returns the UTC start and end instants of the given quarter:
// first day 00:00:00 through last day 23:59:59.
func QuarterRange(year, quarter int) (startAt, endAt time.Time) {
	startMonth := time.Month((quarter-1)*3 + 1)
	startAt = time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	endAt = startAt.AddDate(0, 3, 0).Add(-time.Second)
	return startAt, endAt
}
