// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package period

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/one-pick/models"
)

// Seed bootstraps the period table on a fresh deployment: the quarter
// containing now becomes the active period and the following quarter is
// created as upcoming. A no-op if any period already exists, so it is safe
// behind a startup flag.
func Seed(ctx context.Context, conn *sql.DB, now time.Time) error {
	var count int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM periods`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count periods: %w", err)
	}
	if count > 0 {
		return nil
	}

	year, quarter, _ := ParseName(CurrentName(now))

	if err := insertQuarter(ctx, conn, year, quarter, models.PeriodActive); err != nil {
		return err
	}

	nextYear, nextQuarter := year, quarter+1
	if nextQuarter > 4 {
		nextYear, nextQuarter = year+1, 1
	}
	return insertQuarter(ctx, conn, nextYear, nextQuarter, models.PeriodUpcoming)
}

func insertQuarter(ctx context.Context, conn *sql.DB, year, quarter int, status string) error {
	startAt, endAt := QuarterRange(year, quarter)
	name := fmt.Sprintf("%d Q%d", year, quarter)

	_, err := conn.ExecContext(ctx, `
		INSERT INTO periods (id, name, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), name, startAt, endAt, status)
	if err != nil {
		return fmt.Errorf("failed to seed period %s: %w", name, err)
	}
	return nil
}
