// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package period resolves voting periods.

# Registry

Registry reads periods from the store:

	reg := period.NewRegistry(conn)
	active, err := reg.Active(ctx)      // the one active period
	named, err := reg.ByName(ctx, name) // exact-match lookup
	all, err := reg.List(ctx)           // most recent start first

Lookups return sql.ErrNoRows when no period matches. The registry never
mutates periods; lifecycle administration is an external concern, and
exactly-one-active is an invariant the administrator upholds.

The package-level Active and ByName forms take a db.Querier so the ledger
can resolve the period inside its own transaction.

# Quarter Naming

Periods follow the "2026 Q1" convention:

	period.CurrentName(time.Now())   // "2026 Q1"
	period.ParseName("2026 Q1")      // 2026, 1, true
	period.QuarterRange(2026, 1)     // Jan 1 00:00:00 .. Mar 31 23:59:59 UTC

# Seeding

Seed creates the current quarter (active) and the next (upcoming) on an
empty periods table, for fresh deployments started with -seed.
*/
package period
