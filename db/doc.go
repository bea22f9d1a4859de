// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and shared query plumbing.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is portable across postgres (lib/pq) and sqlite (modernc.org/sqlite):
no database-side timestamp defaults, TEXT keys, and $1 placeholders (both
drivers accept them).

# Tables

  - periods: Named voting windows (upcoming/active/closed)
  - order_bindings: Permanent PID-to-order-number bindings
  - votes: One vote per order number per period
  - change_secrets: The single live change-key digest per order/period
  - change_logs: Append-only audit trail of vote changes

# Integrity Constraints

The store is the last line of defense for the protocol invariants:

  - order_bindings.pid and order_bindings.order_id are each globally unique
  - votes UNIQUE(period_id, order_id)
  - change_secrets UNIQUE(order_id, period_id)
  - change_logs UNIQUE(order_id, period_id): with a one-change limit the
    audit append doubles as the serialization point for racing changes

# Querier

Querier is satisfied by both *sql.DB and *sql.Tx so registry lookups and
aggregate queries can run inside or outside a transaction.

# Unique Violations

IsUniqueViolation recognizes constraint failures from both drivers so
callers can map them to domain conflicts instead of internal errors.
*/
package db
