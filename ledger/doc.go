// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote lifecycle state machine.

# States

Per (order number, period):

	unbound -> bound-unvoted -> voted -> voted-changed

voted-changed is terminal for the period. The PID-to-order binding created
on the first transition is period-independent and permanent: an order
number, once bound, belongs to that PID forever.

# Operations

  - Submit: validates the order number and candidate, binds the order
    number on first sight, records the vote, and issues the change key.
    The plaintext key is visible exactly once, in the response.
  - Change: verifies ownership and the presented change key, applies the
    single allowed change, appends the audit entry, and rotates the key.
    The rotated key is returned with changes_remaining 0; it is issued for
    audit symmetry and is never usable.
  - Verify: read-only view of the vote and change history for a period.

# Transactions

Submit and Change each run all their checks and writes in one transaction,
committed only when every step succeeds. The store's uniqueness constraints
are the backstop under concurrency: a losing racer hits a constraint on its
insert (binding, vote, or change-log row) and the violation is mapped to
the same rejection the read check would have produced.

# Errors

Every rejection is a *ledger.Error carrying a stable code from models.
Callers branch with errors.As; anything that is not a *ledger.Error is an
internal failure and safe to retry.
*/
package ledger
