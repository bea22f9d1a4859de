// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package order validates purchase-order numbers.

# Format

An order number is 17 characters:

	TF 26 02 04 04 1478489
	|  |  |  |  |  └─ 7-digit sequence (1000000-9999999)
	|  |  |  |  └─ fixed tag, always "04"
	|  |  |  └─ day
	|  |  └─ month
	|  └─ year (2000s)
	└─ fixed prefix

# Checks

Validate runs three layers:

  - Structural: length, prefix, all-digit body, fixed tag. The first failure
    short-circuits the rest.
  - Temporal: the embedded date must be a real calendar date within
    [today - 1 year, today + 1 day], evaluated at UTC midnight.
  - Sequence: range check, a blacklist of degenerate sequences (all one
    digit, canonical ascending/descending runs), and advisory warnings for
    low digit diversity or strictly monotonic runs.

Errors reject; warnings are fraud signals surfaced for logging only.

# Determinism

The validator is pure except for reading its clock, which is injected via
NewWithClock so tests can pin "now":

	v := order.NewWithClock(func() time.Time { return fixed })
	res := v.Validate("TF260204041478489")
*/
package order
