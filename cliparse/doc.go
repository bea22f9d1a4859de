// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win; environment variables fill the gaps.

# Settings

  - -p / PORT: server port (default 3321)
  - -d / DATABASE_URL: connection string (required)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default sqlite)
  - -cost / BCRYPT_COST: change-key hashing work factor (default 10)
  - -seed: create the current and next quarter periods on an empty table

# Example

	one-pick -p 3321 -d "postgres://..." -t postgres -seed
*/
package cliparse
