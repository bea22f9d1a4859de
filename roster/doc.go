// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the static candidate roster.

The roster is a module-level literal loaded once at process start and
read-only for the process lifetime; its declaration order is the
deterministic tie-break for leaderboard ranking. Candidate IDs are
internal and never shown to users; NameOf falls back to "unknown" for
retired or malformed IDs appearing in old audit rows.
*/
package roster
