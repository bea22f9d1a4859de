// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package order

import (
	"strings"
	"testing"
	"time"
)

// fixedClock pins "now" to 2026-02-05 12:00 UTC so date-window cases are
// deterministic.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  tf260204041478489 ", "TF260204041478489"},
		{"TF260204041478489", "TF260204041478489"},
		{"tf260204041478489", "TF260204041478489"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	v := NewWithClock(fixedClock())

	inputs := []string{" tf260204041478489 ", "TF261301041478489", "garbage"}
	for _, in := range inputs {
		once := v.Validate(Normalize(in))
		twice := v.Validate(Normalize(Normalize(in)))
		if once.Valid != twice.Valid || len(once.Errors) != len(twice.Errors) {
			t.Errorf("validation not idempotent under normalization for %q", in)
		}
	}
}

func TestValidateHappyPath(t *testing.T) {
	v := NewWithClock(fixedClock())

	res := v.Validate("TF260204041478489")
	if !res.Valid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
	if res.Parts == nil {
		t.Fatal("expected parsed parts")
	}
	if res.Parts.Prefix != "TF" || res.Parts.YY != "26" || res.Parts.MM != "02" ||
		res.Parts.DD != "04" || res.Parts.Fixed != "04" || res.Parts.Sequence != "1478489" {
		t.Errorf("unexpected parts: %+v", res.Parts)
	}
}

func TestValidateStructural(t *testing.T) {
	v := NewWithClock(fixedClock())

	tests := []struct {
		name    string
		orderID string
	}{
		{"too short", "TF2602040414784"},
		{"too long", "TF26020404147848900"},
		{"wrong prefix", "XX260204041478489"},
		{"letters in body", "TF2602040414784AB"},
		{"wrong fixed tag", "TF260204051478489"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.orderID)
			if res.Valid {
				t.Errorf("expected invalid for %q", tt.orderID)
			}
			if len(res.Errors) != 1 {
				t.Errorf("structural failures should short-circuit, got errors %v", res.Errors)
			}
			if res.Parts != nil {
				t.Error("structural failures should not return parts")
			}
		})
	}
}

func TestValidateDateWindow(t *testing.T) {
	v := NewWithClock(fixedClock())

	tests := []struct {
		name    string
		orderID string
		valid   bool
		errPart string
	}{
		// now is pinned to 2026-02-05
		{"today", "TF260205041478489", true, ""},
		{"tomorrow allowed", "TF260206041478489", true, ""},
		{"two days ahead rejected", "TF260207041478489", false, "future"},
		{"exactly one year ago", "TF250205041478489", true, ""},
		{"400 days old", "TF250101041478489", false, "too old"},
		{"month 13", "TF261301041478489", false, "invalid"},
		{"day 32", "TF260232041478489", false, "invalid"},
		{"feb 30", "TF260230041478489", false, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.orderID)
			if res.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid, tt.valid, res.Errors)
			}
			if !tt.valid && !strings.Contains(strings.Join(res.Errors, "; "), tt.errPart) {
				t.Errorf("expected error containing %q, got %v", tt.errPart, res.Errors)
			}
		})
	}
}

func TestValidateSequence(t *testing.T) {
	v := NewWithClock(fixedClock())

	tests := []struct {
		name     string
		orderID  string
		valid    bool
		warnings int
	}{
		{"blacklisted all ones", "TF260204041111111", false, 0},
		{"blacklisted ascending", "TF260204041234567", false, 0},
		{"blacklisted descending", "TF260204047654321", false, 0},
		{"out of range low", "TF260204040999999", false, 0},
		{"two distinct digits warn", "TF260204041212121", true, 1},
		{"monotonic ascending warn", "TF260204042345678", true, 1},
		{"monotonic descending warn", "TF260204048765432", true, 1},
		{"ordinary sequence", "TF260204041478489", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.orderID)
			if res.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (errors: %v)", res.Valid, tt.valid, res.Errors)
			}
			if len(res.Warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", res.Warnings, tt.warnings)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	v := NewWithClock(fixedClock())

	first := v.Validate("TF260204041212121")
	for i := 0; i < 10; i++ {
		again := v.Validate("TF260204041212121")
		if again.Valid != first.Valid ||
			strings.Join(again.Errors, "|") != strings.Join(first.Errors, "|") ||
			strings.Join(again.Warnings, "|") != strings.Join(first.Warnings, "|") {
			t.Fatal("identical input produced different results")
		}
	}
}
