// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	idLength  = 17
	prefix    = "TF"
	fixedTag  = "04"
	seqMin    = 1_000_000
	seqMax    = 9_999_999
	seqLength = 7
)

// blacklistSequences are obvious test entries rejected outright even though
// they are structurally well-formed.
var blacklistSequences = map[string]bool{
	"0000000": true,
	"1111111": true,
	"2222222": true,
	"3333333": true,
	"4444444": true,
	"5555555": true,
	"6666666": true,
	"7777777": true,
	"8888888": true,
	"9999999": true,
	"1234567": true,
	"7654321": true,
	"0123456": true,
	"9876543": true,
}

// Parts holds the fields of a structurally valid order number.
type Parts struct {
	Prefix   string // "TF"
	YY       string // "26"
	MM       string // "02"
	DD       string // "04"
	Fixed    string // "04"
	Sequence string // "1478489"
}

// Result aggregates everything found while validating one order number.
// Valid is true iff Errors is empty; Warnings are advisory fraud signals
// surfaced to callers for logging only.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
	Parts    *Parts
}

// Validator checks order numbers. The clock is injectable so tests can pin
// "now"; it must be the only source of time used during validation.
type Validator struct {
	now func() time.Time
}

// New returns a Validator using the wall clock.
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock returns a Validator with a fixed time source.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Normalize trims surrounding whitespace and uppercases the order number.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate normalizes raw and runs the structural, temporal, and sequence
// checks. Structural failures short-circuit; date and sequence findings
// accumulate. Pure apart from reading the injected clock.
func (v *Validator) Validate(raw string) Result {
	id := Normalize(raw)

	parts, structuralErr := parseStructure(id)
	if structuralErr != "" {
		return Result{Valid: false, Errors: []string{structuralErr}}
	}

	var errors, warnings []string

	if dateErr := v.validateDate(parts.YY + parts.MM + parts.DD); dateErr != "" {
		errors = append(errors, dateErr)
	}

	seqErr, seqWarning := validateSequence(parts.Sequence)
	if seqErr != "" {
		errors = append(errors, seqErr)
	}
	if seqWarning != "" {
		warnings = append(warnings, seqWarning)
	}

	return Result{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
		Parts:    parts,
	}
}

// parseStructure checks length, prefix, digit body, and the fixed tag, and
// splits the order number into its fields. Returns an error message on the
// first failure.
func parseStructure(id string) (*Parts, string) {
	if len(id) != idLength {
		return nil, "order number has wrong length"
	}

	if !strings.HasPrefix(id, prefix) {
		return nil, "order number must start with " + prefix
	}

	body := id[len(prefix):]
	for _, c := range body {
		if c < '0' || c > '9' {
			return nil, "order number format is invalid"
		}
	}

	parts := &Parts{
		Prefix:   id[0:2],
		YY:       id[2:4],
		MM:       id[4:6],
		DD:       id[6:8],
		Fixed:    id[8:10],
		Sequence: id[10:],
	}

	if parts.Fixed != fixedTag {
		return nil, "order number format is invalid"
	}

	return parts, ""
}

// validateDate interprets yymmdd as a 2000s calendar date and checks it
// against [today - 1 year, today + 1 day] at UTC midnight. The +1 day
// tolerance absorbs client/server timezone skew.
func (v *Validator) validateDate(yymmdd string) string {
	yy, _ := strconv.Atoi(yymmdd[0:2])
	mm, _ := strconv.Atoi(yymmdd[2:4])
	dd, _ := strconv.Atoi(yymmdd[4:6])

	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return "order date is invalid"
	}

	year := 2000 + yy
	if dd > daysInMonth(year, mm) {
		return "order date is invalid"
	}

	orderDate := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)

	now := v.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	oneYearAgo := today.AddDate(-1, 0, 0)

	if orderDate.After(tomorrow) {
		return "order date is in the future"
	}
	if orderDate.Before(oneYearAgo) {
		return "order date is too old (more than one year)"
	}

	return ""
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// validateSequence checks the 7-digit tail. Range and blacklist failures are
// errors; low digit diversity and monotonic runs are warnings only.
func validateSequence(sequence string) (errMsg, warning string) {
	seq, _ := strconv.Atoi(sequence)

	if seq < seqMin || seq > seqMax {
		return "order sequence is out of range", ""
	}

	if blacklistSequences[sequence] {
		return "order number is blacklisted", ""
	}

	distinct := make(map[byte]bool, seqLength)
	for i := 0; i < len(sequence); i++ {
		distinct[sequence[i]] = true
	}
	if len(distinct) <= 2 {
		return "", fmt.Sprintf("suspicious order sequence (only %d distinct digits)", len(distinct))
	}

	increasing, decreasing := true, true
	for i := 1; i < len(sequence); i++ {
		if sequence[i] != sequence[i-1]+1 {
			increasing = false
		}
		if sequence[i] != sequence[i-1]-1 {
			decreasing = false
		}
	}
	if increasing || decreasing {
		return "", "suspicious order sequence (monotonic digit run)"
	}

	return "", ""
}
