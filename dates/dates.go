/*
Package dates provides civil-date arithmetic and the deadline calculators
for eviction notices.

PURPOSE:
  All deadline math in this module runs on whole days: dates are time.Time
  values pinned to UTC midnight, and "today" is always an explicit caller
  input so every calculation is a pure function. The Engine combines the
  day primitives with the judicial calendar to answer the questions that
  matter to a tenant: when does my cure period end, when can the landlord
  file, how long do I have to ask for a review.

DATE PARSING:
  ParseISO is deliberately permissive: it splits on "-" and feeds the parts
  to time.Date, which normalizes out-of-range components (2025-02-30 becomes
  2025-03-02). Syntax validation is a separate concern (see arrears
  validation); the parser itself never fails.

SEE ALSO:
  - engine.go: business-day primitives over the calendar
  - deadlines.go: cure, termination, and review calculators
*/
package dates

import (
	"strconv"
	"strings"
	"time"
)

// isoLayout is the boundary date format used across the module.
const isoLayout = "2006-01-02"

// ParseISO parses a YYYY-MM-DD string to a UTC-midnight time.Time.
// Missing parts default to month 1 / day 1; out-of-range parts roll over.
func ParseISO(s string) time.Time {
	parts := strings.Split(s, "-")
	year := atoi(parts[0])
	month, day := 1, 1
	if len(parts) > 1 {
		month = atoi(parts[1])
	}
	if len(parts) > 2 {
		day = atoi(parts[2])
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// FormatISO formats a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

// Midnight truncates a time to UTC midnight. A few hours' difference in
// "today" must never change a remaining-day count.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight. Boundary default only;
// the calculators take today as a parameter.
func Today() time.Time {
	return Midnight(time.Now().UTC())
}

// AddDays returns the date n calendar days after t. n may be negative.
// The input is not mutated.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// daysBetween returns to-from in whole days for midnight-aligned dates.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
