package dates

import (
	"time"

	"github.com/warp/tenancy-engine/calendar"
)

// =============================================================================
// ENGINE - Business-day primitives over the judicial calendar
// =============================================================================

// Engine answers business-day questions against a holiday calendar and
// carries the configured deadline rules. Stateless after construction;
// safe for concurrent use.
type Engine struct {
	cal   *calendar.Calendar
	rules calendar.Rules
}

// New builds an Engine over a calendar and rule set.
func New(cal *calendar.Calendar, rules calendar.Rules) *Engine {
	return &Engine{cal: cal, rules: rules}
}

// NewDefault builds an Engine over the built-in Ontario calendar and the
// Bill 60 rules.
func NewDefault() *Engine {
	return New(calendar.Default(), calendar.DefaultRules())
}

// Rules returns the configured deadline rules.
func (e *Engine) Rules() calendar.Rules {
	return e.rules
}

// IsBusinessDay reports whether a date is neither a weekend day nor a
// statutory holiday.
func (e *Engine) IsBusinessDay(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	if _, ok := e.cal.HolidayOn(t); ok {
		return false
	}
	return true
}

// NonBusinessDayReason explains why a date is not a business day:
// "Saturday", "Sunday", or the holiday name. Returns false for a
// business day.
func (e *Engine) NonBusinessDayReason(t time.Time) (string, bool) {
	switch t.Weekday() {
	case time.Saturday:
		return "Saturday", true
	case time.Sunday:
		return "Sunday", true
	}
	if h, ok := e.cal.HolidayOn(t); ok {
		return h.Name, true
	}
	return "", false
}

// BusinessDaysBetween counts business days strictly after start, up to and
// including end. Returns 0 whenever end <= start; the walk stops at the end
// boundary so the count cannot go negative.
func (e *Engine) BusinessDaysBetween(start, end string) int {
	from := ParseISO(start)
	to := ParseISO(end)

	count := 0
	for current := AddDays(from, 1); !current.After(to); current = AddDays(current, 1) {
		if e.IsBusinessDay(current) {
			count++
		}
	}
	return count
}

// CalendarDaysBetween returns end-start in whole days. Negative when end
// precedes start.
func (e *Engine) CalendarDaysBetween(start, end string) int {
	return daysBetween(ParseISO(start), ParseISO(end))
}
