/*
Package calendar provides the judicial holiday calendar and the calculation
rules that drive deadline math.

PURPOSE:
  Deadline calculations depend on knowing which days the tribunal treats as
  business days. This package holds the year-indexed statutory holiday table
  and answers exact-date lookups. It also carries the calculation rule
  configuration (how many days each notice type allows, and whether they are
  business or calendar days) so the numbers live in data, not code.

CONTRACT:
  Lookups never fail. A year that is not in the table simply has no holidays;
  the table is a finite, manually curated set of years and callers must not
  assume every year is covered.

SEE ALSO:
  - ontario.go: built-in Ontario court calendar (2024-2026)
  - loader.go: viper-based file loading
  - dates/engine.go: the consumer of this calendar
*/
package calendar

import (
	"fmt"
	"sort"
	"time"
)

// =============================================================================
// DATA MODEL
// =============================================================================

// Holiday is a single statutory holiday entry.
type Holiday struct {
	Date string `mapstructure:"date"` // ISO 8601, YYYY-MM-DD
	Name string `mapstructure:"name"`
	Rule string `mapstructure:"rule,omitempty"` // e.g. "third Monday of February"
	Note string `mapstructure:"note,omitempty"`
}

// CalendarYear maps a year (as a string, matching the config file schema)
// to that year's holidays.
type CalendarYear map[string][]Holiday

// Metadata describes where the calendar data came from.
type Metadata struct {
	Description string `mapstructure:"description"`
	Source      string `mapstructure:"source"`
	LastUpdated string `mapstructure:"last_updated"`
	Notes       string `mapstructure:"notes,omitempty"`
}

// Rule defines a deadline period: how many days, counted how.
type Rule struct {
	Days     int      `mapstructure:"days"`
	Type     string   `mapstructure:"type"` // RuleBusinessDays or RuleCalendarDays
	Excludes []string `mapstructure:"excludes,omitempty"`
	Note     string   `mapstructure:"note,omitempty"`
}

const (
	RuleBusinessDays = "business_days"
	RuleCalendarDays = "calendar_days"
)

// Rules holds the deadline periods for each notice type.
type Rules struct {
	N4Notice          Rule `mapstructure:"n4_notice"`
	N12NoticeStandard Rule `mapstructure:"n12_notice_standard"`
	N12NoticeExtended Rule `mapstructure:"n12_notice_extended"`
	ReviewPeriod      Rule `mapstructure:"review_period"`
}

// IsZero reports whether no rule has been configured.
func (r Rules) IsZero() bool {
	return r.N4Notice.Days == 0 && r.N12NoticeStandard.Days == 0 &&
		r.N12NoticeExtended.Days == 0 && r.ReviewPeriod.Days == 0
}

// =============================================================================
// CALENDAR - Immutable lookup over the holiday table
// =============================================================================

// Calendar answers "is this date a statutory holiday, and what is it called?"
// Built once at startup; never mutated afterwards.
type Calendar struct {
	years  CalendarYear
	byDate map[string]Holiday
}

// New builds a Calendar from a year-keyed holiday table.
func New(years CalendarYear) *Calendar {
	c := &Calendar{
		years:  make(CalendarYear, len(years)),
		byDate: make(map[string]Holiday),
	}
	for year, holidays := range years {
		sorted := make([]Holiday, len(holidays))
		copy(sorted, holidays)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
		c.years[year] = sorted
		for _, h := range sorted {
			c.byDate[h.Date] = h
		}
	}
	return c
}

// ListHolidays returns the holidays configured for a year, in date order.
// Unknown years yield an empty slice, never an error.
func (c *Calendar) ListHolidays(year int) []Holiday {
	holidays, ok := c.years[fmt.Sprintf("%d", year)]
	if !ok {
		return []Holiday{}
	}
	out := make([]Holiday, len(holidays))
	copy(out, holidays)
	return out
}

// HolidayOn looks up a holiday by exact date match.
func (c *Calendar) HolidayOn(date time.Time) (Holiday, bool) {
	h, ok := c.byDate[date.Format("2006-01-02")]
	return h, ok
}

// Years returns the configured year keys in ascending order.
func (c *Calendar) Years() []string {
	years := make([]string, 0, len(c.years))
	for y := range c.years {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
