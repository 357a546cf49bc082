package calendar

// Built-in Ontario court calendar. Twelve statutory holidays per year
// observed by the Landlord and Tenant Board. The table is curated by hand;
// extend it year by year as dates are confirmed.

// DefaultTable returns the compiled-in Ontario statutory holiday table.
func DefaultTable() CalendarYear {
	return CalendarYear{
		"2024": {
			{Date: "2024-01-01", Name: "New Year's Day"},
			{Date: "2024-02-19", Name: "Family Day", Rule: "third Monday of February"},
			{Date: "2024-03-29", Name: "Good Friday"},
			{Date: "2024-04-01", Name: "Easter Monday"},
			{Date: "2024-05-20", Name: "Victoria Day", Rule: "Monday preceding May 25"},
			{Date: "2024-07-01", Name: "Canada Day"},
			{Date: "2024-08-05", Name: "Civic Holiday", Rule: "first Monday of August"},
			{Date: "2024-09-02", Name: "Labour Day", Rule: "first Monday of September"},
			{Date: "2024-10-14", Name: "Thanksgiving Day", Rule: "second Monday of October"},
			{Date: "2024-11-11", Name: "Remembrance Day"},
			{Date: "2024-12-25", Name: "Christmas Day"},
			{Date: "2024-12-26", Name: "Boxing Day"},
		},
		"2025": {
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-02-17", Name: "Family Day", Rule: "third Monday of February"},
			{Date: "2025-04-18", Name: "Good Friday"},
			{Date: "2025-04-21", Name: "Easter Monday"},
			{Date: "2025-05-19", Name: "Victoria Day", Rule: "Monday preceding May 25"},
			{Date: "2025-07-01", Name: "Canada Day"},
			{Date: "2025-08-04", Name: "Civic Holiday", Rule: "first Monday of August"},
			{Date: "2025-09-01", Name: "Labour Day", Rule: "first Monday of September"},
			{Date: "2025-10-13", Name: "Thanksgiving Day", Rule: "second Monday of October"},
			{Date: "2025-11-11", Name: "Remembrance Day"},
			{Date: "2025-12-25", Name: "Christmas Day"},
			{Date: "2025-12-26", Name: "Boxing Day"},
		},
		"2026": {
			{Date: "2026-01-01", Name: "New Year's Day"},
			{Date: "2026-02-16", Name: "Family Day", Rule: "third Monday of February"},
			{Date: "2026-04-03", Name: "Good Friday"},
			{Date: "2026-04-06", Name: "Easter Monday"},
			{Date: "2026-05-18", Name: "Victoria Day", Rule: "Monday preceding May 25"},
			{Date: "2026-07-01", Name: "Canada Day"},
			{Date: "2026-08-03", Name: "Civic Holiday", Rule: "first Monday of August"},
			{Date: "2026-09-07", Name: "Labour Day", Rule: "first Monday of September"},
			{Date: "2026-10-12", Name: "Thanksgiving Day", Rule: "second Monday of October"},
			{Date: "2026-11-11", Name: "Remembrance Day"},
			{Date: "2026-12-25", Name: "Christmas Day"},
			{Date: "2026-12-26", Name: "Boxing Day"},
		},
	}
}

// Default returns a Calendar over the built-in Ontario table.
func Default() *Calendar {
	return New(DefaultTable())
}

// DefaultRules returns the Bill 60 (2025) deadline periods.
func DefaultRules() Rules {
	return Rules{
		N4Notice: Rule{
			Days:     7,
			Type:     RuleBusinessDays,
			Excludes: []string{"weekends", "statutory_holidays"},
			Note:     "Bill 60 (2025) reduced the cure period from 14 to 7 business days.",
		},
		N12NoticeStandard: Rule{
			Days: 60,
			Type: RuleCalendarDays,
			Note: "Standard notice period; one month compensation required.",
		},
		N12NoticeExtended: Rule{
			Days: 120,
			Type: RuleCalendarDays,
			Note: "Bill 60 (2025): no compensation required at 120 days notice.",
		},
		ReviewPeriod: Rule{
			Days: 15,
			Type: RuleCalendarDays,
			Note: "Bill 60 (2025) reduced the review period from 30 to 15 days.",
		},
	}
}

// DefaultMetadata describes the built-in table.
func DefaultMetadata() Metadata {
	return Metadata{
		Description: "Ontario LTB statutory holiday calendar",
		Source:      "Tribunals Ontario published closure dates",
		LastUpdated: "2025-11-30",
	}
}
