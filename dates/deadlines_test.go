package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tenancy-engine/dates"
	"github.com/warp/tenancy-engine/money"
)

// =============================================================================
// N4 CURE PERIOD TESTS
// =============================================================================

func TestN4Deadline_PlainWeek(t *testing.T) {
	// GIVEN: an N4 served Monday December 1, 2025
	// WHEN: counting 7 business days
	// THEN: the cure deadline is Wednesday December 10 and the landlord may
	//       file the L1 on December 11

	engine := dates.NewDefault()

	calc := engine.N4Deadline("2025-12-01", dates.ParseISO("2025-12-01"))

	assert.Equal(t, "2025-12-10", calc.CureDeadline)
	assert.Equal(t, "2025-12-11", calc.CanFileL1Date)
	assert.False(t, calc.IsExpired)

	// One weekend crossed: Dec 6 and Dec 7
	require.Len(t, calc.WorkdaysSkipped, 2)
	assert.Equal(t, dates.SkippedDay{Date: "2025-12-06", Reason: "Saturday"}, calc.WorkdaysSkipped[0])
	assert.Equal(t, dates.SkippedDay{Date: "2025-12-07", Reason: "Sunday"}, calc.WorkdaysSkipped[1])
}

func TestN4Deadline_SkipsChristmasAndBoxingDay(t *testing.T) {
	// GIVEN: an N4 served Monday December 22, 2025
	// THEN: Christmas, Boxing Day, New Year's Day, and two weekends push the
	//       deadline into January

	engine := dates.NewDefault()

	calc := engine.N4Deadline("2025-12-22", dates.ParseISO("2025-12-22"))

	assert.Equal(t, "2026-01-05", calc.CureDeadline)
	assert.Equal(t, "2026-01-06", calc.CanFileL1Date)

	reasons := make([]string, 0, len(calc.WorkdaysSkipped))
	for _, s := range calc.WorkdaysSkipped {
		reasons = append(reasons, s.Reason)
	}
	assert.Contains(t, reasons, "Christmas Day")
	assert.Contains(t, reasons, "Boxing Day")
	assert.Contains(t, reasons, "New Year's Day")
}

func TestN4Deadline_DaysRemaining(t *testing.T) {
	engine := dates.NewDefault()

	calc := engine.N4Deadline("2025-12-01", dates.ParseISO("2025-12-05"))
	assert.Equal(t, 5, calc.DaysRemaining, "calendar days from today to the deadline")
	assert.False(t, calc.IsExpired)

	calc = engine.N4Deadline("2025-12-01", dates.ParseISO("2025-12-10"))
	assert.Equal(t, 0, calc.DaysRemaining, "deadline day itself")
	assert.False(t, calc.IsExpired, "the deadline day is still within the cure period")

	calc = engine.N4Deadline("2025-12-01", dates.ParseISO("2025-12-11"))
	assert.True(t, calc.IsExpired)
	assert.Equal(t, 0, calc.DaysRemaining, "remaining days floor at zero")
}

func TestCureDeadline_CustomPeriod(t *testing.T) {
	// GIVEN: the pre-Bill 60 14-day period
	engine := dates.NewDefault()

	calc := engine.CureDeadline("2025-12-01", 14, dates.ParseISO("2025-12-01"))

	// 14 business days from Dec 2: two weekends plus no holidays until Dec 19
	assert.Equal(t, "2025-12-19", calc.CureDeadline)
}

func TestN4Deadline_Idempotent(t *testing.T) {
	// Same inputs, same complete result record. The calculators hold no
	// state between invocations.
	engine := dates.NewDefault()
	today := dates.ParseISO("2025-12-23")

	first := engine.N4Deadline("2025-12-22", today)
	second := engine.N4Deadline("2025-12-22", today)

	assert.Equal(t, first, second)
}

// =============================================================================
// N12 TERMINATION TESTS
// =============================================================================

func TestN12Termination_StandardNotice_CompensationOwed(t *testing.T) {
	// GIVEN: a 60-day N12 served December 1, 2025 with rent of $2,000
	// THEN: the tenancy ends January 30 and one month's compensation is owed

	engine := dates.NewDefault()
	rent := money.FromDollars(2000)

	calc := engine.N12Termination("2025-12-01", 60, rent)

	assert.Equal(t, "2026-01-30", calc.TerminationDate)
	assert.True(t, calc.CompensationRequired)
	assert.Equal(t, rent, calc.CompensationAmount)
	assert.Empty(t, calc.Warnings)
}

func TestN12Termination_ExtendedNotice_NoCompensation(t *testing.T) {
	// GIVEN: a 120-day N12 served December 1, 2025
	// THEN: the tenancy ends March 31 with no compensation and a note
	//       explaining the trade-off

	engine := dates.NewDefault()

	calc := engine.N12Termination("2025-12-01", 120, money.FromDollars(2000))

	assert.Equal(t, "2026-03-31", calc.TerminationDate)
	assert.False(t, calc.CompensationRequired)
	assert.Equal(t, money.Cents(0), calc.CompensationAmount)
	require.Len(t, calc.Warnings, 1)
	assert.Contains(t, calc.Warnings[0], "No compensation required")
	assert.Contains(t, calc.Warnings[0], "120 days")
}

func TestNoticeTermination_NonStandardPeriod(t *testing.T) {
	// An off-schedule notice length: no compensation, no waiver note.
	engine := dates.NewDefault()

	calc := engine.NoticeTermination("2025-12-01", 90, money.FromDollars(1500))

	assert.Equal(t, "2026-03-01", calc.TerminationDate)
	assert.False(t, calc.CompensationRequired)
	assert.Empty(t, calc.Warnings)
}

// =============================================================================
// REQUEST FOR REVIEW TESTS
// =============================================================================

func TestRequestForReview_FifteenCalendarDays(t *testing.T) {
	engine := dates.NewDefault()

	calc := engine.RequestForReview("2025-12-01", dates.ParseISO("2025-12-01"))

	assert.Equal(t, "2025-12-16", calc.Deadline)
	assert.Equal(t, 15, calc.DaysRemaining)
	assert.False(t, calc.IsExpired)

	// Only the standing Bill 60 note; no urgency yet.
	require.Len(t, calc.Warnings, 1)
	assert.Contains(t, calc.Warnings[0], "reduced from 30 to 15 days")
}

func TestRequestForReview_CrossesYearBoundary(t *testing.T) {
	engine := dates.NewDefault()

	calc := engine.RequestForReview("2025-12-20", dates.ParseISO("2025-12-20"))

	assert.Equal(t, "2026-01-04", calc.Deadline)
}

func TestRequestForReview_LeapYear(t *testing.T) {
	engine := dates.NewDefault()

	calc := engine.RequestForReview("2024-02-20", dates.ParseISO("2024-02-20"))

	assert.Equal(t, "2024-03-06", calc.Deadline, "February 29, 2024 counts")
}

func TestRequestForReview_UrgentWindow(t *testing.T) {
	// GIVEN: only 3 days left before the review deadline
	engine := dates.NewDefault()

	calc := engine.RequestForReview("2025-12-01", dates.ParseISO("2025-12-13"))

	assert.Equal(t, 3, calc.DaysRemaining)
	require.Len(t, calc.Warnings, 2)
	assert.Contains(t, calc.Warnings[0], "URGENT")
	assert.Contains(t, calc.Warnings[0], "3 days")
}

func TestRequestForReview_Expired(t *testing.T) {
	engine := dates.NewDefault()

	calc := engine.RequestForReview("2025-12-01", dates.ParseISO("2025-12-20"))

	assert.True(t, calc.IsExpired)
	assert.Equal(t, 0, calc.DaysRemaining)
	require.Len(t, calc.Warnings, 2)
	assert.Contains(t, calc.Warnings[0], "has passed")
}
