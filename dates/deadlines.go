/*
deadlines.go - Cure, termination, and review deadline calculators

PURPOSE:
  The three calculations a tenant facing eviction actually needs:

  1. CureDeadline: how long do I have to pay arrears after an N4 notice,
     counted in business days against the judicial calendar, with every
     skipped weekend/holiday recorded so the math can be explained.
  2. NoticeTermination: when does an N12 (landlord's own use) tenancy end,
     and is one month's compensation owed.
  3. ReviewDeadline: how long do I have to file a Request for Review of an
     LTB order, in calendar days.

DETERMINISM:
  "today" is an explicit parameter, normalized to midnight, so results are
  a pure function of their inputs. The boundary defaults it with Today().
*/
package dates

import (
	"fmt"
	"time"

	"github.com/warp/tenancy-engine/money"
)

// urgentReviewWindow is the remaining-day threshold below which a review
// deadline is flagged URGENT.
const urgentReviewWindow = 5

// =============================================================================
// RESULT RECORDS
// =============================================================================

// SkippedDay records a day that did not count toward a cure period.
type SkippedDay struct {
	Date   string
	Reason string // "Saturday", "Sunday", or the holiday name
}

// N4Calculation is the result of a cure-period calculation.
type N4Calculation struct {
	ServedDate      string
	CureDeadline    string // last day the tenant can pay
	CanFileL1Date   string // day after the deadline; earliest L1 filing
	DaysRemaining   int    // floored at 0
	IsExpired       bool   // today strictly after the deadline
	WorkdaysSkipped []SkippedDay
}

// N12Calculation is the result of a notice-termination calculation.
type N12Calculation struct {
	ServedDate           string
	TerminationDate      string
	NoticeDays           int
	CompensationRequired bool
	CompensationAmount   money.Cents
	Warnings             []string
}

// ReviewCalculation is the result of a review-deadline calculation.
type ReviewCalculation struct {
	OrderDate     string
	Deadline      string
	DaysRemaining int
	IsExpired     bool
	Warnings      []string
}

// =============================================================================
// CURE PERIOD (N4)
// =============================================================================

// CureDeadline walks forward from the day after service, counting business
// days until cureDays are reached. That day is the deadline; the next day
// is the earliest the landlord may file. Every skipped day is recorded with
// its reason.
func (e *Engine) CureDeadline(servedDate string, cureDays int, today time.Time) N4Calculation {
	served := ParseISO(servedDate)
	today = Midnight(today)

	count := 0
	current := AddDays(served, 1)
	var skipped []SkippedDay

	for count < cureDays {
		if e.IsBusinessDay(current) {
			count++
		} else if reason, ok := e.NonBusinessDayReason(current); ok {
			skipped = append(skipped, SkippedDay{Date: FormatISO(current), Reason: reason})
		}
		if count < cureDays {
			current = AddDays(current, 1)
		}
	}

	deadline := current
	remaining := daysBetween(today, deadline)

	return N4Calculation{
		ServedDate:      servedDate,
		CureDeadline:    FormatISO(deadline),
		CanFileL1Date:   FormatISO(AddDays(deadline, 1)),
		DaysRemaining:   clampDays(remaining),
		IsExpired:       today.After(deadline),
		WorkdaysSkipped: skipped,
	}
}

// N4Deadline computes the cure deadline using the configured N4 rule
// (7 business days under Bill 60).
func (e *Engine) N4Deadline(servedDate string, today time.Time) N4Calculation {
	return e.CureDeadline(servedDate, e.rules.N4Notice.Days, today)
}

// =============================================================================
// FIXED NOTICE PERIOD (N12)
// =============================================================================

// NoticeTermination computes the termination date for a fixed notice
// period in calendar days. Compensation of exactly one month's rent is
// owed only at the standard notice length; the extended length waives it.
func (e *Engine) NoticeTermination(servedDate string, noticeDays int, monthlyRent money.Cents) N12Calculation {
	termination := AddDays(ParseISO(servedDate), noticeDays)

	var warnings []string
	required := noticeDays == e.rules.N12NoticeStandard.Days
	amount := money.Cents(0)
	if required {
		amount = monthlyRent
	}
	if noticeDays == e.rules.N12NoticeExtended.Days {
		warnings = append(warnings, fmt.Sprintf(
			"Bill 60 (2025): No compensation required when landlord provides %d days notice.",
			noticeDays))
	}

	return N12Calculation{
		ServedDate:           servedDate,
		TerminationDate:      FormatISO(termination),
		NoticeDays:           noticeDays,
		CompensationRequired: required,
		CompensationAmount:   amount,
		Warnings:             warnings,
	}
}

// N12Termination computes the termination for the standard or extended
// configured period, whichever noticeDays matches.
func (e *Engine) N12Termination(servedDate string, noticeDays int, monthlyRent money.Cents) N12Calculation {
	return e.NoticeTermination(servedDate, noticeDays, monthlyRent)
}

// =============================================================================
// REVIEW PERIOD (Request for Review)
// =============================================================================

// ReviewDeadline computes a fixed calendar-day review deadline. Urgency
// warnings are based on the raw remaining count before clamping, so an
// already-passed deadline is reported as expired rather than urgent.
func (e *Engine) ReviewDeadline(orderDate string, reviewDays int, today time.Time) ReviewCalculation {
	deadline := AddDays(ParseISO(orderDate), reviewDays)
	today = Midnight(today)
	remaining := daysBetween(today, deadline)

	var warnings []string
	if remaining > 0 && remaining <= urgentReviewWindow {
		warnings = append(warnings, fmt.Sprintf(
			"URGENT: Only %d days left to file Request for Review.", remaining))
	}
	if remaining <= 0 {
		warnings = append(warnings, "The deadline to file a Request for Review has passed.")
	}
	warnings = append(warnings, fmt.Sprintf(
		"Bill 60 (2025): Review period reduced from 30 to %d days. Act quickly.", reviewDays))

	return ReviewCalculation{
		OrderDate:     orderDate,
		Deadline:      FormatISO(deadline),
		DaysRemaining: clampDays(remaining),
		IsExpired:     today.After(deadline),
		Warnings:      warnings,
	}
}

// RequestForReview computes the review deadline using the configured
// review rule (15 calendar days under Bill 60).
func (e *Engine) RequestForReview(orderDate string, today time.Time) ReviewCalculation {
	return e.ReviewDeadline(orderDate, e.rules.ReviewPeriod.Days, today)
}

func clampDays(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
