/*
Package deposit estimates the Section 82 defense deposit.

PURPOSE:
  Section 82 of the RTA lets a tenant raise maintenance and repair issues
  as a defense or set-off at an eviction hearing for non-payment of rent.
  Bill 60 introduced a deposit requirement to use that defense, but the
  exact amount is still in DRAFT regulatory status. The estimator applies
  the implied percentage and attaches a prominent uncertainty warning to
  every result; it never validates its input, degenerate amounts pass
  through arithmetically.
*/
package deposit

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/tenancy-engine/money"
)

// RegulatoryStatus tracks how settled the deposit requirement is.
type RegulatoryStatus string

const (
	StatusConfirmed RegulatoryStatus = "confirmed"
	StatusDraft     RegulatoryStatus = "draft"
	StatusPending   RegulatoryStatus = "pending"
)

// =============================================================================
// ESTIMATOR
// =============================================================================

// Estimator computes deposit estimates. Update Status and Percentage when
// the regulation is finalized.
type Estimator struct {
	// Percentage is the implied deposit fraction from Bill 60 analysis
	// (0.5 = 50%). NOT yet confirmed by regulation.
	Percentage decimal.Decimal

	// Minimum is an optional fixed floor. None is currently defined.
	Minimum *money.Cents

	// Status is the current regulatory status of the requirement.
	Status RegulatoryStatus
}

// NewEstimator returns an Estimator with the current draft parameters.
func NewEstimator() *Estimator {
	return &Estimator{
		Percentage: decimal.NewFromFloat(0.5),
		Minimum:    nil,
		Status:     StatusDraft,
	}
}

// Confirmed reports whether the deposit rules are confirmed by regulation.
func (e *Estimator) Confirmed() bool {
	return e.Status == StatusConfirmed
}

// =============================================================================
// RESULT
// =============================================================================

// Calculation is the deposit estimate result.
type Calculation struct {
	ArrearsAmount     money.Cents
	DepositRequired   money.Cents
	DepositPercentage float64
	RegulatoryStatus  RegulatoryStatus
	Warnings          []string
}

// =============================================================================
// ESTIMATE
// =============================================================================

// Estimate computes the deposit for an arrears amount. The regulatory
// uncertainty warning is always attached, regardless of the amount.
func (e *Estimator) Estimate(arrears money.Cents) Calculation {
	percent, _ := e.Percentage.Mul(decimal.NewFromInt(100)).Float64()

	warnings := []string{fmt.Sprintf(
		"IMPORTANT: The deposit requirement is NOT YET CONFIRMED. Bill 60 implies %.0f%% but regulations have not been finalized. Check with the LTB or a legal clinic before relying on this estimate.",
		percent)}

	required := money.ApplyRate(arrears, e.Percentage)

	if e.Minimum != nil && required < *e.Minimum {
		required = *e.Minimum
		warnings = append(warnings, fmt.Sprintf(
			"A minimum deposit of %s may apply regardless of arrears amount.",
			money.Format(*e.Minimum)))
	}

	if arrears > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"To raise maintenance issues at your hearing, you may need to pay %s into trust with the LTB.",
			money.Format(required)))
		warnings = append(warnings,
			"If you cannot afford the deposit, contact a community legal clinic immediately. Some exceptions may apply.")
	}

	warnings = append(warnings,
		"Section 82 requires ADVANCE WRITTEN NOTICE to the landlord. The timeline for this notice is also not yet defined; monitor LTB Rules of Practice.")

	fraction, _ := e.Percentage.Float64()
	return Calculation{
		ArrearsAmount:     arrears,
		DepositRequired:   required,
		DepositPercentage: fraction,
		RegulatoryStatus:  e.Status,
		Warnings:          warnings,
	}
}

// Estimate computes a deposit with the current draft parameters.
func Estimate(arrears money.Cents) Calculation {
	return NewEstimator().Estimate(arrears)
}

// =============================================================================
// PLAIN TEXT OUTPUT
// =============================================================================

// Summary renders the estimate as a plain-text report.
func Summary(calc Calculation, generated time.Time) string {
	var lines []string

	lines = append(lines,
		"--- SECTION 82 DEPOSIT ESTIMATE ---",
		"Generated: "+generated.Format("2006-01-02"),
		"Tool: Tenancy Engine (NOT LEGAL ADVICE)",
		"",
		"REGULATORY STATUS: "+strings.ToUpper(string(calc.RegulatoryStatus)),
		"    This estimate may change when regulations are finalized.",
		"",
		"CALCULATION:",
		"Arrears Amount:     "+money.Format(calc.ArrearsAmount),
		fmt.Sprintf("Deposit Percentage: %.0f%% (implied, not confirmed)", calc.DepositPercentage*100),
		"Estimated Deposit:  "+money.Format(calc.DepositRequired),
		"",
		"WHAT IS SECTION 82?",
		"Section 82 of the RTA lets you raise maintenance/repair issues",
		"as a defense or set-off at an eviction hearing for unpaid rent.",
		"Bill 60 added a deposit requirement to use this defense.",
		"",
	)

	if len(calc.Warnings) > 0 {
		lines = append(lines, "IMPORTANT WARNINGS:")
		for _, warning := range calc.Warnings {
			lines = append(lines, "* "+warning)
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"NEXT STEPS:",
		"1. Confirm deposit amount with LTB or legal clinic",
		"2. Send advance written notice to landlord (timeline TBD)",
		"3. Document all maintenance issues with photos/records",
		"4. Gather evidence: repair requests, landlord responses",
		"",
		"DISCLAIMER: This estimate is for information only.",
		"Rules may change. Get legal advice for your situation.",
		"",
		"--- END OF SUMMARY ---",
	)

	return strings.Join(lines, "\n")
}
