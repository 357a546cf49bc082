package deposit_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tenancy-engine/deposit"
	"github.com/warp/tenancy-engine/money"
)

// =============================================================================
// ESTIMATE TESTS
// =============================================================================

func TestEstimate_HalfOfArrears(t *testing.T) {
	// GIVEN: $1,500 in arrears under the implied 50% deposit
	// THEN: the estimate is $750

	calc := deposit.Estimate(money.FromDollars(1500))

	assert.Equal(t, money.FromDollars(750), calc.DepositRequired)
	assert.Equal(t, 0.5, calc.DepositPercentage)
	assert.Equal(t, deposit.StatusDraft, calc.RegulatoryStatus)
}

func TestEstimate_RoundsOddCents(t *testing.T) {
	// $33.33 -> half is $16.665 -> rounds to $16.67
	calc := deposit.Estimate(money.Cents(3333))

	assert.Equal(t, money.Cents(1667), calc.DepositRequired)
}

func TestEstimate_UncertaintyWarningAlwaysFirst(t *testing.T) {
	// The regulatory caveat must lead every result, even a zero estimate.
	for _, arrears := range []money.Cents{0, money.FromDollars(1500)} {
		calc := deposit.Estimate(arrears)

		require.NotEmpty(t, calc.Warnings)
		assert.Contains(t, calc.Warnings[0], "NOT YET CONFIRMED")
		assert.Contains(t, calc.Warnings[0], "50%")
	}
}

func TestEstimate_ZeroArrears(t *testing.T) {
	calc := deposit.Estimate(0)

	assert.Equal(t, money.Cents(0), calc.DepositRequired)
	// Uncertainty caveat plus the advance-notice reminder; no trust-payment
	// guidance when nothing is owed.
	require.Len(t, calc.Warnings, 2)
	assert.Contains(t, calc.Warnings[1], "ADVANCE WRITTEN NOTICE")
}

func TestEstimate_PositiveArrears_FullWarningSet(t *testing.T) {
	calc := deposit.Estimate(money.FromDollars(1500))

	require.Len(t, calc.Warnings, 4)
	assert.Contains(t, calc.Warnings[1], "$750.00")
	assert.Contains(t, calc.Warnings[2], "legal clinic")
	assert.Contains(t, calc.Warnings[3], "ADVANCE WRITTEN NOTICE")
}

func TestEstimator_MinimumFloor(t *testing.T) {
	// GIVEN: a hypothetical $500 minimum once regulations land
	minimum := money.FromDollars(500)
	est := deposit.NewEstimator()
	est.Minimum = &minimum

	calc := est.Estimate(money.FromDollars(400))

	assert.Equal(t, minimum, calc.DepositRequired, "floor overrides the percentage")

	found := false
	for _, w := range calc.Warnings {
		if strings.Contains(w, "minimum deposit of $500.00") {
			found = true
		}
	}
	assert.True(t, found, "minimum floor must be explained")
}

func TestEstimator_CustomPercentage(t *testing.T) {
	est := deposit.NewEstimator()
	est.Percentage = decimal.NewFromFloat(0.25)

	calc := est.Estimate(money.FromDollars(1000))

	assert.Equal(t, money.FromDollars(250), calc.DepositRequired)
	assert.Equal(t, 0.25, calc.DepositPercentage)
	assert.Contains(t, calc.Warnings[0], "25%")
}

func TestEstimator_Confirmed(t *testing.T) {
	est := deposit.NewEstimator()
	assert.False(t, est.Confirmed())

	est.Status = deposit.StatusConfirmed
	assert.True(t, est.Confirmed())
}

// =============================================================================
// REPORT TESTS
// =============================================================================

func TestSummary_CompleteReport(t *testing.T) {
	calc := deposit.Estimate(money.FromDollars(1500))
	generated := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	text := deposit.Summary(calc, generated)

	assert.Contains(t, text, "--- SECTION 82 DEPOSIT ESTIMATE ---")
	assert.Contains(t, text, "Generated: 2025-12-01")
	assert.Contains(t, text, "REGULATORY STATUS: DRAFT")
	assert.Contains(t, text, "Arrears Amount:     $1,500.00")
	assert.Contains(t, text, "Estimated Deposit:  $750.00")
	assert.Contains(t, text, "IMPORTANT WARNINGS:")
	assert.Contains(t, text, "NEXT STEPS:")
	assert.Contains(t, text, "--- END OF SUMMARY ---")
}
