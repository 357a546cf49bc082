package arrears_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/tenancy-engine/arrears"
	"github.com/warp/tenancy-engine/money"
)

// =============================================================================
// CHARGE VALIDATION TESTS
// =============================================================================

func TestValidateCharge_WellFormed(t *testing.T) {
	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "2025-01-01",
		Amount:   money.FromDollars(1500),
		Category: arrears.CategoryRent,
	})

	assert.Empty(t, problems)
	assert.NotNil(t, problems, "valid input yields an empty list, not nil")
}

func TestValidateCharge_SyntaxOnlyDateCheck(t *testing.T) {
	// GIVEN: a date that matches YYYY-MM-DD but is not a real calendar day
	// THEN: validation passes; rollover at parse time is the contract

	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "2025-02-30",
		Amount:   money.FromDollars(100),
		Category: arrears.CategoryRent,
	})

	assert.Empty(t, problems)
}

func TestValidateCharge_BadDateFormats(t *testing.T) {
	for _, date := range []string{"01/01/2025", "2025-1-1", "not-a-date", ""} {
		problems := arrears.ValidateCharge(arrears.Charge{
			Date:     date,
			Amount:   money.FromDollars(100),
			Category: arrears.CategoryRent,
		})
		assert.Contains(t, problems, "Invalid date format. Use YYYY-MM-DD.", "date %q", date)
	}
}

func TestValidateCharge_NegativeAmount(t *testing.T) {
	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "2025-01-01",
		Amount:   money.FromDollars(-5),
		Category: arrears.CategoryRent,
	})

	assert.Contains(t, problems, "Amount must be a positive number.")
}

func TestValidateCharge_ZeroAmountAccepted(t *testing.T) {
	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "2025-01-01",
		Amount:   0,
		Category: arrears.CategoryRent,
	})

	assert.Empty(t, problems)
}

func TestValidateCharge_UnknownCategory(t *testing.T) {
	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "2025-01-01",
		Amount:   money.FromDollars(100),
		Category: "parking",
	})

	assert.Contains(t, problems, "Category must be: rent, late_fee, utility, or other.")
}

func TestValidateCharge_MultipleProblems(t *testing.T) {
	problems := arrears.ValidateCharge(arrears.Charge{
		Date:     "bad",
		Amount:   money.FromDollars(-1),
		Category: "parking",
	})

	assert.Len(t, problems, 3, "every problem is reported, not just the first")
}

// =============================================================================
// PAYMENT VALIDATION TESTS
// =============================================================================

func TestValidatePayment_WellFormed(t *testing.T) {
	problems := arrears.ValidatePayment(arrears.Payment{
		Date:   "2025-01-15",
		Amount: money.FromDollars(500),
	})

	assert.Empty(t, problems)
}

func TestValidatePayment_BadDateAndAmount(t *testing.T) {
	problems := arrears.ValidatePayment(arrears.Payment{
		Date:   "15-01-2025",
		Amount: money.FromDollars(-500),
	})

	assert.Contains(t, problems, "Invalid date format. Use YYYY-MM-DD.")
	assert.Contains(t, problems, "Amount must be a positive number.")
}
