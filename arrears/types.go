/*
Package arrears builds FIFO rent ledgers and derives the legally meaningful
sub-totals a tenant needs when answering an N4 notice.

PURPOSE:
  Charges and payments are merged into one date-ordered ledger and walked
  once with a running signed balance. Tracking the balance (rather than
  per-charge remaining amounts) is exactly equivalent to first-in-first-out
  allocation, which is the standard in Ontario eviction proceedings. Along
  the walk the calculator segregates late fees from rent, because fee
  amounts may not be claimable as rent arrears, and emits warnings instead
  of errors: the tool must always produce its best estimate, annotated with
  caveats.

KEY CONCEPTS IN THIS FILE (types.go):
  - Charge/Payment: boundary inputs (ISO dates, integer cents)
  - LedgerEntry: one derived row per input, immutable once produced
  - Warning: tagged advisory attached to the result, never thrown
  - Calculation: the complete result record

SEE ALSO:
  - arrears.go: the ledger walk
  - validate.go: permissive input validation
  - render.go: plain-text defense document output
*/
package arrears

import "github.com/warp/tenancy-engine/money"

// =============================================================================
// CATEGORIES
// =============================================================================

// Category classifies a charge.
type Category string

const (
	CategoryRent    Category = "rent"
	CategoryLateFee Category = "late_fee"
	CategoryUtility Category = "utility"
	CategoryOther   Category = "other"
)

// =============================================================================
// INPUTS
// =============================================================================

// Charge is an amount the landlord claims the tenant owes.
// Amount is expected non-negative but not enforced here; see validate.go.
type Charge struct {
	Date        string // ISO 8601
	Amount      money.Cents
	Category    Category
	Description string // optional
	Period      string // optional, e.g. "January 2025"
}

// Payment is an amount the tenant paid.
type Payment struct {
	Date        string // ISO 8601
	Amount      money.Cents
	Description string // optional
}

// =============================================================================
// OUTPUTS
// =============================================================================

// LedgerEntry is one derived ledger row. Exactly one of Charge/Payment is
// non-zero; Balance is the running signed balance after this row.
type LedgerEntry struct {
	Date        string
	Description string
	Charge      money.Cents
	Payment     money.Cents
	Balance     money.Cents
}

// WarningType tags an advisory message.
type WarningType string

const (
	WarnIllegalLateFee    WarningType = "illegal_late_fee"
	WarnMisappliedPayment WarningType = "misapplied_payment"
	WarnCalculationNote   WarningType = "calculation_note"
)

// Warning is an advisory attached to a Calculation. Order of warnings is
// the order of detection during the ledger walk.
type Warning struct {
	Type    WarningType
	Message string
}

// Calculation is the complete arrears result. Created fresh per invocation;
// a pure function of the inputs.
type Calculation struct {
	Entries          []LedgerEntry
	TotalCharges     money.Cents
	TotalPayments    money.Cents
	CurrentBalance   money.Cents // positive = tenant owes
	LateFeeTotal     money.Cents
	RentChargesTotal money.Cents // gross rent charged, before payments
	RentOnly         money.Cents // balance excluding late fees, floored at 0
	Warnings         []Warning
}
