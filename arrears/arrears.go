package arrears

import (
	"fmt"
	"sort"
	"strings"

	"github.com/warp/tenancy-engine/money"
)

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator holds the legal constants the ledger walk depends on.
type Calculator struct {
	// LateFeeThreshold is the amount above which a single late fee draws
	// an illegal_late_fee warning. Ontario courts often find fees over
	// $50 unreasonable.
	LateFeeThreshold money.Cents

	// CureBusinessDays is cited in the calculation note attached to any
	// positive ending balance (7 under Bill 60).
	CureBusinessDays int
}

// NewCalculator returns a Calculator with the Bill 60 defaults.
func NewCalculator() *Calculator {
	return &Calculator{
		LateFeeThreshold: money.FromDollars(50),
		CureBusinessDays: 7,
	}
}

// Calculate runs the FIFO ledger with the default constants.
func Calculate(charges []Charge, payments []Payment) Calculation {
	return NewCalculator().Calculate(charges, payments)
}

// =============================================================================
// FIFO LEDGER WALK
// =============================================================================

// transaction is a charge or payment tagged with its kind for the merge.
type transaction struct {
	date    string
	charge  *Charge
	payment *Payment
}

// Calculate merges charges and payments into one date-sorted sequence and
// walks it once with a running signed balance. Ties on date keep the
// merge order: charges in input order, then payments in input order.
// The tie-break is part of the contract; output must be deterministic.
func (c *Calculator) Calculate(charges []Charge, payments []Payment) Calculation {
	merged := make([]transaction, 0, len(charges)+len(payments))
	for i := range charges {
		merged = append(merged, transaction{date: charges[i].Date, charge: &charges[i]})
	}
	for i := range payments {
		merged = append(merged, transaction{date: payments[i].Date, payment: &payments[i]})
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].date < merged[j].date })

	entries := make([]LedgerEntry, 0, len(merged))
	var warnings []Warning

	var balance, totalCharges, totalPayments, lateFees, rentCharges money.Cents

	for _, tx := range merged {
		if tx.charge != nil {
			charge := *tx.charge
			totalCharges += charge.Amount
			balance += charge.Amount

			switch charge.Category {
			case CategoryLateFee:
				lateFees += charge.Amount
				if charge.Amount > c.LateFeeThreshold {
					warnings = append(warnings, Warning{
						Type: WarnIllegalLateFee,
						Message: fmt.Sprintf(
							"Late fee on %s (%s) may exceed legal limits. Ontario courts often find fees over %s unreasonable.",
							charge.Date, money.Format(charge.Amount), money.Format(c.LateFeeThreshold)),
					})
				}
			case CategoryRent:
				rentCharges += charge.Amount
			}

			entries = append(entries, LedgerEntry{
				Date:        charge.Date,
				Description: chargeDescription(charge),
				Charge:      charge.Amount,
				Balance:     balance,
			})
			continue
		}

		payment := *tx.payment
		totalPayments += payment.Amount
		balance -= payment.Amount

		description := payment.Description
		if description == "" {
			description = "Payment received"
		}
		entries = append(entries, LedgerEntry{
			Date:        payment.Date,
			Description: description,
			Payment:     payment.Amount,
			Balance:     balance,
		})
	}

	// The portion of the balance attributable to rent and utilities.
	// Payments are legally presumed to apply to rent before fees.
	rentOnly := money.Max(0, balance-lateFees)

	if lateFees > 0 && balance > 0 {
		warnings = append(warnings, Warning{
			Type: WarnMisappliedPayment,
			Message: fmt.Sprintf(
				"Your payments should be applied to RENT first, not late fees. The landlord may only claim %s in rent arrears on an N4 notice.",
				money.Format(rentOnly)),
		})
	}
	if balance > 0 {
		warnings = append(warnings, Warning{
			Type: WarnCalculationNote,
			Message: fmt.Sprintf(
				"Bill 60 (2025): You have only %d BUSINESS DAYS to pay arrears after receiving an N4 notice. This is shorter than the previous 14-day period.",
				c.CureBusinessDays),
		})
	}

	return Calculation{
		Entries:          entries,
		TotalCharges:     totalCharges,
		TotalPayments:    totalPayments,
		CurrentBalance:   balance,
		LateFeeTotal:     lateFees,
		RentChargesTotal: rentCharges,
		RentOnly:         rentOnly,
		Warnings:         warnings,
	}
}

func chargeDescription(charge Charge) string {
	if charge.Description != "" {
		return charge.Description
	}
	return strings.TrimSpace(fmt.Sprintf("%s: %s", charge.Category, charge.Period))
}
