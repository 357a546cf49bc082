/*
Package guideline validates rent increases against the annual Ontario
guideline.

PURPOSE:
  The guideline is the maximum annual percentage rent increase permitted
  without LTB approval. The checker computes the maximum allowed new rent,
  flags over-guideline increases with the overage amount, and detects the
  rent-control exemption for units first occupied after November 15, 2018
  (O. Reg 340/21). Like everything in this module, problems surface as
  warnings on the result, never as errors.
*/
package guideline

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/tenancy-engine/dates"
	"github.com/warp/tenancy-engine/money"
)

// exemptionCutoff: units first occupied strictly after this date are not
// subject to the annual guideline.
var exemptionCutoff = time.Date(2018, time.November, 15, 0, 0, 0, 0, time.UTC)

// DefaultRates returns the published guideline rates by year.
func DefaultRates() map[int]float64 {
	return map[int]float64{
		2023: 0.025,
		2024: 0.025,
		2025: 0.025,
		2026: 0.025, // projected, confirm when announced
	}
}

// =============================================================================
// CHECKER
// =============================================================================

// Checker validates proposed rent increases against a year-keyed rate table.
type Checker struct {
	rates map[int]float64
}

// NewChecker returns a Checker over the built-in rate table.
func NewChecker() *Checker {
	return FromRates(DefaultRates())
}

// FromRates returns a Checker over a custom rate table (e.g. loaded from
// configuration).
func FromRates(rates map[int]float64) *Checker {
	copied := make(map[int]float64, len(rates))
	for year, rate := range rates {
		copied[year] = rate
	}
	return &Checker{rates: copied}
}

// RateFor returns the guideline rate for a year and whether it is known.
func (c *Checker) RateFor(year int) (float64, bool) {
	rate, ok := c.rates[year]
	return rate, ok
}

// AllRates returns a copy of the rate table.
func (c *Checker) AllRates() map[int]float64 {
	out := make(map[int]float64, len(c.rates))
	for year, rate := range c.rates {
		out[year] = rate
	}
	return out
}

// latestRate returns the rate of the most recent year in the table.
// Fallback for years not yet announced.
func (c *Checker) latestRate() float64 {
	latest := 0
	rate := 0.0
	for year, r := range c.rates {
		if year > latest {
			latest = year
			rate = r
		}
	}
	return rate
}

// =============================================================================
// RESULT
// =============================================================================

// Calculation is the rent-increase check result.
type Calculation struct {
	CurrentRent         money.Cents
	ProposedRent        money.Cents
	GuidelineYear       int
	GuidelineRate       float64 // e.g. 0.025 for 2.5%
	MaximumAllowed      money.Cents
	IsLegal             bool
	OverageAmount       money.Cents // 0 when legal
	ExemptFromGuideline bool
	Warnings            []string
}

// =============================================================================
// CHECK
// =============================================================================

// Check determines whether a proposed increase is legal for the given
// guideline year. firstOccupied may be empty when unknown; an unknown
// first-occupancy date is treated as subject to rent control.
func (c *Checker) Check(current, proposed money.Cents, year int, firstOccupied string) Calculation {
	var warnings []string

	rate, known := c.RateFor(year)
	if !known {
		rate = c.latestRate()
		warnings = append(warnings, fmt.Sprintf(
			"Guideline rate for %d not yet confirmed. Using most recent known rate.", year))
	}

	exempt := Exempt(firstOccupied)
	if exempt {
		warnings = append(warnings,
			"This unit may be EXEMPT from rent control. Units first occupied after November 15, 2018 are not subject to the annual guideline. Verify your unit's first occupancy date.")
	}

	maximum := money.ApplyRate(current, decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate)))

	legal := exempt || proposed <= maximum
	var overage money.Cents
	if !legal {
		overage = proposed - maximum
	}

	if !legal && !exempt {
		warnings = append(warnings, fmt.Sprintf(
			"The proposed increase exceeds the %d guideline of %.1f%%. Maximum allowed: %s. Overage: %s.",
			year, rate*100, money.Format(maximum), money.Format(overage)))
		warnings = append(warnings,
			"You can refuse to pay the illegal portion. The landlord must apply to the LTB for an Above Guideline Increase (AGI) if they want to charge more.")
	}
	if legal && !exempt && proposed > current {
		warnings = append(warnings, fmt.Sprintf(
			"The increase is within the %d guideline. Ensure you received proper written notice at least 90 days before the increase takes effect.", year))
	}

	return Calculation{
		CurrentRent:         current,
		ProposedRent:        proposed,
		GuidelineYear:       year,
		GuidelineRate:       rate,
		MaximumAllowed:      maximum,
		IsLegal:             legal,
		OverageAmount:       overage,
		ExemptFromGuideline: exempt,
		Warnings:            warnings,
	}
}

// Exempt reports whether a unit first occupied on the given date is exempt
// from the guideline. Empty means unknown, which is treated as not exempt.
func Exempt(firstOccupied string) bool {
	if firstOccupied == "" {
		return false
	}
	return dates.ParseISO(firstOccupied).After(exemptionCutoff)
}
