/*
Package money provides the integer-cent money representation shared by all
calculators.

PURPOSE:
  Every engine in this module works on exact integer minor currency units
  (cents). Dollar amounts only exist at the boundary: user input is converted
  to cents on the way in, and cents are formatted back to dollar strings on
  the way out. Percentage math (guideline caps, deposit estimates) runs
  through decimal.Decimal so no binary floating-point error can leak into a
  legally meaningful figure.

ROUNDING:
  All conversions round half away from zero ($0.999 -> 100 cents,
  $0.994 -> 99 cents). This is the rounding the reference figures in the
  test suite were produced with.

SEE ALSO:
  - guideline/guideline.go: rate application for maximum allowed rent
  - deposit/deposit.go: percentage deposit estimate
*/
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a signed amount of money in minor currency units.
// Positive balances mean the tenant owes money.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDollars converts a dollar amount to cents, rounding half away from
// zero to the nearest cent. Degenerate inputs never halt the converter:
// NaN becomes 0 and infinities saturate to the Cents range.
func FromDollars(dollars float64) Cents {
	if math.IsNaN(dollars) {
		return 0
	}
	if math.IsInf(dollars, 1) {
		return Cents(math.MaxInt64)
	}
	if math.IsInf(dollars, -1) {
		return Cents(math.MinInt64)
	}
	return Cents(decimal.NewFromFloat(dollars).Mul(hundred).Round(0).IntPart())
}

// ToDollars converts cents to a dollar amount. Only for display and
// boundary interop; engines must not do arithmetic on the result.
func ToDollars(c Cents) float64 {
	f, _ := decimal.NewFromInt(int64(c)).Div(hundred).Float64()
	return f
}

// ApplyRate multiplies an amount by a rate and rounds to the nearest cent,
// half away from zero. Used for guideline and deposit percentages.
func ApplyRate(c Cents, rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

// Decimal returns the amount as a decimal number of cents.
func Decimal(c Cents) decimal.Decimal {
	return decimal.NewFromInt(int64(c))
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format renders cents as a dollar string with thousands separators,
// e.g. 150000 -> "$1,500.00", -500 -> "-$5.00", 99 -> "$0.99".
func Format(c Cents) string {
	neg := c < 0
	abs := int64(c)
	if neg {
		abs = -abs
	}

	d := decimal.NewFromInt(abs).Div(hundred).StringFixed(2)
	parts := strings.SplitN(d, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	if len(intPart) > 3 {
		var b strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(digit)
		}
		intPart = b.String()
	}

	if neg {
		return "-$" + intPart + "." + decPart
	}
	return "$" + intPart + "." + decPart
}

// Max returns the larger of two amounts.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}
