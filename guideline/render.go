package guideline

import (
	"fmt"
	"strings"
	"time"

	"github.com/warp/tenancy-engine/money"
)

// Summary renders the check result as a plain-text report.
func Summary(calc Calculation, generated time.Time) string {
	var lines []string

	lines = append(lines,
		"--- RENT INCREASE CALCULATION ---",
		"Generated: "+generated.Format("2006-01-02"),
		"Tool: Tenancy Engine (NOT LEGAL ADVICE)",
		"",
		"AMOUNTS:",
		"Current Rent:     "+money.Format(calc.CurrentRent),
		"Proposed Rent:    "+money.Format(calc.ProposedRent),
		"Maximum Allowed:  "+money.Format(calc.MaximumAllowed),
		"",
		"GUIDELINE:",
		fmt.Sprintf("Year:             %d", calc.GuidelineYear),
		fmt.Sprintf("Rate:             %.1f%%", calc.GuidelineRate*100),
		"",
		"RESULT:",
	)

	switch {
	case calc.ExemptFromGuideline:
		lines = append(lines,
			"Status:           EXEMPT FROM RENT CONTROL",
			"Note:             Unit first occupied after Nov 15, 2018")
	case calc.IsLegal:
		lines = append(lines, "Status:           LEGAL (within guideline)")
	default:
		lines = append(lines,
			"Status:           POTENTIALLY ILLEGAL",
			"Overage:          "+money.Format(calc.OverageAmount))
	}

	lines = append(lines, "")

	if len(calc.Warnings) > 0 {
		lines = append(lines, "WARNINGS:")
		for _, warning := range calc.Warnings {
			lines = append(lines, "* "+warning)
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"DISCLAIMER: This calculation is for information only.",
		"Verify all figures. Get legal advice for your situation.",
		"",
		"--- END OF SUMMARY ---",
	)

	return strings.Join(lines, "\n")
}
