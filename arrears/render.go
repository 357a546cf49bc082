package arrears

import (
	"fmt"
	"strings"
	"time"

	"github.com/warp/tenancy-engine/money"
)

// LedgerText renders the calculation as a plain-text summary suitable for
// pasting into a case management system or bringing to a hearing. This is
// the module's literal defense-document output. Pure string formatting;
// the generated date is an explicit input.
func LedgerText(calc Calculation, generated time.Time) string {
	var lines []string
	rule := strings.Repeat("-", 60)

	lines = append(lines,
		"--- RENT CALCULATION SUMMARY ---",
		"Generated: "+generated.Format("2006-01-02"),
		"Tool: Tenancy Engine (NOT LEGAL ADVICE)",
		"",
		"LEDGER:",
		rule,
		"Date       | Description                | Charge    | Payment   | Balance",
		rule,
	)

	for _, entry := range calc.Entries {
		charge := "         "
		if entry.Charge > 0 {
			charge = fmt.Sprintf("%9s", money.Format(entry.Charge))
		}
		payment := "         "
		if entry.Payment > 0 {
			payment = fmt.Sprintf("%9s", money.Format(entry.Payment))
		}
		lines = append(lines, fmt.Sprintf("%-10s | %-26s | %s | %s | %9s",
			entry.Date, truncate(entry.Description, 26), charge, payment,
			money.Format(entry.Balance)))
	}

	lines = append(lines,
		rule,
		"",
		"SUMMARY:",
		"Total Charges:     "+money.Format(calc.TotalCharges),
		"Total Payments:    "+money.Format(calc.TotalPayments),
		"Current Balance:   "+money.Format(calc.CurrentBalance),
		"",
	)

	if calc.LateFeeTotal > 0 {
		lines = append(lines,
			"BREAKDOWN:",
			"Late Fees Charged: "+money.Format(calc.LateFeeTotal),
			"Rent Only Owed:    "+money.Format(calc.RentOnly),
			"",
			"NOTE: N4 notices should only claim RENT, not late fees.",
			"",
		)
	}

	if len(calc.Warnings) > 0 {
		lines = append(lines, "WARNINGS:")
		for _, warning := range calc.Warnings {
			lines = append(lines, "* "+warning.Message)
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

// truncate cuts on runes so a multi-byte character is never split.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
