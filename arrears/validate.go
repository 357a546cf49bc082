package arrears

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation is deliberately separate from calculation and deliberately
// permissive: it checks date SYNTAX only (2025-02-30 passes and normalizes
// via date rollover), and it accepts zero amounts. Problems are returned as
// human-readable strings; nothing here ever panics or returns an error.

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Syntax-only date rule. Real-calendar-date checking is intentionally
	// out of scope; see ParseISO rollover in the dates package.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDatePattern.MatchString(fl.Field().String())
	})
	return v
}

type chargeInput struct {
	Date     string   `validate:"isodate"`
	Amount   int64    `validate:"gte=0"`
	Category Category `validate:"oneof=rent late_fee utility other"`
}

type paymentInput struct {
	Date   string `validate:"isodate"`
	Amount int64  `validate:"gte=0"`
}

// ValidateCharge returns a list of problem descriptions for a charge.
// An empty list means the charge is well-formed.
func ValidateCharge(c Charge) []string {
	input := chargeInput{
		Date:     c.Date,
		Amount:   int64(c.Amount),
		Category: c.Category,
	}
	return describeProblems(validate.Struct(input))
}

// ValidatePayment returns a list of problem descriptions for a payment.
func ValidatePayment(p Payment) []string {
	input := paymentInput{
		Date:   p.Date,
		Amount: int64(p.Amount),
	}
	return describeProblems(validate.Struct(input))
}

func describeProblems(err error) []string {
	problems := []string{}
	if err == nil {
		return problems
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return problems
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Date":
			problems = append(problems, "Invalid date format. Use YYYY-MM-DD.")
		case "Amount":
			problems = append(problems, "Amount must be a positive number.")
		case "Category":
			problems = append(problems, "Category must be: rent, late_fee, utility, or other.")
		}
	}
	return problems
}
