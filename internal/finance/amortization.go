package finance

import (
	"math"

	"energy-package-roi/internal/model"
)


// Period is one monthly row of an amortization schedule.
type Period struct {
	Index     int     `json:"index"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
	Payment   float64 `json:"payment"`
}

// Schedule is a fixed-payment amortizing loan.
type Schedule struct {
	Principal  float64  `json:"principal"`
	AnnualRate float64  `json:"annual_rate"`
	TermMonths int      `json:"term_months"`
	Payment    float64  `json:"payment"`
	Periods    []Period `json:"periods"`
}

// Amortize builds the monthly schedule for a loan of termYears years.
func Amortize(principal, annualRate float64, termYears int) (*Schedule, error) {
	if termYears <= 0 {
		return nil, model.Invalid("loan.term_years", "must be > 0")
	}
	return AmortizeMonths(principal, annualRate, termYears*12)
}

// AmortizeMonths is Amortize with a term expressed in months.
func AmortizeMonths(principal, annualRate float64, termMonths int) (*Schedule, error) {
	if principal < 0 {
		return nil, model.Invalid("loan.principal", "must be >= 0")
	}
	if annualRate < 0 {
		return nil, model.Invalid("loan.annual_rate", "must be >= 0")
	}
	if termMonths <= 0 {
		return nil, model.Invalid("loan.term_months", "must be > 0")
	}

	return schedule(principal, annualRate, termMonths, annuityPayment(principal, annualRate/12, termMonths)), nil
}

// schedule lays out termMonths level payments against principal. The final
// period absorbs whatever balance the payment leaves.
func schedule(principal, annualRate float64, termMonths int, payment float64) *Schedule {
	r := annualRate / 12
	periods := make([]Period, 0, termMonths)
	balance := principal
	for i := 0; i < termMonths; i++ {
		interest := balance * r
		princ := payment - interest
		balance -= princ
		if i == termMonths-1 {
			// Absorb accumulated rounding into the last principal portion.
			princ += balance
			balance = 0
		}
		periods = append(periods, Period{
			Index:     i,
			Interest:  interest,
			Principal: princ,
			Balance:   balance,
			Payment:   payment,
		})
	}

	return &Schedule{
		Principal:  principal,
		AnnualRate: annualRate,
		TermMonths: termMonths,
		Payment:    payment,
		Periods:    periods,
	}
}

// annuityPayment is the level payment for rate r per period over n periods.
// A zero rate falls back to straight-line repayment.
func annuityPayment(amount, r float64, n int) float64 {
	if amount == 0 {
		return 0
	}
	if r == 0 {
		return amount / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return amount * r * growth / (growth - 1)
}

// PaymentAt returns the payment due in month index i of the schedule (0 once paid off).
func (s *Schedule) PaymentAt(i int) float64 {
	if s == nil || i < 0 || i >= len(s.Periods) {
		return 0
	}
	return s.Periods[i].Payment
}

// BalanceAfter returns the outstanding balance after i payments have been made.
func (s *Schedule) BalanceAfter(i int) float64 {
	if s == nil {
		return 0
	}
	if i <= 0 {
		return s.Principal
	}
	if i >= len(s.Periods) {
		return 0
	}
	return s.Periods[i-1].Balance
}
