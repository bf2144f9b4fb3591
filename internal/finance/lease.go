package finance

import "energy-package-roi/internal/model"

// Lease is a vehicle lease sized to leave ResidualValue outstanding at term end.
type Lease struct {
	AssetValue    float64   `json:"asset_value"`
	ResidualValue float64   `json:"residual_value"`
	Schedule      *Schedule `json:"schedule"`
}

// LeasePayment is the level monthly payment that amortizes assetValue down to
// its residual (assetValue*residualPct) over termMonths.
func LeasePayment(assetValue, annualRate float64, termMonths int, residualPct float64) float64 {
	if termMonths <= 0 || assetValue <= 0 {
		return 0
	}
	return annuityPayment(assetValue-assetValue*residualPct, annualRate/12, termMonths)
}

// NewLease validates the terms and builds the payment schedule for one lease term.
// The schedule amortizes the depreciating portion only; the residual is settled at renewal.
func NewLease(assetValue float64, terms model.LeaseTerms) (*Lease, error) {
	if assetValue < 0 {
		return nil, model.Invalid("lease.asset_value", "must be >= 0")
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	n := terms.TermYears * 12
	residual := assetValue * terms.ResidualPercentage
	payment := LeasePayment(assetValue, terms.Rate, n, terms.ResidualPercentage)
	return &Lease{
		AssetValue:    assetValue,
		ResidualValue: residual,
		Schedule:      schedule(assetValue-residual, terms.Rate, n, payment),
	}, nil
}

// Payment is the level monthly lease payment.
func (l *Lease) Payment() float64 {
	if l == nil || l.Schedule == nil {
		return 0
	}
	return l.Schedule.Payment
}
