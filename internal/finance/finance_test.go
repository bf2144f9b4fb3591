package finance

import (
	"math"
	"testing"

	"energy-package-roi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizeCompleteness(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		years     int
	}{
		{30000, 0.049, 5},
		{65000, 0.065, 7},
		{1, 0.20, 1},
		{250000, 0.03, 30},
		{18000, 0, 3},
	}
	for _, tc := range cases {
		s, err := Amortize(tc.principal, tc.rate, tc.years)
		require.NoError(t, err)
		require.Len(t, s.Periods, tc.years*12)

		sumPrincipal := 0.0
		for _, p := range s.Periods {
			assert.Equal(t, s.Payment, p.Payment)
			sumPrincipal += p.Principal
		}
		assert.InDelta(t, tc.principal, sumPrincipal, 1e-6*tc.principal)
		assert.Equal(t, 0.0, s.Periods[len(s.Periods)-1].Balance)
	}
}

func TestAmortizeZeroRate(t *testing.T) {
	s, err := Amortize(1200, 0, 1)
	require.NoError(t, err)
	require.Len(t, s.Periods, 12)
	for _, p := range s.Periods {
		assert.Equal(t, 100.0, p.Payment)
		assert.Equal(t, 0.0, p.Interest)
	}
	assert.Equal(t, 0.0, s.Periods[11].Balance)
}

func TestAmortizeKnownPayment(t *testing.T) {
	// 10,000 at 6% over 1 year.
	s, err := Amortize(10000, 0.06, 1)
	require.NoError(t, err)
	assert.InDelta(t, 860.66, s.Payment, 0.01)
	assert.InDelta(t, 50.0, s.Periods[0].Interest, 1e-9)
}

func TestAmortizeRejectsBadInputs(t *testing.T) {
	_, err := Amortize(-1, 0.05, 5)
	assert.True(t, model.IsConfigError(err))

	_, err = Amortize(1000, 0.05, 0)
	assert.True(t, model.IsConfigError(err))

	_, err = Amortize(1000, -0.01, 5)
	assert.True(t, model.IsConfigError(err))
}

func TestAmortizeZeroPrincipal(t *testing.T) {
	s, err := Amortize(0, 0.05, 2)
	require.NoError(t, err)
	assert.Len(t, s.Periods, 24)
	assert.Equal(t, 0.0, s.Payment)
}

func TestScheduleLookups(t *testing.T) {
	s, err := AmortizeMonths(1200, 0, 12)
	require.NoError(t, err)

	assert.Equal(t, 100.0, s.PaymentAt(0))
	assert.Equal(t, 0.0, s.PaymentAt(12))
	assert.Equal(t, 1200.0, s.BalanceAfter(0))
	assert.Equal(t, 600.0, s.BalanceAfter(6))
	assert.Equal(t, 0.0, s.BalanceAfter(20))

	var nilSched *Schedule
	assert.Equal(t, 0.0, nilSched.PaymentAt(0))
}

func TestLeasePayment(t *testing.T) {
	// Zero rate: straight-line over the depreciating portion.
	assert.InDelta(t, (60000.0-18000.0)/48, LeasePayment(60000, 0, 48, 0.3), 1e-9)

	withRate := LeasePayment(60000, 0.06, 48, 0.3)
	assert.Greater(t, withRate, (60000.0-18000.0)/48)
	assert.Equal(t, 0.0, LeasePayment(0, 0.06, 48, 0.3))
}

func TestNewLeaseMatchesFormula(t *testing.T) {
	terms := model.LeaseTerms{TermYears: 4, Rate: 0.06, ResidualPercentage: 0.3}
	l, err := NewLease(60000, terms)
	require.NoError(t, err)

	assert.Equal(t, 18000.0, l.ResidualValue)
	assert.InDelta(t, LeasePayment(60000, 0.06, 48, 0.3), l.Payment(), 1e-9)
	assert.Len(t, l.Schedule.Periods, 48)
	assert.InDelta(t, 42000.0, l.Schedule.Principal, 1e-9)
	assert.Equal(t, 0.0, l.Schedule.BalanceAfter(48))

	_, err = NewLease(60000, model.LeaseTerms{TermYears: 0})
	assert.True(t, model.IsConfigError(err))
}

func TestRetentionFactor(t *testing.T) {
	for _, rate := range []float64{0, 0.01, 0.03, 0.5} {
		assert.Equal(t, 1.0, RetentionFactor(rate, 0))
	}
	assert.InDelta(t, 0.97, RetentionFactor(0.03, 1), 1e-12)

	prev := 1.0
	for y := 0.5; y <= 20; y += 0.5 {
		f := RetentionFactor(0.03, y)
		assert.Less(t, f, prev)
		prev = f
	}
}

func TestInflatedValue(t *testing.T) {
	assert.Equal(t, 250.0, InflatedValue(250, 0.03, 0))
	assert.InDelta(t, 250*math.Pow(1.03, 2), InflatedValue(250, 0.03, 2), 1e-9)

	prev := 100.0
	for y := 1.0; y <= 10; y++ {
		v := InflatedValue(100, 0.02, y)
		assert.Greater(t, v, prev)
		prev = v
	}
}
