package finance

import "math"

// RetentionFactor is the fraction of original capacity, output or value left
// after elapsedYears of compounding decay at annualDecayRate.
func RetentionFactor(annualDecayRate, elapsedYears float64) float64 {
	if elapsedYears <= 0 {
		return 1
	}
	return math.Pow(1-annualDecayRate, elapsedYears)
}

// InflatedValue escalates base by annualRate compounded over elapsedYears.
func InflatedValue(base, annualRate, elapsedYears float64) float64 {
	if elapsedYears <= 0 {
		return base
	}
	return base * math.Pow(1+annualRate, elapsedYears)
}
