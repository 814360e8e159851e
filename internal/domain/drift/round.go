package drift

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round returns v rounded half away from zero to the given decimal places.
// Non-finite inputs are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Round1 rounds to one decimal place (satisfaction scores, ratings).
func Round1(v float64) float64 { return Round(v, 1) }

// Round2 rounds to two decimal places (currency and rates).
func Round2(v float64) float64 { return Round(v, 2) }

// Round3 rounds to three decimal places (correction indexes).
func Round3(v float64) float64 { return Round(v, 3) }

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio returns num/den, or 0 when den is zero.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
