// Package baalmath collects the small growth-curve helpers the spell
// catalogue leans on for cost and effect scaling. Grounded on
// original_source/code/game/baal_math.py.
package baalmath

import "math"

// ExpGrowth computes base^(value-threshold), penalizing shortfalls
// below threshold more steeply than it rewards surplus, and flattening
// growth past diminishingReturns (0 disables the plateau). base must be
// in [1.01, 1.10]; callers pick a base that matches how fast the effect
// should compound.
func ExpGrowth(base, value, threshold, diminishingReturns float64) float64 {
	x := value - threshold

	switch {
	case x < 0:
		return math.Pow(base+(base-1)*2, x)
	case diminishingReturns <= 0 || x <= diminishingReturns:
		return math.Pow(base, x)
	default:
		beyondDim := x - diminishingReturns
		divisor := 2.0
		switch {
		case base <= 1.02:
			divisor = 5.0
		case base <= 1.03:
			divisor = 4.0
		case base <= 1.05:
			divisor = 3.0
		}
		additional := math.Pow(beyondDim, 1.0/divisor) - 1
		if additional < 0 {
			additional = 0
		}
		return math.Pow(base, diminishingReturns) + additional
	}
}

// PolyGrowth computes val^exp / div, floored at zero for negative val.
func PolyGrowth(val, exp, div float64) float64 {
	if val < 0 {
		return 0
	}
	if div == 0 {
		div = 1
	}
	return math.Pow(val, exp) / div
}

// FibonacciDiv returns how many (rv+1)*base-sized installments fit into
// total, walking up the triangular sequence rather than true Fibonacci
// despite the name (the original's name, kept for recognizability).
func FibonacciDiv(total, base float64) int {
	rv := 0
	for {
		cost := float64(rv+1) * base
		if cost > total {
			return rv
		}
		total -= cost
		rv++
	}
}
