package baalmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpGrowth_PenalizesShortfallMoreThanReward(t *testing.T) {
	below := ExpGrowth(1.05, 10, 20, 0)
	above := ExpGrowth(1.05, 30, 20, 0)
	assert.Less(t, below, 1.0)
	assert.Greater(t, above, 1.0)
}

func TestExpGrowth_PlateausBeyondDiminishingReturns(t *testing.T) {
	atPlateau := ExpGrowth(1.05, 50, 20, 30)
	wayBeyond := ExpGrowth(1.05, 1000, 20, 30)
	assert.Greater(t, wayBeyond, atPlateau)
	assert.Less(t, wayBeyond, ExpGrowth(1.05, 1000, 20, 0))
}

func TestPolyGrowth_ZeroBelowZero(t *testing.T) {
	assert.Equal(t, 0.0, PolyGrowth(-5, 1.3, 1))
	assert.InDelta(t, 4.0, PolyGrowth(16, 0.5, 1), 0.0001)
}

func TestFibonacciDiv_CountsInstallments(t *testing.T) {
	// base=100: installments cost 100, 200, 300... total 250 covers one
	// full installment (100) plus a partial second, so rv=1.
	assert.Equal(t, 1, FibonacciDiv(250, 100))
	assert.Equal(t, 0, FibonacciDiv(50, 100))
}
