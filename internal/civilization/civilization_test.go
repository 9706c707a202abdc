package civilization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsAtTechLevelOne(t *testing.T) {
	c := New()
	assert.Equal(t, StartingTechLevel, c.TechLevel)
	assert.Equal(t, FirstTechLevelCost, c.NextTechLevelCost)
	assert.Zero(t, c.TechPoints)
	assert.Zero(t, c.Population)
}

func TestCycleTurn_SumsCityPopulations(t *testing.T) {
	c := New()
	c.CycleTurn([]float64{1000, 500, 250})
	assert.Equal(t, 1750.0, c.Population)
}

func TestCycleTurn_AccruesTechPointsWithoutRollover(t *testing.T) {
	c := New()
	c.CycleTurn([]float64{1000})
	assert.Equal(t, 10.0, c.TechPoints)
	assert.Equal(t, StartingTechLevel, c.TechLevel)
}

func TestCycleTurn_RollsOverASingleTechLevel(t *testing.T) {
	c := New()
	c.TechPoints = FirstTechLevelCost - 10
	c.CycleTurn([]float64{1000})

	assert.Equal(t, StartingTechLevel+1, c.TechLevel)
	assert.Equal(t, 0.0, c.TechPoints)
	assert.Greater(t, c.NextTechLevelCost, 0.0)
}

func TestCycleTurn_RollsOverMultipleTechLevelsInOneCycle(t *testing.T) {
	c := New()
	c.TechPoints = FirstTechLevelCost * 10
	c.CycleTurn(nil)

	assert.Greater(t, c.TechLevel, StartingTechLevel+1)
	assert.Less(t, c.TechPoints, c.NextTechLevelCost)
}

func TestYieldMultiplier_TenPercentPerTechLevel(t *testing.T) {
	c := New()
	assert.Equal(t, 1.0, c.YieldMultiplier())

	c.TechLevel = 11
	assert.InDelta(t, 2.0, c.YieldMultiplier(), 0.0001)
}

func TestHasWon_AtTheWinThreshold(t *testing.T) {
	c := New()
	assert.False(t, c.HasWon())

	c.TechLevel = WinTechLevel
	assert.True(t, c.HasWon())
}

func TestIsDefeated_WhenPopulationHitsZero(t *testing.T) {
	c := New()
	c.CycleTurn([]float64{})
	assert.True(t, c.IsDefeated())

	c.CycleTurn([]float64{1})
	assert.False(t, c.IsDefeated())
}
