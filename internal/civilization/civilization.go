// Package civilization implements the aggregate population/tech rollup
// that sits above the city roster: population is recomputed each turn
// as the sum of city populations, tech points accrue off that
// population, and tech level rolls over on threshold.
//
// Grounded on original_source/code/game/player_ai.py's PlayerAI, and on
// internal/ecosystem/population/dynamics.go's small pure-function growth
// helpers for the shape of its formulas (a population total folded over
// once per turn, a handful of classmethod-style constant functions).
package civilization

import (
	"math"

	"baalrealm/internal/baalerr"
)

const (
	// StartingTechLevel is the tech level every civilization begins at.
	StartingTechLevel = 1
	// FirstTechLevelCost is next_tech_level_cost before any rollover.
	FirstTechLevelCost = 1000.0
	// TechPointsDivisor converts population into tech points per turn:
	// one tech point per 100 people.
	TechPointsDivisor = 100.0
	// WinTechLevel is the tech level a civilization must reach to win
	// (spec glossary: AI_WINS_AT_TECH_LEVEL).
	WinTechLevel = 100
)

// Civilization is the population/tech aggregate a world's city roster
// feeds into every turn.
type Civilization struct {
	Population        float64
	TechLevel         int
	TechPoints        float64
	NextTechLevelCost float64
}

// New returns a freshly seeded Civilization: tech level 1, no tech
// points banked yet, population not yet computed (call CycleTurn once
// city populations are known).
func New() Civilization {
	return Civilization{
		TechLevel:         StartingTechLevel,
		NextTechLevelCost: FirstTechLevelCost,
	}
}

// YieldMultiplier is the tech-adjusted yield bonus applied to every
// tile's effective yield: 10% per tech level above the starting level.
func (c Civilization) YieldMultiplier() float64 {
	return 1 + 0.1*float64(c.TechLevel-StartingTechLevel)
}

// nextLevelCost computes next_tech_level_cost at a given tech level:
// first_cost * (level - starting_level)^1.5.
func nextLevelCost(techLevel int) float64 {
	delta := float64(techLevel - StartingTechLevel)
	if delta < 0 {
		delta = 0
	}
	return FirstTechLevelCost * math.Pow(delta, 1.5)
}

// CycleTurn recomputes population from the current sum of city
// populations (spec §4.1 step 5: civilization.cycle_turn() runs after
// every city has already cycled this turn), accrues tech points, and
// rolls tech level over as many times as the banked points allow.
func (c *Civilization) CycleTurn(cityPopulations []float64) {
	c.Population = 0
	for _, p := range cityPopulations {
		c.Population += p
	}

	c.TechPoints += c.Population / TechPointsDivisor

	for c.TechPoints >= c.NextTechLevelCost {
		c.TechLevel++
		c.TechPoints -= c.NextTechLevelCost
		c.NextTechLevelCost = nextLevelCost(c.TechLevel)
	}

	c.checkInvariant()
}

// HasWon reports whether the civilization has crossed the tech-level
// win threshold (spec §4.1 step 7).
func (c Civilization) HasWon() bool { return c.TechLevel >= WinTechLevel }

// IsDefeated reports whether the civilization's population has been
// wiped out (spec §4.1 step 7: a caster win).
func (c Civilization) IsDefeated() bool { return c.Population == 0 }

func (c Civilization) checkInvariant() {
	if c.TechPoints >= c.NextTechLevelCost {
		baalerr.Raise("tech points %v not below next level cost %v", c.TechPoints, c.NextTechLevelCost)
	}
	if c.TechLevel < StartingTechLevel {
		baalerr.Raise("tech level %v fell below starting level", c.TechLevel)
	}
}
