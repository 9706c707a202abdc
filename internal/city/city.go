// Package city implements the City aggregate and its pure growth/ranking
// arithmetic (spec §3, §4.6). The worker-allocation and build-priority AI
// that needs full board access lives in package grid (ecosystem/service.go's
// "owner of shared state drives its members" idiom), which this package's
// types support rather than duplicate.
//
// Grounded on internal/ecosystem/population/dynamics.go's clamped
// growth-rate helpers (CalculateJuvenileSurvival, CalculateReproductionModifier)
// and economy/simulation/simulation.go's resource-gathering shape.
package city

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/coords"

	"github.com/google/uuid"
)

const (
	// StartingPop is the population a newly placed city begins with.
	StartingPop = 1000.0
	// MinCitySize is the population floor below which a city is removed
	// (spec glossary: MIN_CITY_SIZE = STARTING_POP/5).
	MinCitySize = StartingPop / 5
	// RankUpMult is the per-rank doubling of the population threshold.
	RankUpMult = 2.0
	// SettlerCost is the prod_bank cost of spawning a settler.
	SettlerCost = 200.0
	// DefenseCostFactor multiplies current defense for the next
	// defense-investment cost.
	DefenseCostFactor = 400.0
)

// City is a settlement: population, rank, banked production, famine
// status, defense, and its grid location.
type City struct {
	ID          uuid.UUID
	Name        string
	Population  float64
	Rank        int
	NextRankPop float64
	ProdBank    float64
	Famine      bool
	Defense     float64
	Location    coords.Location
}

// New constructs a freshly placed city at loc, per spec §3/§4.6: starting
// population, rank 1, defense floor of 1.
func New(name string, loc coords.Location) *City {
	return &City{
		ID:          uuid.New(),
		Name:        name,
		Population:  StartingPop,
		Rank:        1,
		NextRankPop: StartingPop * RankUpMult,
		Defense:     1,
		Location:    loc,
	}
}

// RequiredFood returns this turn's food requirement: population / 1000.
func (c *City) RequiredFood() float64 { return c.Population / 1000 }

// GrowthMultiplier computes the population growth multiplier for the
// given gathered/required food, per spec §4.6 step 5: famine multiplier
// clamped to [-4,-1] when short, abundance multiplier clamped to [1,4]
// otherwise.
func GrowthMultiplier(foodGathered, reqFood float64) (multiplier float64, famine bool) {
	if reqFood <= 0 {
		return clamp(foodGathered, 1, 4), false
	}
	if foodGathered < reqFood {
		m := -reqFood / foodGathered
		return clamp(m, -4, -1), true
	}
	return clamp(foodGathered/reqFood, 1, 4), false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyGrowth applies the growth multiplier to population and rolls the
// city over to the next rank if its population crossed the threshold.
func (c *City) ApplyGrowth(multiplier float64, famine bool) {
	c.Famine = famine
	c.Population *= 1 + multiplier*0.01
	c.checkPopulation()
	if c.Population >= c.NextRankPop {
		c.Rank++
		c.NextRankPop *= RankUpMult
	}
}

// Kill reduces population by the given fraction (0-100 as a percentage),
// reporting whether the city fell below MinCitySize and should be
// removed, and the exp award if so (spec §4.7's kill() helper's
// city-destruction bonus).
const cityDestroyExpBonus = 1000

// Kill applies a kill percentage (clamped to [0,100]) and reports whether
// the city should be removed (population below MinCitySize).
func (c *City) Kill(pct float64) (removed bool, expBonus float64) {
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	killed := c.Population * pct / 100
	survivors := c.Population - killed
	if survivors < MinCitySize {
		c.Population = 0
		return true, cityDestroyExpBonus
	}
	c.Population = survivors
	return false, 0
}

// DestroyDefense reduces defense by min(n, defense), returning the amount
// destroyed.
func (c *City) DestroyDefense(n float64) float64 {
	destroyed := n
	if destroyed > c.Defense {
		destroyed = c.Defense
	}
	c.Defense -= destroyed
	return destroyed
}

// DefenseCost returns the prod_bank cost of the next defense investment:
// current_defense * 400.
func (c *City) DefenseCost() float64 { return c.Defense * DefenseCostFactor }

// checkPopulation is a defensive guard against the fatal invariant "city
// population below zero" (spec §7.2); call after any arithmetic that
// could in principle drive population negative.
func (c *City) checkPopulation() {
	if c.Population < 0 {
		baalerr.Raise("city %q population went negative: %v", c.Name, c.Population)
	}
}
