package grid

import (
	"fmt"

	"baalrealm/internal/city"
	"baalrealm/internal/coords"
	"baalrealm/internal/worldtile"
)

// Constants from the city AI's build-priority and worker-allocation
// rules (spec §4.6), named the way the original source names them even
// though the distilled spec only gives their values inline.
const (
	foodFromCityCenter = 1.0
	prodFromCityCenter = 1.0
	prodFromSpecialist = 1.0

	tooManyFoodWorkersFraction = 0.66
	prodBeforeSettler          = 7.0

	infraProdCostPerLevel = 50.0

	settlerSearchRadius = 3
	settlerMinExclusion = 1 // candidates within this distance of any city are excluded
)

// CycleCity runs one turn of c's AI: allocate rank workers across
// nearby food and production tiles, bank the production, choose one
// build action in strict priority order, and apply population growth.
// Grounded on city.py's __cycle_turn_impl.
func (w *World) CycleCity(c *city.City) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cycleCityLocked(c)
}

func (w *World) cycleCityLocked(c *city.City) {
	techMult := w.yieldMultiplierLocked()
	foodTiles, prodTiles := w.nearbyFoodAndProdTilesLocked(c.Location, false, techMult)

	reqFood := c.RequiredFood()
	foodGathered := foodFromCityCenter
	prodGathered := prodFromCityCenter
	numWorkers := c.Rank
	workersOnFood := 0

	for _, t := range foodTiles {
		if numWorkers == 0 || foodGathered >= reqFood {
			break
		}
		t.Worked = true
		numWorkers--
		workersOnFood++
		foodGathered += t.EffectiveYield(techMult).Food
	}

	for _, t := range prodTiles {
		if numWorkers == 0 {
			break
		}
		if y := t.EffectiveYield(techMult); y.Prod > prodFromSpecialist {
			t.Worked = true
			numWorkers--
			prodGathered += y.Prod
		}
	}

	prodGathered += float64(numWorkers) * prodFromSpecialist * techMult
	c.ProdBank += prodGathered

	var foodTile, prodTile *worldtile.Tile
	pctWorkersOnFood := float64(workersOnFood) / float64(c.Rank)
	if pctWorkersOnFood > tooManyFoodWorkersFraction || foodGathered < reqFood {
		foodTile = firstUpgradable(foodTiles)
	}
	if prodGathered < prodBeforeSettler {
		prodTile = firstUpgradable(prodTiles)
	}
	prodTileFallback := firstUpgradable(prodTiles)
	settlerLoc, foundSettler := w.bestSettlerLocLocked(c.Location, techMult)

	switch {
	case foodTile != nil:
		w.buildInfraLocked(c, foodTile)
	case prodTile != nil:
		w.buildInfraLocked(c, prodTile)
	case foundSettler && c.ProdBank >= city.SettlerCost:
		name := fmt.Sprintf("Settlement %d", len(w.cities)+1)
		if _, err := w.placeCityLocked(name, settlerLoc); err == nil {
			c.ProdBank -= city.SettlerCost
		}
	case prodTileFallback != nil:
		w.buildInfraLocked(c, prodTileFallback)
	default:
		cost := c.DefenseCost()
		if c.ProdBank >= cost {
			c.Defense++
			c.ProdBank -= cost
		}
	}

	multiplier, famine := city.GrowthMultiplier(foodGathered, reqFood)
	c.ApplyGrowth(multiplier, famine)
}

// buildInfraLocked spends prod_bank on one infrastructure level for
// tile, if affordable. Cost strictly must be under the bank, matching
// city.py's `prod_cost < self.__prod_bank`.
func (w *World) buildInfraLocked(c *city.City, tile *worldtile.Tile) {
	cost := float64(tile.InfraLevel+1) * infraProdCostPerLevel
	if cost < c.ProdBank {
		c.ProdBank -= cost
		_ = tile.IncrementInfra()
	}
}

// firstUpgradable returns the first tile in tiles (already sorted
// best-to-worst) that can still take an infrastructure level, or nil.
func firstUpgradable(tiles []*worldtile.Tile) *worldtile.Tile {
	for _, t := range tiles {
		if t.CanBuildInfra() {
			return t
		}
	}
	return nil
}

// nearbyFoodAndProdTilesLocked partitions loc's eight neighbors into
// food and production tiles (by which yield component is positive),
// each returned sorted best-to-worst. Worked tiles are never
// candidates. When filterNearOtherCities is set (used only for
// settler-location scoring), tiles within distance 1 of any city are
// excluded too.
func (w *World) nearbyFoodAndProdTilesLocked(loc coords.Location, filterNearOtherCities bool, techMult float64) (food, prod []*worldtile.Tile) {
	for _, n := range loc.Neighbors8() {
		t, ok := w.grid.Tile(n)
		if !ok || t.Worked {
			continue
		}
		if filterNearOtherCities && w.tooCloseToAnyCity(n, settlerMinExclusion) {
			continue
		}
		y := t.EffectiveYield(techMult)
		switch {
		case y.Food > 0:
			food = insertDesc(food, t, func(x *worldtile.Tile) float64 { return x.EffectiveYield(techMult).Food })
		case y.Prod > 0:
			prod = insertDesc(prod, t, func(x *worldtile.Tile) float64 { return x.EffectiveYield(techMult).Prod })
		}
	}
	return food, prod
}

// insertDesc inserts t into list, keeping list sorted by value()
// descending; ties keep the earlier entry first.
func insertDesc(list []*worldtile.Tile, t *worldtile.Tile, value func(*worldtile.Tile) float64) []*worldtile.Tile {
	v := value(t)
	idx := len(list)
	for i, curr := range list {
		if v > value(curr) {
			idx = i
			break
		}
	}
	list = append(list, nil)
	copy(list[idx+1:], list[idx:])
	list[idx] = t
	return list
}

// bestSettlerLocLocked scans the Chebyshev square of radius
// settlerSearchRadius around origin for the highest-scoring valid new
// city site: in bounds, land, unhosted, and not within
// settlerMinExclusion of any existing city. Strict '>' means the
// first-found location wins ties.
func (w *World) bestSettlerLocLocked(origin coords.Location, techMult float64) (coords.Location, bool) {
	var best coords.Location
	bestScore := 0.0
	found := false

	for dr := -settlerSearchRadius; dr <= settlerSearchRadius; dr++ {
		for dc := -settlerSearchRadius; dc <= settlerSearchRadius; dc++ {
			loc := coords.Location{Row: origin.Row + dr, Col: origin.Col + dc}
			t, ok := w.grid.Tile(loc)
			if !ok || !t.IsLand() || t.HostsCity() {
				continue
			}
			if w.tooCloseToAnyCity(loc, settlerMinExclusion) {
				continue
			}
			score := w.cityLocHeuristicLocked(loc, techMult)
			if score > bestScore {
				best = loc
				bestScore = score
				found = true
			}
		}
	}
	return best, found
}

// cityLocHeuristicLocked scores loc as a settler destination: (1 +
// total nearby food) * (1 + total nearby prod), favoring a balance of
// both over an abundance of either alone.
func (w *World) cityLocHeuristicLocked(loc coords.Location, techMult float64) float64 {
	food, prod := w.nearbyFoodAndProdTilesLocked(loc, true, techMult)

	availableFood := foodFromCityCenter
	for _, t := range food {
		availableFood += t.EffectiveYield(techMult).Food
	}
	availableProd := prodFromCityCenter
	for _, t := range prod {
		availableProd += t.EffectiveYield(techMult).Prod
	}
	return availableFood * availableProd
}
