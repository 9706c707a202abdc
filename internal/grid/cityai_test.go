package grid

import (
	"math/rand"
	"testing"

	"baalrealm/internal/city"
	"baalrealm/internal/civilization"
	"baalrealm/internal/climate"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
	"baalrealm/internal/worldtile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allLushWorld builds a 5x5 grid of Lush (food) tiles at full HP, giving
// every city ample food so growth and build-priority behavior is easy to
// isolate.
func allLushWorld(t *testing.T) (*World, *city.City) {
	t.Helper()
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Lush))
		}
	}
	civ := civilization.New()
	w := NewWorld(g, &civ, rand.New(rand.NewSource(1)))
	capital, err := w.PlaceCity("Capital", coords.Location{Row: 2, Col: 2})
	require.NoError(t, err)
	return w, capital
}

func TestCycleCity_GrowsWhenWellFed(t *testing.T) {
	w, c := allLushWorld(t)
	startPop := c.Population

	w.CycleCity(c)

	assert.Greater(t, c.Population, startPop)
	assert.False(t, c.Famine)
}

func TestCycleCity_StarvesWithNoFoodTiles(t *testing.T) {
	g := NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Hills))
		}
	}
	civ := civilization.New()
	w := NewWorld(g, &civ, rand.New(rand.NewSource(1)))
	c, err := w.PlaceCity("Starving", coords.Location{Row: 1, Col: 1})
	require.NoError(t, err)
	c.Population = 5000 // required food (5) outstrips the city-center-only food supply (1)
	startPop := c.Population

	w.CycleCity(c)

	assert.True(t, c.Famine)
	assert.Less(t, c.Population, startPop)
}

func TestCycleCity_BuildsInfraOnBestFoodTileWhenShort(t *testing.T) {
	w, c := allLushWorld(t)
	c.Rank = 1
	c.Population = 4000 // pushes required food above what one lush neighbor gives
	c.ProdBank = infraProdCostPerLevel * 2 // already banked enough to afford one upgrade

	w.CycleCity(c)

	upgraded := false
	for _, n := range c.Location.Neighbors8() {
		tile, _ := w.Tile(n)
		if tile.InfraLevel > 0 {
			upgraded = true
		}
	}
	assert.True(t, upgraded)
}

func TestCycleCity_FoundsSettlerWhenProdBankedAndSiteAvailable(t *testing.T) {
	g := NewGrid(9, 9)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Lush))
		}
	}
	civ := civilization.New()
	w := NewWorld(g, &civ, rand.New(rand.NewSource(1)))
	c, err := w.PlaceCity("Capital", coords.Location{Row: 4, Col: 4})
	require.NoError(t, err)
	c.ProdBank = city.SettlerCost * 2
	c.Rank = 10 // enough workers to fully feed and still staff production

	before := len(w.Cities())
	w.CycleCity(c)
	after := len(w.Cities())

	assert.Greater(t, after, before)
}

func TestCycleCity_InvestsInDefenseWhenNothingElseToBuild(t *testing.T) {
	g := NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			tile := plainTile(coords.Location{Row: r, Col: c}, worldtile.Lush)
			tile.InfraLevel = worldtile.MaxInfraLevel
			g.Set(tile)
		}
	}
	civ := civilization.New()
	w := NewWorld(g, &civ, rand.New(rand.NewSource(1)))
	c, err := w.PlaceCity("Walled", coords.Location{Row: 1, Col: 1})
	require.NoError(t, err)
	c.ProdBank = c.DefenseCost() * 2
	startDefense := c.Defense

	w.CycleCity(c)

	assert.Greater(t, c.Defense, startDefense)
}

func TestNearbyFoodAndProdTiles_SortedDescendingByYield(t *testing.T) {
	g := NewGrid(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Plains))
		}
	}
	center := coords.Location{Row: 1, Col: 1}
	best, _ := g.Tile(coords.Location{Row: 0, Col: 0})
	best.InfraLevel = 3

	civ := civilization.New()
	w := NewWorld(g, &civ, rand.New(rand.NewSource(1)))

	food, _ := w.nearbyFoodAndProdTilesLocked(center, false, 1.0)
	require.NotEmpty(t, food)
	assert.Same(t, best, food[0])
}

func TestBestSettlerLoc_ExcludesTilesNearExistingCities(t *testing.T) {
	w, capital := allLushWorld(t)

	loc, found := w.bestSettlerLocLocked(capital.Location, 1.0)
	require.True(t, found)
	assert.Greater(t, loc.ChebyshevDistance(capital.Location), settlerMinExclusion)
}

func TestInsertDesc_KeepsEarlierEntryOnTie(t *testing.T) {
	a := worldtile.New(worldtile.Plains, coords.Location{Row: 0, Col: 0}, climate.Climate{}, geology.New(geology.Inactive))
	b := worldtile.New(worldtile.Plains, coords.Location{Row: 0, Col: 1}, climate.Climate{}, geology.New(geology.Inactive))

	value := func(t *worldtile.Tile) float64 { return 1.0 }
	list := insertDesc(nil, a, value)
	list = insertDesc(list, b, value)

	require.Len(t, list, 2)
	assert.Same(t, a, list[0])
}
