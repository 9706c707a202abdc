package grid

import (
	"math/rand"
	"testing"

	"baalrealm/internal/civilization"
	"baalrealm/internal/coords"
	"baalrealm/internal/season"
	"baalrealm/internal/worldtile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, rows, cols int) *World {
	t.Helper()
	g := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Plains))
		}
	}
	civ := civilization.New()
	return NewWorld(g, &civ, rand.New(rand.NewSource(1)))
}

func TestWorld_PlaceCityAndCityAt(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	loc := coords.Location{Row: 1, Col: 1}

	c, err := w.PlaceCity("Capital", loc)
	require.NoError(t, err)

	found, ok := w.CityAt(loc)
	require.True(t, ok)
	assert.Same(t, c, found)

	tile, _ := w.Tile(loc)
	assert.True(t, tile.HostsCity())
}

func TestWorld_PlaceCityRejectsOcean(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	g := w.Grid()
	g.Set(plainTile(coords.Location{Row: 0, Col: 0}, worldtile.Ocean))

	_, err := w.PlaceCity("Drowned", coords.Location{Row: 0, Col: 0})
	assert.Error(t, err)
}

func TestWorld_PlaceCityRejectsAlreadyHosted(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	loc := coords.Location{Row: 0, Col: 0}
	_, err := w.PlaceCity("First", loc)
	require.NoError(t, err)

	_, err = w.PlaceCity("Second", loc)
	assert.Error(t, err)
}

func TestWorld_RemoveCityClearsTileAndRoster(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	loc := coords.Location{Row: 0, Col: 0}
	c, err := w.PlaceCity("Capital", loc)
	require.NoError(t, err)

	w.RemoveCity(c)

	_, ok := w.CityAt(loc)
	assert.False(t, ok)
	assert.Empty(t, w.Cities())
}

func TestWorld_TechLevelAndYieldMultiplierReflectCivilization(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	assert.Equal(t, float64(civilization.StartingTechLevel), w.TechLevel())
	assert.Equal(t, 1.0, w.YieldMultiplier())
}

func TestWorld_ReportDrainsOnRead(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	w.Report("hot", "tile scorched")
	reports := w.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, "hot", reports[0].Subject)
	assert.Empty(t, w.Reports())
}

func TestWorld_CycleTurnAdvancesSeason(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	require.Equal(t, season.Winter, w.Season())
	w.CycleTurn()
	assert.Equal(t, season.Spring, w.Season())
}

func TestWorld_CycleTurnClearsWorkedAndCastFlags(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	loc := coords.Location{Row: 0, Col: 0}
	tile, _ := w.Tile(loc)
	tile.Worked = true
	require.NoError(t, tile.MarkCast("hot"))

	w.CycleTurn()

	assert.False(t, tile.Worked)
	assert.False(t, tile.HasCast("hot"))
}

func TestWorld_PlaceCityAssignsStableCityIndex(t *testing.T) {
	w := newTestWorld(t, 3, 3)
	a, err := w.PlaceCity("A", coords.Location{Row: 0, Col: 0})
	require.NoError(t, err)
	w.RemoveCity(a)

	b, err := w.PlaceCity("B", coords.Location{Row: 1, Col: 1})
	require.NoError(t, err)

	found, ok := w.CityAt(coords.Location{Row: 1, Col: 1})
	require.True(t, ok)
	assert.Same(t, b, found)
}
