package grid

import (
	"testing"

	"baalrealm/internal/climate"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
	"baalrealm/internal/worldtile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainTile builds a bare tile of kind at loc with a full-strength
// moisture multiplier, so food-tile yields in tests aren't silently zeroed
// by the default (zero-value, "saturated dry") soil moisture.
func plainTile(loc coords.Location, kind worldtile.Kind) *worldtile.Tile {
	t := worldtile.New(kind, loc, climate.Climate{}, geology.New(geology.Inactive))
	t.SoilMoisture = 1.0
	return t
}

func TestGrid_SetAndTile(t *testing.T) {
	g := NewGrid(3, 3)
	loc := coords.Location{Row: 1, Col: 1}
	tile := plainTile(loc, worldtile.Plains)
	g.Set(tile)

	got, ok := g.Tile(loc)
	require.True(t, ok)
	assert.Same(t, tile, got)
}

func TestGrid_TileOffGridReturnsFalse(t *testing.T) {
	g := NewGrid(2, 2)
	_, ok := g.Tile(coords.Location{Row: 5, Col: 5})
	assert.False(t, ok)
}

func TestGrid_Neighbors8ExcludesOffGrid(t *testing.T) {
	g := NewGrid(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			g.Set(plainTile(coords.Location{Row: r, Col: c}, worldtile.Ocean))
		}
	}
	// corner (0,0) has exactly 3 in-bounds neighbors on a 2x2 grid.
	neighbors := g.Neighbors8(coords.Location{Row: 0, Col: 0})
	assert.Len(t, neighbors, 3)
}

func TestGrid_AllTilesRowMajorOrder(t *testing.T) {
	g := NewGrid(2, 2)
	var locs []coords.Location
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			loc := coords.Location{Row: r, Col: c}
			locs = append(locs, loc)
			g.Set(plainTile(loc, worldtile.Ocean))
		}
	}
	all := g.AllTiles()
	require.Len(t, all, 4)
	for i, tile := range all {
		assert.Equal(t, locs[i], tile.Location)
	}
}
