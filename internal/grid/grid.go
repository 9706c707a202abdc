// Package grid implements the 2-D tile container, city roster, and turn
// driver described in spec §3 ("World grid") and §4.6 ("City & city AI").
// It is the concrete spell.World the catalogue casts against, and the
// board the city AI reads and mutates every turn.
//
// Grounded on internal/ecosystem/geography/hex.go's location-keyed grid
// with neighbor queries (adapted from hex to the spec's row/col
// rectangular grid) and internal/ecosystem/service.go's
// sync.RWMutex-guarded owner-of-state pattern. The turn loop here is
// single-threaded (spec §5), but every sibling example repo guards its
// owned-state containers the same way, so World keeps the habit.
package grid

import (
	"baalrealm/internal/coords"
	"baalrealm/internal/worldtile"
)

// Grid is a fixed-size 2-D container of tiles, addressed by
// coords.Location.
type Grid struct {
	rows, cols int
	tiles      [][]*worldtile.Tile
}

// NewGrid allocates an empty rows x cols grid; callers populate it with
// Set before handing it to NewWorld.
func NewGrid(rows, cols int) *Grid {
	tiles := make([][]*worldtile.Tile, rows)
	for r := range tiles {
		tiles[r] = make([]*worldtile.Tile, cols)
	}
	return &Grid{rows: rows, cols: cols, tiles: tiles}
}

// Rows returns the grid's height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's width.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether loc addresses a cell of this grid.
func (g *Grid) InBounds(loc coords.Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// Set places t at its own Location. Panics (a programmer error, not a
// user error) if the location is off-grid.
func (g *Grid) Set(t *worldtile.Tile) {
	if !g.InBounds(t.Location) {
		panic("grid: tile location out of bounds")
	}
	g.tiles[t.Location.Row][t.Location.Col] = t
}

// Tile returns the tile at loc, or ok=false if loc is off-grid.
func (g *Grid) Tile(loc coords.Location) (*worldtile.Tile, bool) {
	if !g.InBounds(loc) {
		return nil, false
	}
	return g.tiles[loc.Row][loc.Col], true
}

// AllTiles iterates every tile in row-major order, the scan order spec
// §5 requires for the per-turn world cycle.
func (g *Grid) AllTiles() []*worldtile.Tile {
	out := make([]*worldtile.Tile, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, g.tiles[r][c])
		}
	}
	return out
}

// Neighbors8 returns the in-bounds tiles adjacent to loc, in the same
// row-major scan order as coords.Location.Neighbors8.
func (g *Grid) Neighbors8(loc coords.Location) []*worldtile.Tile {
	var out []*worldtile.Tile
	for _, n := range loc.Neighbors8() {
		if t, ok := g.Tile(n); ok {
			out = append(out, t)
		}
	}
	return out
}
