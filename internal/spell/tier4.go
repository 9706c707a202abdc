package spell

import "baalrealm/internal/coords"

// The tier-4 season-shifting spells (heatwave, coldwave, drought,
// monsoon) are left as bare "TODO: return 0" stubs in
// original_source/code/game/spell.py. Their docstrings describe a
// long-term effect ("will cause the next season to be abnormally X for
// the surrounding region"), which this package expresses as a direct,
// lasting shift to the tile's per-season climate baseline rather than
// the one-turn atmosphere overrides hot/cold/wind use, since a climate
// shift is exactly the kind of change that should survive the next
// Atmosphere.Cycle.

// heatwave permanently raises a tile's climate temperature baseline
// for the current season, enhanced by dry soil (a drought already in
// progress compounds a heatwave).
type heatwave struct{ base }

func newHeatwave(level int, loc coords.Location) Spell {
	return &heatwave{base{name: "heatwave", level: level, location: loc, baseCost: 400}}
}

func (h *heatwave) VerifyApply(w World) error { return h.verifyNotMultiCast(w) }

func (h *heatwave) Apply(w World) float64 {
	h.applyCommon(w)
	tile, _ := w.Tile(h.location)
	idx := w.Season().Index()

	shift := 4.0 * float64(h.level)
	if tile.IsFoodTile() && tile.SoilMoisture < 1 {
		shift *= 1.5
	}
	tile.Climate.Temperature[idx] += shift
	return 0
}

// coldwave permanently lowers a tile's climate temperature baseline
// for the current season, enhanced by existing snowpack.
type coldwave struct{ base }

func newColdwave(level int, loc coords.Location) Spell {
	return &coldwave{base{name: "coldwave", level: level, location: loc, baseCost: 400}}
}

func (c *coldwave) VerifyApply(w World) error { return c.verifyNotMultiCast(w) }

func (c *coldwave) Apply(w World) float64 {
	c.applyCommon(w)
	tile, _ := w.Tile(c.location)
	idx := w.Season().Index()

	shift := 4.0 * float64(c.level)
	if tile.Snowpack > 0 {
		shift *= 1.5
	}
	tile.Climate.Temperature[idx] -= shift
	return 0
}

// drought permanently lowers a tile's climate precipitation baseline
// for the current season by 10% per level (capped at 90%), and a food
// tile's soil moisture by the same fraction; existing soil moisture does
// not change the size of the reduction.
type drought struct{ base }

func newDrought(level int, loc coords.Location) Spell {
	return &drought{base{name: "drought", level: level, location: loc, baseCost: 400}}
}

func (d *drought) VerifyApply(w World) error { return d.verifyNotMultiCast(w) }

func (d *drought) Apply(w World) float64 {
	d.applyCommon(w)
	tile, _ := w.Tile(d.location)
	idx := w.Season().Index()

	reduction := 0.1 * float64(d.level)
	if reduction > 0.9 {
		reduction = 0.9
	}
	tile.Climate.Precip[idx] *= 1 - reduction
	if tile.IsFoodTile() {
		tile.SoilMoisture *= 1 - reduction
	}
	return 0
}

// monsoon permanently raises a tile's climate precipitation baseline
// for the current season by 20% per level, and adds that same 0.2*level
// to a food tile's soil moisture; existing soil moisture does not change
// the size of the increase.
type monsoon struct{ base }

func newMonsoon(level int, loc coords.Location) Spell {
	return &monsoon{base{name: "monsoon", level: level, location: loc, baseCost: 400}}
}

func (m *monsoon) VerifyApply(w World) error { return m.verifyNotMultiCast(w) }

func (m *monsoon) Apply(w World) float64 {
	m.applyCommon(w)
	tile, _ := w.Tile(m.location)
	idx := w.Season().Index()

	increase := 0.2 * float64(m.level)
	tile.Climate.Precip[idx] *= 1 + increase
	if tile.IsFoodTile() {
		tile.SoilMoisture += increase
	}
	return 0
}
