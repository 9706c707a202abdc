package spell

import (
	"baalrealm/internal/baalmath"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
)

// disease is the tier-5 escalation of infect, a heavier direct city
// killer sharing the same enhancements (extreme temps, famine, city
// size). Left a "TODO: return 0" stub in the original; this package
// fills it in by reusing infect's formula shape at a steeper base.
type disease struct{ base }

func newDisease(level int, loc coords.Location) Spell {
	return &disease{base{name: "disease", level: level, location: loc, baseCost: 800}}
}

func (d *disease) VerifyApply(w World) error { return d.verifyNotMultiCast(w) }

func (d *disease) Apply(w World) float64 {
	d.applyCommon(w)
	tile, _ := w.Tile(d.location)
	tech := w.TechLevel()

	c, ok := w.CityAt(d.location)
	if !ok {
		return 0
	}

	baseKillPct := baalmath.PolyGrowth(float64(d.level), 1.5, 1)
	citySizeBonus := baalmath.ExpGrowth(1.05, float64(c.Rank), 0, 0)
	extremeBonus := extremeTempBonus(tile.Atmosphere.Temperature)
	famineBonus := 1.0
	if c.Famine {
		famineBonus = 3.0
	}
	techPenalty := tech
	if techPenalty == 0 {
		techPenalty = 1
	}

	pctKilled := (baseKillPct * citySizeBonus * extremeBonus * famineBonus) / techPenalty
	return kill(w, c, pctKilled)
}

// quake is an earthquake: enhanced by the tile's geologic tension,
// devastating nearby infrastructure and any hosted city. Left a
// "TODO: return 0" stub in the original; this package grounds its
// destructiveness in the tile's own geology.State.Tension built up by
// package geology's per-turn Cycle.
type quake struct{ base }

func newQuake(level int, loc coords.Location) Spell {
	return &quake{base{name: "quake", level: level, location: loc, baseCost: 800}}
}

func (q *quake) VerifyApply(w World) error { return q.verifyNotMultiCast(w) }

func (q *quake) Apply(w World) float64 {
	q.applyCommon(w)
	tile, _ := w.Tile(q.location)
	tech := w.TechLevel()

	tensionMult := 1.0
	if tile.Geology.Kind != geology.Inactive {
		tensionMult = 1 + 4*tile.Geology.Tension
	}
	destructiveness := baalmath.PolyGrowth(float64(q.level), 1.4, 1) * tensionMult

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.08, destructiveness, 0, 0), techPenalty)
	if c, ok := w.CityAt(q.location); ok {
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		exp += kill(w, c, (destructiveness/techPenalty)/defensePenalty)
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.05, destructiveness, 0, 0), techPenalty)
	}
	return exp
}

// hurricane spawns a cluster of floods, winds, and tstorms over its
// tile, the tier-5 escalation of the tstorm chain reaction. Left a
// "TODO: return 0" stub in the original; this package fills it in by
// reusing tstorm's spawn pattern at a larger scale.
type hurricane struct {
	base
	catalogue *Catalogue
}

func newHurricane(level int, loc coords.Location) Spell {
	return &hurricane{base: base{name: "hurricane", level: level, location: loc, baseCost: 800}}
}

func (h *hurricane) bindCatalogue(c *Catalogue) { h.catalogue = c }

func (h *hurricane) VerifyApply(w World) error { return h.verifyNotMultiCast(w) }

func (h *hurricane) Apply(w World) float64 {
	h.applyCommon(w)
	destructiveness := baalmath.PolyGrowth(float64(h.level), 1.3, 1)

	var exp float64
	if lvl := baalmath.FibonacciDiv(destructiveness, 8); lvl > 0 {
		exp += spawn(w, h.catalogue, "wind", lvl, h.location)
	}
	if lvl := baalmath.FibonacciDiv(destructiveness, 10); lvl > 0 {
		exp += spawn(w, h.catalogue, "flood", lvl, h.location)
	}
	if lvl := baalmath.FibonacciDiv(destructiveness, 12); lvl > 0 {
		exp += spawn(w, h.catalogue, "tstorm", lvl, h.location)
	}
	return exp
}
