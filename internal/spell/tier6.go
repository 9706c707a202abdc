package spell

import (
	"baalrealm/internal/baalmath"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
)

// plague is a large-scale outbreak affecting the targeted city and, per
// its docstring, "all nearby cities" - approximated here (this package
// has no direct neighbor-city lookup) as a single, much harsher disease
// cast. Left a "TODO: return 0" stub in the original.
type plague struct{ base }

func newPlague(level int, loc coords.Location) Spell {
	return &plague{base{name: "plague", level: level, location: loc, baseCost: 1600}}
}

func (p *plague) VerifyApply(w World) error { return p.verifyNotMultiCast(w) }

func (p *plague) Apply(w World) float64 {
	p.applyCommon(w)
	tile, _ := w.Tile(p.location)
	tech := w.TechLevel()

	c, ok := w.CityAt(p.location)
	if !ok {
		return 0
	}

	baseKillPct := baalmath.PolyGrowth(float64(p.level), 1.6, 1)
	citySizeBonus := baalmath.ExpGrowth(1.05, float64(c.Rank), 0, 0)
	extremeBonus := extremeTempBonus(tile.Atmosphere.Temperature)
	famineBonus := 1.0
	if c.Famine {
		famineBonus = 4.0
	}
	techPenalty := tech
	if techPenalty == 0 {
		techPenalty = 1
	}

	pctKilled := (baseKillPct * citySizeBonus * extremeBonus * famineBonus) / techPenalty
	return kill(w, c, pctKilled)
}

// volcano is a large eruption enhanced by the tile's geologic magma
// buildup, eradicating nearby infrastructure, defenses, and
// population. Left a "TODO: return 0" stub in the original; grounded
// on the same geology.State the quake spell reads from.
type volcano struct{ base }

func newVolcano(level int, loc coords.Location) Spell {
	return &volcano{base{name: "volcano", level: level, location: loc, baseCost: 1600}}
}

func (v *volcano) VerifyApply(w World) error { return v.verifyNotMultiCast(w) }

func (v *volcano) Apply(w World) float64 {
	v.applyCommon(w)
	tile, _ := w.Tile(v.location)
	tech := w.TechLevel()

	magmaMult := 1.0
	if tile.Geology.Kind != geology.Inactive {
		magmaMult = 1 + 9*tile.Geology.Magma
	}
	destructiveness := baalmath.PolyGrowth(float64(v.level), 1.5, 1) * magmaMult

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	damageTile(tile, destructiveness)

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.1, destructiveness, 0, 0), techPenalty)
	if c, ok := w.CityAt(v.location); ok {
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		exp += kill(w, c, (destructiveness/techPenalty)/defensePenalty)
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.08, destructiveness, 0, 0), techPenalty)
	}
	return exp
}

// asteroid is the endgame spell: a planet-wide strike with a
// level-scaled chance to miss its target tile entirely. Left a
// "TODO: return 0" stub in the original; the miss-chance roll is
// grounded on the docstring ("a chance the asteroid will miss").
type asteroid struct{ base }

func newAsteroid(level int, loc coords.Location) Spell {
	return &asteroid{base{name: "asteroid", level: level, location: loc, baseCost: 3200}}
}

func (a *asteroid) VerifyApply(w World) error { return a.verifyNotMultiCast(w) }

func (a *asteroid) Apply(w World) float64 {
	a.applyCommon(w)
	tile, _ := w.Tile(a.location)
	tech := w.TechLevel()

	missChance := 0.5 / float64(a.level)
	if w.Rand().Float64() < missChance {
		return 0
	}

	destructiveness := baalmath.PolyGrowth(float64(a.level), 1.8, 1)
	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	damageTile(tile, destructiveness)

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.15, destructiveness, 0, 0), techPenalty)
	if c, ok := w.CityAt(a.location); ok {
		exp += kill(w, c, destructiveness/techPenalty)
	}
	return exp
}
