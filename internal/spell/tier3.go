package spell

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/baalmath"
	"baalrealm/internal/coords"
	"baalrealm/internal/worldtile"
)

// avalanche devastates mountain/hill infrastructure and cities,
// enhanced by an ongoing snow or blizzard cast and by elevation and
// snowpack. Grounded on spell.py's _Avalanche.
type avalanche struct{ base }

func newAvalanche(level int, loc coords.Location) Spell {
	return &avalanche{base{name: "avalanche", level: level, location: loc, baseCost: 200}}
}

func (a *avalanche) VerifyApply(w World) error {
	if err := a.verifyNotMultiCast(w); err != nil {
		return err
	}
	tile, _ := w.Tile(a.location)
	if tile.Kind != worldtile.Hills && tile.Kind != worldtile.Mountain {
		return baalerr.NewUser("WRONG_TILE", "avalanches can only be cast on mountains or hills")
	}
	if tile.Snowpack <= 0 {
		return baalerr.NewUser("WRONG_TILE", "there is no snow on this tile")
	}
	return nil
}

func (a *avalanche) Apply(w World) float64 {
	a.applyCommon(w)
	tile, _ := w.Tile(a.location)
	tech := w.TechLevel()

	snowstormMult := 1.0
	if tile.HasCast("snow") {
		snowstormMult = 1.5
	}
	blizzardMult := 1.0
	if tile.HasCast("blizzard") {
		blizzardMult = 2.0
	}

	baseDestructiveness := baalmath.PolyGrowth(float64(a.level), 1.3, 1)
	elevationMult := baalmath.ExpGrowth(1.1, tile.Elevation/1000, 2, 0)
	snowpackMult := baalmath.ExpGrowth(1.002, tile.Snowpack, 100, 0)
	destructiveness := baseDestructiveness * snowstormMult * blizzardMult * elevationMult * snowpackMult

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.05, destructiveness, 0, 0), techPenalty)

	if c, ok := w.CityAt(a.location); ok {
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		exp += kill(w, c, (destructiveness/techPenalty)/defensePenalty)
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.03, destructiveness, 0, 0), techPenalty)
	}
	return exp
}

// flood rains out a tile's soil moisture into a destructive torrent,
// scaled by dewpoint and pressure, that can wreck infrastructure,
// defenses, and a hosted city's population. Grounded on spell.py's
// _Flood.
type flood struct{ base }

func newFlood(level int, loc coords.Location) Spell {
	return &flood{base{name: "flood", level: level, location: loc, baseCost: 200}}
}

const floodMinTemp = 33

func (f *flood) VerifyApply(w World) error {
	if err := f.verifyNotMultiCast(w); err != nil {
		return err
	}
	tile, _ := w.Tile(f.location)
	if !tile.IsFoodTile() {
		return baalerr.NewUser("WRONG_TILE", "floods can only be cast on tiles that have moisture")
	}
	if tile.Atmosphere.Temperature < floodMinTemp {
		return baalerr.NewUser("WRONG_SEASON", "it is too cold to rain")
	}
	return nil
}

func (f *flood) Apply(w World) float64 {
	f.applyCommon(w)
	tile, _ := w.Tile(f.location)
	tech := w.TechLevel()

	dewpoint := tile.Atmosphere.Dewpoint
	pressure := tile.Atmosphere.Pressure
	averagePrecip := avgSeasonPrecip(tile)
	if averagePrecip == 0 {
		averagePrecip = 1
	}

	baseRainfall := float64(f.level)
	dewpointMult := baalmath.ExpGrowth(1.03, dewpoint, 55, 0)
	pressureMult := baalmath.ExpGrowth(1.03, pressure, 990, 0)
	totalRainfall := baseRainfall * dewpointMult * pressureMult

	newMoisture := tile.SoilMoisture + totalRainfall/averagePrecip
	tile.SoilMoisture = newMoisture

	moistureMult := baalmath.ExpGrowth(1.05, newMoisture*10, 10, 0)
	elevationMult := baalmath.ExpGrowth(1.1, pressure/500, 0, 0)
	destructiveness := totalRainfall * moistureMult * elevationMult

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.05, destructiveness, 0, 0), techPenalty)

	if c, ok := w.CityAt(f.location); ok {
		defensePenalty := c.Defense
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		exp += kill(w, c, (destructiveness/techPenalty)/defensePenalty)
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.03, destructiveness, 0, 0), techPenalty)
	}
	return exp
}

// avgSeasonPrecip averages a tile's four-season climate baseline; flood
// divides by this year-round average rather than by the current
// season's baseline.
func avgSeasonPrecip(tile *worldtile.Tile) float64 {
	sum := 0.0
	for _, p := range tile.Climate.Precip {
		sum += p
	}
	return sum / 4
}

// dry lowers a tile's soil moisture, a slow-burn counterpart to flood;
// the original leaves this spell a stub, so this is an enrichment
// rather than a direct port.
type dry struct{ base }

func newDry(level int, loc coords.Location) Spell {
	return &dry{base{name: "dry", level: level, location: loc, baseCost: 200}}
}

func (d *dry) VerifyApply(w World) error { return d.verifyNotMultiCast(w) }

func (d *dry) Apply(w World) float64 {
	d.applyCommon(w)
	tile, _ := w.Tile(d.location)
	if tile.IsFoodTile() {
		tile.SoilMoisture *= baalmath.PolyGrowth(float64(d.level), -0.3, 1)
	}
	return 0
}

// blizzard combines heavy snowfall with plunging temperatures, the
// tier-3 escalation of snow; the original leaves this spell a stub. Its
// body here adds a flat 12*level of snowpack and drops temperature by
// 6*level, without snow's temperature/pressure/dewpoint multipliers.
type blizzard struct{ base }

func newBlizzard(level int, loc coords.Location) Spell {
	return &blizzard{base{name: "blizzard", level: level, location: loc, baseCost: 200}}
}

func (b *blizzard) VerifyApply(w World) error { return b.verifyNotMultiCast(w) }

func (b *blizzard) Apply(w World) float64 {
	b.applyCommon(w)
	tile, _ := w.Tile(b.location)

	snowfall := 12.0 * float64(b.level)
	tile.Snowpack += snowfall
	tile.Atmosphere.OverrideTemperature(tile.Atmosphere.Temperature - 6*float64(b.level))
	if tile.IsFoodTile() {
		tile.SoilMoisture *= 0.25
	}

	var exp float64
	if c, ok := w.CityAt(b.location); ok {
		baseKillPct := baalmath.PolyGrowth(snowfall-60, 1.2, 8)
		if baseKillPct > 0 {
			exp += kill(w, c, baseKillPct)
		}
	}
	return exp
}

// tornado scores a chance-based direct hit on its tile's infrastructure
// and hosted city; the original leaves this spell a stub, so the
// direct-hit roll is an enrichment grounded on the description
// ("each tornado has a chance of scoring a direct hit").
type tornado struct{ base }

func newTornado(level int, loc coords.Location) Spell {
	return &tornado{base{name: "tornado", level: level, location: loc, baseCost: 200}}
}

func (t *tornado) VerifyApply(w World) error { return t.verifyNotMultiCast(w) }

func (t *tornado) Apply(w World) float64 {
	t.applyCommon(w)
	tile, _ := w.Tile(t.location)
	tech := w.TechLevel()

	directHitChance := 0.1 * float64(t.level)
	if directHitChance > 1 {
		directHitChance = 1
	}
	if w.Rand().Float64() >= directHitChance {
		return 0
	}

	destructiveness := baalmath.PolyGrowth(float64(t.level), 1.5, 1)
	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.1, destructiveness, 0, 0), techPenalty)
	if c, ok := w.CityAt(t.location); ok {
		exp += kill(w, c, destructiveness/techPenalty)
	}
	return exp
}
