package spell

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/baalmath"
	"baalrealm/internal/coords"
	"baalrealm/internal/worldtile"
)

// hot raises the temperature of a tile's atmosphere (and a little of an
// ocean tile's surface temperature), killing city populations once the
// new temperature clears a threshold. Grounded on spell.py's _Hot.
type hot struct{ base }

func newHot(level int, loc coords.Location) Spell {
	return &hot{base{name: "hot", level: level, location: loc, baseCost: 50}}
}

func (h *hot) VerifyApply(w World) error { return h.verifyNotMultiCast(w) }

func (h *hot) Apply(w World) float64 {
	h.applyCommon(w)
	tile, _ := w.Tile(h.location)
	tech := w.TechLevel()

	origTemp := tile.Atmosphere.Temperature
	newTemp := origTemp + 7*float64(h.level)
	tile.Atmosphere.OverrideTemperature(newTemp)

	if tile.Kind == worldtile.Ocean {
		tile.SurfaceTemp += 2 * float64(h.level)
	}

	var exp float64
	if c, ok := w.CityAt(h.location); ok {
		baseKillPct := baalmath.PolyGrowth(newTemp-100, 1.5, 8)
		if baseKillPct > 0 {
			techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
			if techPenalty == 0 {
				techPenalty = 1
			}
			exp += kill(w, c, baseKillPct/techPenalty)
		}
	}
	return exp
}

// cold is hot's mirror image: it lowers temperature instead of raising
// it, and kills via a cold-side threshold, worsened by high wind once
// below 0°F and by an ongoing famine. Grounded on spell.py's
// _Cold.
type cold struct{ base }

func newCold(level int, loc coords.Location) Spell {
	return &cold{base{name: "cold", level: level, location: loc, baseCost: 50}}
}

func (c *cold) VerifyApply(w World) error { return c.verifyNotMultiCast(w) }

func (c *cold) Apply(w World) float64 {
	c.applyCommon(w)
	tile, _ := w.Tile(c.location)
	tech := w.TechLevel()

	origTemp := tile.Atmosphere.Temperature
	newTemp := origTemp - 7*float64(c.level)
	tile.Atmosphere.OverrideTemperature(newTemp)

	if tile.Kind == worldtile.Ocean {
		tile.SurfaceTemp -= 2 * float64(c.level)
	}

	var exp float64
	if city, ok := w.CityAt(c.location); ok {
		baseKillPct := baalmath.PolyGrowth(0-newTemp, 1.5, 8)
		if baseKillPct > 0 {
			windBonus := 1.0
			if newTemp < 0 {
				windBonus = baalmath.ExpGrowth(1.02, float64(tile.Atmosphere.Wind.SpeedMPH), 0, 40)
			}
			famineBonus := 1.0
			if city.Famine {
				famineBonus = 2.0
			}
			techPenalty := tech
			if techPenalty == 0 {
				techPenalty = 1
			}
			exp += kill(w, city, (baseKillPct*windBonus*famineBonus)/techPenalty)
		}
	}
	return exp
}

// infect causes a city-local sickness, enhanced by city size, famine,
// and temperature extremes. Can only be cast on a tile hosting a city.
// Grounded on spell.py's _Infect.
type infect struct{ base }

func newInfect(level int, loc coords.Location) Spell {
	return &infect{base{name: "infect", level: level, location: loc, baseCost: 50}}
}

func (i *infect) VerifyApply(w World) error {
	if err := i.verifyNotMultiCast(w); err != nil {
		return err
	}
	if _, ok := w.CityAt(i.location); !ok {
		return baalerr.NewUser("WRONG_TILE", "infect must be cast on a city")
	}
	return nil
}

func (i *infect) Apply(w World) float64 {
	i.applyCommon(w)
	tile, _ := w.Tile(i.location)
	tech := w.TechLevel()
	c, _ := w.CityAt(i.location)

	baseKillPct := baalmath.PolyGrowth(float64(i.level), 1.3, 1)
	citySizeBonus := baalmath.ExpGrowth(1.05, float64(c.Rank), 0, 0)
	extremeTempBonus := extremeTempBonus(tile.Atmosphere.Temperature)
	famineBonus := 1.0
	if c.Famine {
		famineBonus = 2.0
	}
	techPenalty := tech
	if techPenalty == 0 {
		techPenalty = 1
	}

	pctKilled := (baseKillPct * citySizeBonus * extremeTempBonus * famineBonus) / techPenalty
	return kill(w, c, pctKilled)
}

func extremeTempBonus(temp float64) float64 {
	var degreesExtreme float64
	switch {
	case temp > 90:
		degreesExtreme = temp - 90
	case temp < 30:
		degreesExtreme = 30 - temp
	}
	return baalmath.ExpGrowth(1.03, degreesExtreme, 0, 20)
}

// wind raises wind speed, which damages infrastructure, can kill a
// city's population, and batters its defenses. Grounded on spell.py's
// _Wind.
type wind struct{ base }

func newWind(level int, loc coords.Location) Spell {
	return &wind{base{name: "wind", level: level, location: loc, baseCost: 50}}
}

func (d *wind) VerifyApply(w World) error { return d.verifyNotMultiCast(w) }

func (d *wind) Apply(w World) float64 {
	d.applyCommon(w)
	tile, _ := w.Tile(d.location)
	tech := w.TechLevel()

	temp := tile.Atmosphere.Temperature
	origWind := float64(tile.Atmosphere.Wind.SpeedMPH)
	newWindSpeed := origWind + 20*float64(d.level)
	tile.Atmosphere.OverrideWind(tile.Atmosphere.Wind.Plus(float32(newWindSpeed - origWind)))

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.03, newWindSpeed, 60, 0), techPenalty)

	if c, ok := w.CityAt(d.location); ok {
		baseKillPct := baalmath.ExpGrowth(1.03, newWindSpeed, 80, 0)
		if baseKillPct > 0 {
			coldBonus := 1.0
			if temp < 0 {
				coldBonus = baalmath.ExpGrowth(1.02, newWindSpeed, 0, 40) - baalmath.ExpGrowth(1.02, origWind, 0, 40)
			}
			defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
			if defensePenalty == 0 {
				defensePenalty = 1
			}
			exp += kill(w, c, (baseKillPct*coldBonus)/techPenalty/defensePenalty)
		}
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.02, newWindSpeed, 80, 0), techPenalty)
	}
	return exp
}
