package spell

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/baalmath"
	"baalrealm/internal/coords"
)

// fire burns a food tile, scaling destructiveness off wind, temperature,
// dryness, and snowpack, then converting that destructiveness into
// infra damage, tile damage, and (on a city) population and defense
// loss. Grounded on spell.py's _Fire.
type fire struct{ base }

func newFire(level int, loc coords.Location) Spell {
	return &fire{base{name: "fire", level: level, location: loc, baseCost: 100}}
}

func (f *fire) VerifyApply(w World) error {
	if err := f.verifyNotMultiCast(w); err != nil {
		return err
	}
	tile, _ := w.Tile(f.location)
	if !tile.IsFoodTile() {
		return baalerr.NewUser("WRONG_TILE", "fire can only be cast on tiles with plant growth")
	}
	return nil
}

func (f *fire) Apply(w World) float64 {
	f.applyCommon(w)
	tile, _ := w.Tile(f.location)
	tech := w.TechLevel()

	wind := float64(tile.Atmosphere.Wind.SpeedMPH)
	temp := tile.Atmosphere.Temperature
	moisture := tile.SoilMoisture
	snowpack := tile.Snowpack

	baseDestructiveness := baalmath.PolyGrowth(float64(f.level), 1.3, 1)
	tempMult := baalmath.ExpGrowth(1.03, temp, 75, 0)
	windMult := baalmath.ExpGrowth(1.05, wind, 20, 30)
	moistureMult := baalmath.ExpGrowth(1.05, 75-moisture*100, 0, 30)
	snowpackDivisor := baalmath.ExpGrowth(1.3, snowpack, 0, 0)
	if snowpackDivisor == 0 {
		snowpackDivisor = 1
	}
	destructiveness := (baseDestructiveness * tempMult * windMult * moistureMult) / snowpackDivisor

	techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
	if techPenalty == 0 {
		techPenalty = 1
	}

	var exp float64
	exp += infraDamageCommon(w, tile, baalmath.ExpGrowth(1.05, destructiveness, 0, 0), techPenalty)
	if tile.InfraLevel > 0 {
		damageTile(tile, destructiveness)
	}

	if c, ok := w.CityAt(f.location); ok {
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		pctKilled := (destructiveness / techPenalty) / defensePenalty
		exp += kill(w, c, pctKilled)
		exp += defenseDamageCommon(c, baalmath.ExpGrowth(1.03, destructiveness, 0, 0), techPenalty)
	}
	return exp
}

// tstorm spawns severe thunderstorms: a minor direct killer on its own,
// but a prolific chain-reaction trigger for wind, flood, and tornado.
// Grounded on spell.py's _Tstorm.
type tstorm struct {
	base
	catalogue *Catalogue
}

func newTstorm(level int, loc coords.Location) Spell {
	return &tstorm{base: base{name: "tstorm", level: level, location: loc, baseCost: 100}}
}

// bindCatalogue lets the factory attach the catalogue a tstorm needs to
// spawn its chain reactions, without every spell constructor taking a
// catalogue argument it doesn't use.
func (t *tstorm) bindCatalogue(c *Catalogue) { t.catalogue = c }

func (t *tstorm) VerifyApply(w World) error {
	if err := t.verifyNotMultiCast(w); err != nil {
		return err
	}
	tile, _ := w.Tile(t.location)
	if !tile.IsFoodTile() {
		return baalerr.NewUser("WRONG_TILE", "tstorms can only be cast on plains or lush tiles")
	}
	return nil
}

const dryStormMoistureAdd = 0.1

func (t *tstorm) Apply(w World) float64 {
	t.applyCommon(w)
	tile, _ := w.Tile(t.location)
	tech := w.TechLevel()

	wind := float64(tile.Atmosphere.Wind.SpeedMPH)
	temp := tile.Atmosphere.Temperature
	pressure := tile.Atmosphere.Pressure

	baseDestructiveness := baalmath.PolyGrowth(float64(t.level), 1.3, 1)
	tempMult := baalmath.ExpGrowth(1.03, temp, 85, 15)
	windMult := baalmath.ExpGrowth(1.03, wind, 15, 15)
	pressureMult := baalmath.ExpGrowth(1.05, pressure, 990, 0)
	destructiveness := baseDestructiveness * tempMult * windMult * pressureMult

	var exp float64
	windSpawnLvl := baalmath.FibonacciDiv(destructiveness, 10)
	floodSpawnLvl := baalmath.FibonacciDiv(destructiveness, 15)
	tornadoSpawnLvl := baalmath.FibonacciDiv(destructiveness, 20)

	if windSpawnLvl > 0 {
		exp += spawn(w, t.catalogue, "wind", windSpawnLvl, t.location)
	}
	if floodSpawnLvl > 0 {
		exp += spawn(w, t.catalogue, "flood", floodSpawnLvl, t.location)
	} else {
		tile.SoilMoisture += dryStormMoistureAdd
	}
	if tornadoSpawnLvl > 0 {
		exp += spawn(w, t.catalogue, "tornado", tornadoSpawnLvl, t.location)
	}

	if c, ok := w.CityAt(t.location); ok {
		techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
		if techPenalty == 0 {
			techPenalty = 1
		}
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		baseKillPct := 0.02 * destructiveness
		exp += kill(w, c, (baseKillPct/techPenalty)/defensePenalty)
	}
	return exp
}

// snow drops heavy snowfall, piling up snowpack (fueling avalanches and
// blizzards downstream) and killing city population directly once the
// snowfall itself gets heavy enough, enhanced by cold, high pressure,
// and a low dewpoint. Grounded on spell.py's _Snow.
type snow struct{ base }

func newSnow(level int, loc coords.Location) Spell {
	return &snow{base{name: "snow", level: level, location: loc, baseCost: 100}}
}

const snowMaxTemp = 32

func (s *snow) VerifyApply(w World) error {
	if err := s.verifyNotMultiCast(w); err != nil {
		return err
	}
	tile, _ := w.Tile(s.location)
	if tile.Atmosphere.Temperature > snowMaxTemp {
		return baalerr.NewUser("WRONG_SEASON", "it is too warm to snow")
	}
	return nil
}

func (s *snow) Apply(w World) float64 {
	s.applyCommon(w)
	tile, _ := w.Tile(s.location)
	tech := w.TechLevel()

	temp := tile.Atmosphere.Temperature
	pressure := tile.Atmosphere.Pressure
	dewpoint := tile.Atmosphere.Dewpoint

	tempMult := baalmath.ExpGrowth(1.03, snowMaxTemp-temp, 0, 20)
	pressureMult := baalmath.ExpGrowth(1.03, pressure, 990, 0)
	dewpointMult := baalmath.ExpGrowth(1.02, -dewpoint, 0, 20)
	snowfall := 4.0 * float64(s.level) * tempMult * pressureMult * dewpointMult
	tile.Snowpack += snowfall

	var exp float64
	if c, ok := w.CityAt(s.location); ok {
		baseKillPct := baalmath.ExpGrowth(1.03, snowfall, 0, 50)
		techPenalty := baalmath.PolyGrowth(tech, 0.5, 1)
		if techPenalty == 0 {
			techPenalty = 1
		}
		defensePenalty := baalmath.PolyGrowth(c.Defense, 0.5, 1)
		if defensePenalty == 0 {
			defensePenalty = 1
		}
		exp += kill(w, c, baseKillPct/techPenalty/defensePenalty)
	}
	return exp
}
