package worldtile

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/climate"
	"baalrealm/internal/coords"
	"baalrealm/internal/geology"
	"baalrealm/internal/season"
)

// Kind is the closed set of terrain variants a Tile can be.
type Kind int

const (
	Ocean Kind = iota
	Mountain
	Desert
	Tundra
	Hills
	Plains
	Lush
)

var kindNames = [...]string{"Ocean", "Mountain", "Desert", "Tundra", "Hills", "Plains", "Lush"}

func (k Kind) String() string {
	if k < Ocean || k > Lush {
		return "?"
	}
	return kindNames[k]
}

// MaxInfraLevel is the ceiling spec §3 places on infra_level.
const MaxInfraLevel = 5

// NoCity marks a tile with no hosted city.
const NoCity = -1

// Tile is the discriminated union of the seven terrain kinds, flattened
// into one struct: fields not meaningful for a given Kind stay at their
// zero value (e.g. SoilMoisture on a Mountain, Depth on anything but
// Ocean).
type Tile struct {
	Kind       Kind
	Location   coords.Location
	Climate    climate.Climate
	Atmosphere climate.Atmosphere
	Geology    geology.State
	Worked     bool
	Casted     map[string]bool

	// Land-only. HP and InfraLevel are zero on Ocean; CityIndex is NoCity.
	HP         float64
	InfraLevel int
	CityIndex  int // NoCity if unhosted

	Elevation float64
	Snowpack  float64

	// Plains/Lush only.
	SoilMoisture float64

	// Ocean only.
	Depth       float64
	SurfaceTemp float64
}

// New constructs a Tile of the given kind at loc, with land tiles starting
// at full HP and no city, no infrastructure.
func New(kind Kind, loc coords.Location, c climate.Climate, geo geology.State) *Tile {
	t := &Tile{
		Kind:     kind,
		Location: loc,
		Climate:  c,
		Geology:  geo,
		Casted:   make(map[string]bool),
	}
	t.Atmosphere = climate.NewAtmosphere()
	t.CityIndex = NoCity
	if kind != Ocean {
		t.HP = 1.0
	}
	return t
}

// IsLand reports whether this tile is anything but Ocean.
func (t *Tile) IsLand() bool { return t.Kind != Ocean }

// IsFoodTile reports whether this is a Plains or Lush tile (spec
// glossary: "Food tile").
func (t *Tile) IsFoodTile() bool { return t.Kind == Plains || t.Kind == Lush }

// HostsCity reports whether a city currently occupies this tile.
func (t *Tile) HostsCity() bool { return t.CityIndex != NoCity }

// BaseYield returns the tile's unmodified per-kind yield (spec §3's
// per-variant table).
func (t *Tile) BaseYield() Yield {
	switch t.Kind {
	case Ocean:
		return FoodYield(3)
	case Mountain:
		return ProdYield(2)
	case Desert:
		return ProdYield(0.5)
	case Tundra:
		return ProdYield(0.5)
	case Hills:
		return ProdYield(1)
	case Plains:
		return FoodYield(1)
	case Lush:
		return FoodYield(2)
	default:
		baalerr.Raise("unknown tile kind %v", t.Kind)
		return Yield{}
	}
}

// SetCity marks this tile as hosting the city at cityIndex. Spec §3
// invariant: a tile with a city has infra_level == 0.
func (t *Tile) SetCity(cityIndex int) {
	if !t.IsLand() {
		baalerr.Raise("cannot place a city on an Ocean tile")
	}
	t.CityIndex = cityIndex
	t.InfraLevel = 0
}

// ClearCity removes the hosted-city marker, e.g. after the city is
// destroyed.
func (t *Tile) ClearCity() { t.CityIndex = NoCity }

// CanBuildInfra reports whether this tile is a candidate for the city
// AI's infrastructure-upgrade build action: land, unhosted, and below
// the infra cap.
func (t *Tile) CanBuildInfra() bool {
	return t.IsLand() && !t.HostsCity() && t.InfraLevel < MaxInfraLevel
}

// IncrementInfra raises infra_level by one, raising a user error if
// already at the cap.
func (t *Tile) IncrementInfra() error {
	if t.InfraLevel >= MaxInfraLevel {
		return baalerr.NewUser("INFRA_MAXED", "infrastructure is already at its maximum level")
	}
	if t.HostsCity() {
		baalerr.Raise("a tile hosting a city must have infra_level == 0")
	}
	t.InfraLevel++
	return nil
}

// ReduceInfra lowers infra_level by min(n, InfraLevel), returning the
// amount actually destroyed.
func (t *Tile) ReduceInfra(n int) int {
	destroyed := n
	if destroyed > t.InfraLevel {
		destroyed = t.InfraLevel
	}
	t.InfraLevel -= destroyed
	return destroyed
}

// DamageHP scales HP down by (1 - pct/100), clamped to [0,1].
func (t *Tile) DamageHP(pct float64) {
	if pct < 0 {
		pct = 0
	}
	t.HP *= 1 - pct/100
	if t.HP < 0 {
		t.HP = 0
	}
}

// HasCast reports whether spellName has already been applied to this
// tile this turn, without mutating anything (the non-mutating half of
// the verify/apply split: callers verify with HasCast before mutating
// world state, then record the cast with MarkCast).
func (t *Tile) HasCast(spellName string) bool { return t.Casted[spellName] }

// MarkCast records that spellName was applied to this tile this turn,
// raising a user error on the anti-stacking rule (spec §4.7, §7.1).
func (t *Tile) MarkCast(spellName string) error {
	if t.Casted[spellName] {
		return baalerr.NewUser("ALREADY_CAST", "\""+spellName+"\" was already cast on this tile this turn")
	}
	t.Casted[spellName] = true
	return nil
}

// snowfallFraction implements spec §4.4's snowfall_fraction(T) piecewise
// function.
func snowfallFraction(tempF float64) float64 {
	switch {
	case tempF < 30:
		return 1
	case tempF < 60:
		return (60 - tempF) / 30
	default:
		return 0
	}
}

// meltFraction implements spec §4.4's melt_fraction(T) piecewise function.
func meltFraction(tempF float64) float64 {
	switch {
	case tempF < 15:
		return 0
	case tempF < 75:
		return (tempF - 15) / 60
	default:
		return 1
	}
}

// avgOf averages a Climate 4-array (used for the FoodTile moisture
// calculation's avg_precip/avg_temp terms).
func avgOf(arr [4]float64) float64 {
	return (arr[0] + arr[1] + arr[2] + arr[3]) / 4
}

// MoistureMultiplier implements spec §4.4's moisture->yield-multiplier
// piecewise table.
func MoistureMultiplier(m float64) float64 {
	switch {
	case m < 1.5:
		return m
	case m < 2.75:
		return 1.5 - (m - 1.5)
	default:
		return 0.25
	}
}

// CyclePostAtmosphere performs the land-tile per-turn update described in
// spec §4.4 (HP regen, snowpack, and for food tiles soil moisture), or the
// ocean-tile update in spec §4.5. Call this after Atmosphere.Cycle has
// already run for this tile this turn.
func (t *Tile) CyclePostAtmosphere(s season.Season) {
	if t.Kind == Ocean {
		t.SurfaceTemp = (t.SurfaceTemp + t.Atmosphere.Temperature) / 2
		return
	}

	t.HP += 0.10
	if t.HP > 1.0 {
		t.HP = 1.0
	}

	temp := t.Atmosphere.Temperature
	precip := t.Atmosphere.Precip
	t.Snowpack = (t.Snowpack + precip*12*snowfallFraction(temp)) * (1 - meltFraction(temp))

	if t.IsFoodTile() {
		avgPrecip := avgOf(t.Climate.Precip)
		avgTemp := avgOf(t.Climate.Temperature)
		precipEffect := 1.0
		if avgPrecip != 0 {
			precipEffect = precip / avgPrecip
		}
		tempEffect := 1 + 0.01*(avgTemp-temp)
		recent := precipEffect * tempEffect
		t.SoilMoisture = (2*recent + t.SoilMoisture) / 3
		if t.SoilMoisture < 0 {
			t.SoilMoisture = 0
		}
		if t.SoilMoisture >= 100 {
			baalerr.Raise("soil moisture %v out of [0,100) range", t.SoilMoisture)
		}
	}
}

// EndTurn resets the per-turn worked flag and casted-spell set (spec §3).
func (t *Tile) EndTurn() {
	t.Worked = false
	t.Casted = make(map[string]bool)
}

// EffectiveYield computes the tile's final yield per spec §4.4:
// base_yield * (1 + infra_level) * hp * moisture_mult * civTechMultiplier.
// Ocean and non-food land tiles use a moisture multiplier of 1 (soil
// moisture only meaningfully gates food tiles).
func (t *Tile) EffectiveYield(civTechMultiplier float64) Yield {
	base := t.BaseYield()
	moistureMult := 1.0
	if t.IsFoodTile() {
		moistureMult = MoistureMultiplier(t.SoilMoisture)
	}
	infraFactor := 1.0
	hp := 1.0
	if t.IsLand() {
		infraFactor = 1 + float64(t.InfraLevel)
		hp = t.HP
	}
	y := base.Scale(infraFactor * hp * moistureMult * civTechMultiplier)
	checkExclusive(y)
	return y
}
