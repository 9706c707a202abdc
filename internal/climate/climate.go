// Package climate implements the per-season weather baselines and the
// per-turn Atmosphere derived from them plus anomalies (spec §3, §4.2).
// Grounded on internal/worldgen/weather/{climate.go,pressure.go,wind.go,
// evaporation.go,precipitation.go}.
package climate

import (
	"baalrealm/internal/coords"
	"baalrealm/internal/season"
)

// Wind is an immutable speed/direction pair. Adding a scalar yields a new
// Wind with direction unchanged (spec §3).
type Wind struct {
	SpeedMPH  float32
	Direction coords.Direction
}

// Plus returns a new Wind with delta added to the speed, direction held.
func (w Wind) Plus(delta float32) Wind {
	return Wind{SpeedMPH: w.SpeedMPH + delta, Direction: w.Direction}
}

// Climate carries the four-season baselines for one tile: temperature
// (°F), precipitation (inches), and wind, each a 4-entry array indexed by
// season.Season.Index().
type Climate struct {
	Temperature [4]float64
	Precip      [4]float64
	Wind        [4]Wind
}

// TemperatureFor returns the baseline temperature for the given season.
func (c Climate) TemperatureFor(s season.Season) float64 { return c.Temperature[s.Index()] }

// PrecipFor returns the baseline precipitation for the given season.
func (c Climate) PrecipFor(s season.Season) float64 { return c.Precip[s.Index()] }

// WindFor returns the baseline wind for the given season.
func (c Climate) WindFor(s season.Season) Wind { return c.Wind[s.Index()] }

// AnomalyEffect is implemented by weather-deviation objects (package
// anomaly) that modify a tile's atmosphere for one turn. Kept as an
// interface here, rather than importing package anomaly directly, so
// climate has no dependency on the anomaly package's concrete type.
type AnomalyEffect interface {
	PrecipEffect(loc coords.Location) float64
	TempEffect(loc coords.Location) float64
	PressureEffect(loc coords.Location) float64
}

// Atmosphere is a tile's mutable per-turn weather state.
type Atmosphere struct {
	Temperature float64
	Dewpoint    float64
	Precip      float64
	Pressure    float64
	Wind        Wind
}

// NewAtmosphere returns an Atmosphere defaulted to standard pressure, as
// spec §3 requires before the first Cycle.
func NewAtmosphere() Atmosphere {
	return Atmosphere{Pressure: 1000}
}

// Cycle recomputes the atmosphere from climate baselines and this turn's
// anomalies (spec §4.2). Any spell-applied overrides to Temperature or
// Wind from the prior turn are replaced here, since those overrides are
// only meant to persist until the next Cycle.
func (a *Atmosphere) Cycle(loc coords.Location, c Climate, s season.Season, anomalies []AnomalyEffect) {
	precipModifier := 1.0
	tempDelta := 0.0
	pressureDelta := 0.0
	for _, an := range anomalies {
		precipModifier *= an.PrecipEffect(loc)
		tempDelta += an.TempEffect(loc)
		pressureDelta += an.PressureEffect(loc)
	}

	a.Temperature = c.TemperatureFor(s) + tempDelta
	a.Pressure = 1000 + pressureDelta
	a.Precip = c.PrecipFor(s) * precipModifier
	a.Dewpoint = a.Temperature - 20
	a.Wind = c.WindFor(s)
}

// OverrideTemperature lets a spell set temperature directly; the override
// persists only until the next Cycle.
func (a *Atmosphere) OverrideTemperature(t float64) { a.Temperature = t }

// OverrideWind lets a spell set wind directly; the override persists only
// until the next Cycle.
func (a *Atmosphere) OverrideWind(w Wind) { a.Wind = w }
