package grid

import (
	"math/rand"
	"sync"

	"baalrealm/internal/anomaly"
	"baalrealm/internal/baalerr"
	"baalrealm/internal/baallog"
	"baalrealm/internal/city"
	"baalrealm/internal/civilization"
	"baalrealm/internal/climate"
	"baalrealm/internal/coords"
	"baalrealm/internal/season"
	"baalrealm/internal/worldtile"
)

// World is the game board: a Grid of tiles plus the roster of cities
// hosted on it, the civilization aggregate that reads tech level and
// yield multiplier off it, and the season/year clock. It satisfies
// package spell's World interface directly, so the spell catalogue
// mutates it through no wider a surface than it needs.
//
// Grounded on internal/ecosystem/service.go's mutex-guarded Service:
// World exposes narrow, guarded accessors rather than the source's
// runtime access-token check (spec §9's "narrow module-private methods"
// redesign note).
type World struct {
	mu sync.RWMutex

	grid   *Grid
	cities []*city.City // arena; a removed slot is set to nil
	civ    *civilization.Civilization
	time   season.Time
	rng    *rand.Rand

	reports []Report
}

// Report is one user-visible message a spell emitted while applying
// (the renderer's feed; out of scope per spec §1, but the engine still
// needs somewhere to park these for a caller that wants them).
type Report struct {
	Subject string
	Message string
}

// NewWorld wraps grid into a playable World. civ is the civilization
// aggregate whose tech level and yield multiplier the tiles and spell
// catalogue read; its population is recomputed from this World's city
// roster once per turn by the caller (engine), not by World itself,
// matching spec §4.1's explicit ordering of per-turn steps.
func NewWorld(grid *Grid, civ *civilization.Civilization, rng *rand.Rand) *World {
	return &World{grid: grid, civ: civ, time: season.New(), rng: rng}
}

// Grid exposes the underlying tile container for read-only board
// queries (draw modes, city AI tile scans).
func (w *World) Grid() *Grid { return w.grid }

// Time returns the current season/year clock.
func (w *World) Time() season.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.time
}

// Tile implements spell.World: look up the tile at loc.
func (w *World) Tile(loc coords.Location) (*worldtile.Tile, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Tile(loc)
}

// CityAt implements spell.World: the city hosted at loc, if any.
func (w *World) CityAt(loc coords.Location) (*city.City, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cityAtLocked(loc)
}

func (w *World) cityAtLocked(loc coords.Location) (*city.City, bool) {
	tile, ok := w.grid.Tile(loc)
	if !ok || !tile.HostsCity() {
		return nil, false
	}
	c := w.cities[tile.CityIndex]
	if c == nil {
		return nil, false
	}
	return c, true
}

// RemoveCity implements spell.World: evict c from the roster and clear
// its hosting tile, per spec §4.6 ("world removes the city iff its
// population falls below MIN_CITY_SIZE").
func (w *World) RemoveCity(c *city.City) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeCityLocked(c)
}

func (w *World) removeCityLocked(c *city.City) {
	if tile, ok := w.grid.Tile(c.Location); ok {
		tile.ClearCity()
	}
	for i, cc := range w.cities {
		if cc == c {
			w.cities[i] = nil
			break
		}
	}
	baallog.CityRemoved(c.Name, c.Location.Row, c.Location.Col)
}

// TechLevel implements spell.World: the civilization's current tech
// level, as a float for the sqrt(tech_level) penalties spec §4.7 names.
func (w *World) TechLevel() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.techLevelLocked()
}

func (w *World) techLevelLocked() float64 { return float64(w.civ.TechLevel) }

// YieldMultiplier is the tech-adjusted yield bonus the city AI applies
// to worked tiles and specialist production (spec §4.4, §4.6).
func (w *World) YieldMultiplier() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.yieldMultiplierLocked()
}

func (w *World) yieldMultiplierLocked() float64 { return w.civ.YieldMultiplier() }

// Rand implements spell.World: the shared deterministic RNG (spec §5:
// "given a fixed seed ... must be reproducible").
func (w *World) Rand() *rand.Rand { return w.rng }

// Report implements spell.World: park a user-visible message from a
// spell's Apply for whatever renders game output.
func (w *World) Report(subject, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reports = append(w.reports, Report{Subject: subject, Message: message})
}

// Reports drains and returns every report accumulated since the last
// call.
func (w *World) Reports() []Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.reports
	w.reports = nil
	return out
}

// Season implements spell.World: the season commands observe this turn
// (spec §4.1's ordering guarantee: "spells ... observe ... the current
// season").
func (w *World) Season() season.Season {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.time.Season
}

// PlaceCity founds a new city named name at loc, raising a user error
// if loc is off-grid or its tile cannot host one (spec §3: "Created
// only via the world's place-city operation").
func (w *World) PlaceCity(name string, loc coords.Location) (*city.City, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.placeCityLocked(name, loc)
}

func (w *World) placeCityLocked(name string, loc coords.Location) (*city.City, error) {
	tile, ok := w.grid.Tile(loc)
	if !ok {
		return nil, baalerr.ErrOffGrid
	}
	if !tile.IsLand() || tile.HostsCity() {
		return nil, baalerr.NewUser("CANNOT_HOST_CITY", "this tile cannot host a city")
	}

	c := city.New(name, loc)
	idx := len(w.cities)
	w.cities = append(w.cities, c)
	tile.SetCity(idx)
	return c, nil
}

// Cities returns every live city on the roster, in roster (placement)
// order.
func (w *World) Cities() []*city.City {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*city.City, 0, len(w.cities))
	for _, c := range w.cities {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// CityPopulations is a thin convenience for civilization.CycleTurn's
// population resum, avoiding a second traversal allocating *city.City
// handles the caller would just discard.
func (w *World) CityPopulations() []float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]float64, 0, len(w.cities))
	for _, c := range w.cities {
		if c != nil {
			out = append(out, c.Population)
		}
	}
	return out
}

// tooCloseToAnyCity reports whether loc lies within distance of any
// live city, the settler-placement exclusion zone spec §4.6 names.
func (w *World) tooCloseToAnyCity(loc coords.Location, distance int) bool {
	for _, c := range w.cities {
		if c == nil {
			continue
		}
		if loc.ChebyshevDistance(c.Location) <= distance {
			return true
		}
	}
	return false
}

// CycleTurn advances the board by one turn (spec §4.1 step 6): generate
// fresh anomalies, cycle every tile's geology and atmosphere, run the
// land/ocean post-processing, clear each tile's per-turn flags, then
// advance the season/year clock.
func (w *World) CycleTurn() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, t := range w.grid.AllTiles() {
		t.Geology.Cycle()

		anomalies := anomaly.GenerateAll(w.rng, t.Location)
		effects := make([]climate.AnomalyEffect, len(anomalies))
		for i, a := range anomalies {
			effects[i] = a
		}
		t.Atmosphere.Cycle(t.Location, t.Climate, w.time.Season, effects)

		t.CyclePostAtmosphere(w.time.Season)
		t.EndTurn()
	}

	w.time = w.time.Next()
}
