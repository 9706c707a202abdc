// Package spell implements the disaster catalogue a caster invests
// talent points in and casts against the world: cost curves, the
// verify/apply split, and the shared kill/destroy/spawn helpers every
// spell composes from.
//
// Grounded on original_source/code/game/spell.py's Spell base class,
// adapted from Python's class-hierarchy-with-classmethod-constants
// idiom to embedded structs and package-level constructor functions
// registered in a factory map, matching
// internal/combat/effects/manager.go's name-keyed effect registry.
package spell

import (
	"math"
	"math/rand"

	"baalrealm/internal/baalerr"
	"baalrealm/internal/city"
	"baalrealm/internal/coords"
	"baalrealm/internal/season"
	"baalrealm/internal/worldtile"
)

// World is the minimal view a spell needs of the game board: look up
// the tile at a location, find the city hosted there if any, remove an
// obliterated city, and read the civilization's tech level. Declared
// here rather than imported from package grid so spell has no
// dependency on grid; grid.World satisfies it.
type World interface {
	Tile(loc coords.Location) (*worldtile.Tile, bool)
	CityAt(loc coords.Location) (*city.City, bool)
	RemoveCity(c *city.City)
	TechLevel() float64
	Rand() *rand.Rand
	Report(spellName, message string)
	Season() season.Season
}

// Spell is one cast of one catalogue entry at a level and location.
type Spell interface {
	Name() string
	Level() int
	Location() coords.Location
	Cost() float64
	// VerifyApply checks whether this cast is legal against w, without
	// mutating anything. Returns a user error on failure.
	VerifyApply(w World) error
	// Apply mutates w to reflect this spell's effect and returns the
	// exp gained. Must only be called after VerifyApply succeeds;
	// should never itself return a user error.
	Apply(w World) float64
}

// costFunc computes a spell's mana cost at a level from its base cost.
// The default is the 30%-per-level compounding every spell uses unless
// stated otherwise; no catalogue entry currently overrides it.
func costFunc(baseCost float64, level int) float64 {
	return baseCost * math.Pow(1.3, float64(level-1))
}

// base is the common state and verify/apply scaffolding every spell
// embeds, mirroring Spell's non-abstract methods in the original.
type base struct {
	name     string
	level    int
	location coords.Location
	baseCost float64
}

func (b base) Name() string              { return b.name }
func (b base) Level() int                { return b.level }
func (b base) Location() coords.Location { return b.location }
func (b base) Cost() float64             { return costFunc(b.baseCost, b.level) }

// verifyNotMultiCast enforces the one-cast-per-tile-per-turn rule
// shared by every spell (spec §7.1).
func (b base) verifyNotMultiCast(w World) error {
	tile, ok := w.Tile(b.location)
	if !ok {
		return baalerr.ErrOffGrid
	}
	if tile.HasCast(b.name) {
		return baalerr.ErrAlreadyCast
	}
	return nil
}

// applyCommon registers this cast against its tile, the mutation every
// spell's Apply performs regardless of its specific effect.
func (b base) applyCommon(w World) {
	tile, ok := w.Tile(b.location)
	if !ok {
		return
	}
	_ = tile.MarkCast(b.name)
}

const (
	cityDestroyExpBonus = 1000
	chainReactionBonus  = 2
)

// kill applies a kill percentage to city (clamped to [0,100]), removing
// it from the world and awarding the destruction bonus if its
// population falls below the city-size floor. Mirrors Spell.__kill_impl.
func kill(w World, c *city.City, pctKilled float64) float64 {
	if pctKilled == 0 {
		return 0
	}
	removed, bonus := c.Kill(pctKilled)
	w.Report(c.Name, "population reduced")
	if removed {
		w.RemoveCity(c)
		return bonus
	}
	return 0
}

// destroyInfra reduces tile's infra level by up to maxDestroyed,
// converting the amount actually destroyed into exp at 2^n*200.
func destroyInfra(w World, tile *worldtile.Tile, maxDestroyed int) float64 {
	if maxDestroyed <= 0 {
		return 0
	}
	destroyed := tile.ReduceInfra(maxDestroyed)
	if destroyed == 0 {
		return 0
	}
	w.Report("", "destroyed infrastructure")
	return math.Pow(2, float64(destroyed)) * 200
}

// destroyDefense reduces c's defense by up to levels, converting the
// amount actually destroyed into exp at 2^n*400.
func destroyDefense(c *city.City, levels float64) float64 {
	if levels <= 0 {
		return 0
	}
	destroyed := c.DestroyDefense(levels)
	if destroyed == 0 {
		return 0
	}
	return math.Pow(2, destroyed) * 400
}

// damageTile scales tile HP down by pctDamaged (clamped to [0,100]).
func damageTile(tile *worldtile.Tile, pctDamaged float64) {
	if pctDamaged <= 0 {
		return
	}
	if pctDamaged > 100 {
		pctDamaged = 100
	}
	tile.DamageHP(pctDamaged)
}

// infraDamageCommon is the shared "convert a base destructiveness into
// infra damage, scaled down by a tech penalty divisor" pattern used by
// wind, fire, avalanche, flood, tornado, quake, volcano, and asteroid.
func infraDamageCommon(w World, tile *worldtile.Tile, baseAmount, techPenalty float64) float64 {
	if tile.InfraLevel > 0 && baseAmount > 0 {
		maxDestroyed := int(math.Round(baseAmount / techPenalty))
		return destroyInfra(w, tile, maxDestroyed)
	}
	return 0
}

// defenseDamageCommon is the defense-side counterpart of
// infraDamageCommon.
func defenseDamageCommon(c *city.City, baseAmount, techPenalty float64) float64 {
	if c.Defense > 0 && baseAmount > 0 {
		return destroyDefense(c, math.Round(baseAmount/techPenalty))
	}
	return 0
}

// spawn triggers a chain-reaction cast of another catalogue spell at
// loc, doubling whatever exp it earns. Failures (e.g. the spawned
// spell's own verify_apply rejects the tile) are swallowed, yielding
// zero exp, exactly as a player's own failed casts cost nothing but
// mana they already spent on the triggering spell.
func spawn(w World, cat *Catalogue, name string, level int, loc coords.Location) float64 {
	spawned, err := cat.Create(name, level, loc)
	if err != nil {
		return 0
	}
	if err := spawned.VerifyApply(w); err != nil {
		w.Report(name, "failed to spawn: "+err.Error())
		return 0
	}
	return chainReactionBonus * spawned.Apply(w)
}
