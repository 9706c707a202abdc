package spell

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/coords"
	"baalrealm/internal/talent"
)

// ctor builds one cast of a catalogue spell at level and loc.
type ctor func(level int, loc coords.Location) Spell

// entry pairs a spell's constructor with the static data (prereqs) the
// talent tree needs without constructing an instance.
type entry struct {
	build   ctor
	prereqs talent.Prereqs
}

// Catalogue is the name -> constructor/prereq registry every spell is
// looked up through, standing in for original_source's SpellFactory and
// doubling as the talent.Catalogue the talent package consults.
// Grounded on internal/game/processor/help_registry.go's name-keyed
// registration-at-construction-time pattern.
type Catalogue struct {
	entries map[string]entry
	order   []string
}

// NewCatalogue builds the full 22-spell catalogue (spec §13's prereq
// DAG and base costs).
func NewCatalogue() *Catalogue {
	c := &Catalogue{entries: make(map[string]entry)}

	c.register("hot", talent.Prereqs{MinCasterLevel: 1}, newHot)
	c.register("cold", talent.Prereqs{MinCasterLevel: 1}, newCold)
	c.register("infect", talent.Prereqs{MinCasterLevel: 1}, newInfect)
	c.register("wind", talent.Prereqs{MinCasterLevel: 1}, newWind)

	c.register("fire", talent.Prereqs{MinCasterLevel: 5, MustKnow: []talent.Spec{{Name: "hot", Level: 1}}}, newFire)
	c.register("tstorm", talent.Prereqs{MinCasterLevel: 5, MustKnow: []talent.Spec{{Name: "wind", Level: 1}}}, newTstorm)
	c.register("snow", talent.Prereqs{MinCasterLevel: 5, MustKnow: []talent.Spec{{Name: "cold", Level: 1}}}, newSnow)

	c.register("avalanche", talent.Prereqs{MinCasterLevel: 10, MustKnow: []talent.Spec{{Name: "snow", Level: 1}}}, newAvalanche)
	c.register("flood", talent.Prereqs{MinCasterLevel: 10, MustKnow: []talent.Spec{{Name: "tstorm", Level: 1}}}, newFlood)
	c.register("dry", talent.Prereqs{MinCasterLevel: 10, MustKnow: []talent.Spec{{Name: "fire", Level: 1}}}, newDry)
	c.register("blizzard", talent.Prereqs{MinCasterLevel: 10, MustKnow: []talent.Spec{{Name: "snow", Level: 1}}}, newBlizzard)
	c.register("tornado", talent.Prereqs{MinCasterLevel: 10, MustKnow: []talent.Spec{{Name: "tstorm", Level: 1}}}, newTornado)

	c.register("heatwave", talent.Prereqs{MinCasterLevel: 15, MustKnow: []talent.Spec{{Name: "dry", Level: 1}}}, newHeatwave)
	c.register("coldwave", talent.Prereqs{MinCasterLevel: 15, MustKnow: []talent.Spec{{Name: "blizzard", Level: 1}}}, newColdwave)
	c.register("drought", talent.Prereqs{MinCasterLevel: 15, MustKnow: []talent.Spec{{Name: "dry", Level: 1}}}, newDrought)
	c.register("monsoon", talent.Prereqs{MinCasterLevel: 15, MustKnow: []talent.Spec{{Name: "flood", Level: 1}}}, newMonsoon)

	c.register("disease", talent.Prereqs{MinCasterLevel: 20, MustKnow: []talent.Spec{{Name: "infect", Level: 1}}}, newDisease)
	c.register("quake", talent.Prereqs{MinCasterLevel: 20}, newQuake)
	c.register("hurricane", talent.Prereqs{MinCasterLevel: 20, MustKnow: []talent.Spec{{Name: "monsoon", Level: 1}}}, newHurricane)

	c.register("plague", talent.Prereqs{MinCasterLevel: 25, MustKnow: []talent.Spec{{Name: "disease", Level: 1}}}, newPlague)
	c.register("volcano", talent.Prereqs{MinCasterLevel: 25, MustKnow: []talent.Spec{{Name: "quake", Level: 1}}}, newVolcano)

	c.register("asteroid", talent.Prereqs{MinCasterLevel: 30, MustKnow: []talent.Spec{{Name: "volcano", Level: 1}}}, newAsteroid)

	return c
}

func (c *Catalogue) register(name string, prereqs talent.Prereqs, build ctor) {
	c.entries[name] = entry{build: build, prereqs: prereqs}
	c.order = append(c.order, name)
}

// catalogueBinder is implemented by spells (tstorm) that trigger
// chain-reaction casts of other catalogue entries and so need a
// reference back to the catalogue that built them.
type catalogueBinder interface {
	bindCatalogue(*Catalogue)
}

// Create builds one cast of name at level and loc.
func (c *Catalogue) Create(name string, level int, loc coords.Location) (Spell, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, baalerr.ErrUnknownSpell
	}
	s := e.build(level, loc)
	if binder, ok := s.(catalogueBinder); ok {
		binder.bindCatalogue(c)
	}
	return s, nil
}

// Names lists every catalogue spell name, satisfying talent.Catalogue.
func (c *Catalogue) Names() []string { return append([]string(nil), c.order...) }

// PrereqsFor returns the prereqs for name (identical at every level:
// the original DAG gates only the first level of a spell, not its
// per-level investment), satisfying talent.Catalogue.
func (c *Catalogue) PrereqsFor(name string, level int) (talent.Prereqs, bool) {
	if level < 1 || level > talent.MaxSpellLevel {
		return talent.Prereqs{}, false
	}
	e, ok := c.entries[name]
	if !ok {
		return talent.Prereqs{}, false
	}
	return e.prereqs, true
}
