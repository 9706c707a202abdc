// Package talent implements a caster's talent tree: the set of spells
// learned, at what level, and the prereq graph that gates learning more.
// Grounded on original_source/code/game/talents.py's Talents class,
// adapted from Python's generator-based learnable() to a Go slice, and
// on internal/skills/progression.go's points-spent-ledger idiom for
// tracking a capped per-level investment.
package talent

import (
	"sort"

	"baalrealm/internal/baalerr"
)

// MaxSpellLevel is the ceiling on how many times a single spell can be
// learned (spec glossary: every spell tops out at level 5).
const MaxSpellLevel = 5

// Spec is a (spell name, level) pair, the unit Talents reasons about.
type Spec struct {
	Name  string
	Level int
}

// Prereqs describes what a caster needs before learning one level of a
// spell: a minimum caster level, and a set of other spells (at a given
// level) that must already be known.
type Prereqs struct {
	MinCasterLevel int
	MustKnow       []Spec
}

// Catalogue is the name->per-level-prereqs lookup a Talents tree
// consults. Package spell provides the production catalogue; tests can
// substitute a smaller fake.
type Catalogue interface {
	// PrereqsFor returns the prereqs for learning spellName at
	// spellLevel, or ok=false if no such spell exists.
	PrereqsFor(spellName string, spellLevel int) (Prereqs, bool)
	// Names lists every spell name in the catalogue, for Learnable's
	// enumeration.
	Names() []string
}

// Talents tracks the spells a caster has learned and enforces the
// prereq DAG on new learning (spec §3, §7.3).
type Talents struct {
	catalogue    Catalogue
	learned      map[string]int
	numLearned   int
}

// New constructs an empty talent tree backed by catalogue.
func New(catalogue Catalogue) Talents {
	return Talents{catalogue: catalogue, learned: make(map[string]int)}
}

// Knows reports whether spec is known: the caster has learned spec.Name
// to at least spec.Level.
func (t Talents) Knows(spec Spec) bool {
	lvl, ok := t.learned[spec.Name]
	return ok && spec.Level <= lvl
}

// LevelOf returns the highest level learned for name, or 0 if unknown.
func (t Talents) LevelOf(name string) int { return t.learned[name] }

// All iterates every (name, level) pair the caster currently knows, in
// name order (spec.py's __iter__, sorted for determinism).
func (t Talents) All() []Spec {
	names := make([]string, 0, len(t.learned))
	for name := range t.learned {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]Spec, 0, t.numLearned)
	for _, name := range names {
		for lvl := 1; lvl <= t.learned[name]; lvl++ {
			specs = append(specs, Spec{Name: name, Level: lvl})
		}
	}
	return specs
}

// Learnable enumerates every (name, level) the caster could learn right
// now: for each catalogue spell, the lowest not-yet-known level whose
// prereqs currently pass (talents.py's learnable(), one candidate level
// per spell since learning is strictly sequential per spell).
// casterLevel is the owning caster's current level.
func (t Talents) Learnable(casterLevel int) []Spec {
	var out []Spec
	for _, name := range t.catalogue.Names() {
		for lvl := 1; lvl <= MaxSpellLevel; lvl++ {
			if t.Knows(Spec{Name: name, Level: lvl}) {
				continue
			}
			if err := t.checkPrereqs(casterLevel, name, lvl); err == nil {
				out = append(out, Spec{Name: name, Level: lvl})
			}
			break
		}
	}
	return out
}

// Add learns the next level of spellName (1 if unknown, else
// LevelOf+1), returning a user error if prereqs aren't met. casterLevel
// is the owning caster's current level.
func (t *Talents) Add(casterLevel int, spellName string) error {
	nextLevel := t.learned[spellName] + 1

	if err := t.checkPrereqs(casterLevel, spellName, nextLevel); err != nil {
		return err
	}

	t.learned[spellName] = nextLevel
	t.numLearned++
	t.validateInvariants()
	return nil
}

func (t Talents) checkPrereqs(casterLevel int, spellName string, spellLevel int) error {
	if casterLevel <= t.numLearned {
		return baalerr.NewUser("NO_SPELL_POINTS", "you cannot learn any more spells until you level up")
	}
	if spellLevel > MaxSpellLevel {
		return baalerr.NewUser("SPELL_MAXED", "you've already hit the maximum level for that spell")
	}

	prereqs, ok := t.catalogue.PrereqsFor(spellName, spellLevel)
	if !ok {
		return baalerr.ErrUnknownSpell
	}

	if casterLevel < prereqs.MinCasterLevel {
		return baalerr.NewUser("LEVEL_TOO_LOW", "you must be higher level to learn this spell")
	}
	for _, need := range prereqs.MustKnow {
		if !t.Knows(need) {
			return baalerr.NewUser("MISSING_PREREQ", "missing required prereq spell")
		}
	}
	return nil
}

// validateInvariants checks that every learned level is in range and
// that num_learned equals the sum of learned levels (talents.py's
// __validate_invariants_impl).
func (t Talents) validateInvariants() {
	sum := 0
	for name, lvl := range t.learned {
		if lvl < 1 || lvl > MaxSpellLevel {
			baalerr.Raise("spell %q has out-of-range level %d", name, lvl)
		}
		sum += lvl
	}
	if sum != t.numLearned {
		baalerr.Raise("talent num-learned invariant failed: %d vs %d", t.numLearned, sum)
	}
}
