// Package caster implements the player-controlled adversary: mana pool,
// level/exp progression, and (via package talent) the talent tree.
// Grounded on internal/player/regeneration.go's regen-capped-at-max
// pattern, adapted from stamina to mana, and internal/player/stamina_test.go's
// test shape.
package caster

import (
	"baalrealm/internal/baalerr"
	"baalrealm/internal/talent"

	"github.com/google/uuid"
)

// baseMaxMana and baseNextLevelCost seed a freshly created Caster; both
// scale by 1.4 per level thereafter (spec §3).
const (
	baseMaxMana        = 100.0
	baseNextLevelCost  = 100.0
	manaRegenFraction  = 0.05
	levelUpGrowthFactor = 1.4
)

// Caster is the adversarial player: mana pool, level/exp, and talents.
type Caster struct {
	ID            uuid.UUID
	Name          string
	Mana          float64
	MaxMana       float64
	Exp           float64
	Level         int
	NextLevelCost float64
	Talents       talent.Talents
}

// New constructs a level-1 Caster with a full mana pool and no talents
// invested (spec §8 scenario 1: "caster level 1, mana 100, exp 0").
// catalogue resolves spell prereqs for talent learning; package spell's
// catalogue satisfies talent.Catalogue without either package importing
// the other.
func New(name string, catalogue talent.Catalogue) *Caster {
	return &Caster{
		ID:            uuid.New(),
		Name:          name,
		Mana:          baseMaxMana,
		MaxMana:       baseMaxMana,
		Level:         1,
		NextLevelCost: baseNextLevelCost,
		Talents:       talent.New(catalogue),
	}
}

// LearnSpell invests the caster's next talent point in spellName,
// raising a user error if the prereq DAG (spec §7.3) isn't satisfied.
func (c *Caster) LearnSpell(spellName string) error {
	return c.Talents.Add(c.Level, spellName)
}

// LearnableSpells lists every (name, level) the caster could learn
// right now.
func (c *Caster) LearnableSpells() []talent.Spec {
	return c.Talents.Learnable(c.Level)
}

// ManaRegen is the amount of mana regenerated each turn: max_mana * 0.05.
func (c *Caster) ManaRegen() float64 { return c.MaxMana * manaRegenFraction }

// CycleTurn regenerates mana, capped at MaxMana (spec §4.1 step 3).
func (c *Caster) CycleTurn() {
	c.Mana += c.ManaRegen()
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}

// SpendMana deducts cost from the mana pool, raising a user error if the
// caster cannot afford it. Callers must check affordability before any
// other mutation (spec §7: "mutate player" is the first step of apply).
func (c *Caster) SpendMana(cost float64) error {
	if cost > c.Mana {
		return baalerr.ErrInsufficientMana
	}
	c.Mana -= cost
	return nil
}

// GrantExp adds exp, rolling the caster over one or more levels while the
// overflow persists (spec §3: "On exp overflow, level++, max_mana *= 1.4,
// next_level_cost *= 1.4, mana gains the per-level max increase").
func (c *Caster) GrantExp(exp float64) {
	if exp < 0 {
		// hack(-exp) refunds; never let exp go negative.
		c.Exp += exp
		if c.Exp < 0 {
			c.Exp = 0
		}
		return
	}
	c.Exp += exp
	for c.Exp >= c.NextLevelCost {
		c.Exp -= c.NextLevelCost
		c.levelUp()
	}
}

func (c *Caster) levelUp() {
	c.Level++
	oldMax := c.MaxMana
	c.MaxMana *= levelUpGrowthFactor
	c.NextLevelCost *= levelUpGrowthFactor
	c.Mana += c.MaxMana - oldMax
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}
