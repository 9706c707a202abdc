package caster

import (
	"testing"

	"baalrealm/internal/talent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogue struct{}

func (fakeCatalogue) Names() []string { return []string{"hot"} }

func (fakeCatalogue) PrereqsFor(name string, level int) (talent.Prereqs, bool) {
	if name != "hot" || level < 1 || level > talent.MaxSpellLevel {
		return talent.Prereqs{}, false
	}
	return talent.Prereqs{MinCasterLevel: 1}, true
}

func TestNew_StartingState(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 100.0, c.Mana)
	assert.Equal(t, 100.0, c.MaxMana)
	assert.Equal(t, 0.0, c.Exp)
}

func TestSpendMana_ErrorsWhenInsufficient(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	err := c.SpendMana(200)
	require.Error(t, err)
	assert.Equal(t, 100.0, c.Mana, "a failed spend leaves mana untouched")
}

func TestCycleTurn_RegensCappedAtMax(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	require.NoError(t, c.SpendMana(100))
	c.CycleTurn()
	assert.Equal(t, 5.0, c.Mana)

	for i := 0; i < 100; i++ {
		c.CycleTurn()
	}
	assert.Equal(t, c.MaxMana, c.Mana)
}

func TestGrantExp_RollsOverASingleLevel(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	c.GrantExp(150)
	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 50.0, c.Exp)
	assert.Equal(t, baseMaxMana*levelUpGrowthFactor, c.MaxMana)
	assert.Equal(t, baseNextLevelCost*levelUpGrowthFactor, c.NextLevelCost)
}

func TestGrantExp_RollsOverMultipleLevelsInOneGrant(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	c.GrantExp(100 + 140 + 1) // clears level 1 and level 2's cost
	assert.Equal(t, 3, c.Level)
}

func TestGrantExp_NegativeHackNeverGoesBelowZero(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	c.GrantExp(10)
	c.GrantExp(-100)
	assert.Equal(t, 0.0, c.Exp)
	assert.Equal(t, 1, c.Level, "a negative grant never triggers a level up")
}

func TestLearnSpell_DelegatesToTalents(t *testing.T) {
	c := New("Baal", fakeCatalogue{})
	require.NoError(t, c.LearnSpell("hot"))
	assert.True(t, c.Talents.Knows(talent.Spec{Name: "hot", Level: 1}))

	err := c.LearnSpell("nonexistent")
	require.Error(t, err)
}
