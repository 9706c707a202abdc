package talent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogue mirrors just enough of the production spell catalogue
// to exercise the prereq DAG: hot/cold are tier-1 (no prereqs), fire
// needs hot-1 at caster level 5, quake is high tier with no spell
// prereq but a steep level floor.
type fakeCatalogue struct{}

func (fakeCatalogue) Names() []string { return []string{"hot", "cold", "fire", "quake"} }

func (fakeCatalogue) PrereqsFor(name string, level int) (Prereqs, bool) {
	if level < 1 || level > MaxSpellLevel {
		return Prereqs{}, false
	}
	switch name {
	case "hot", "cold":
		return Prereqs{MinCasterLevel: 1}, true
	case "fire":
		return Prereqs{MinCasterLevel: 5, MustKnow: []Spec{{Name: "hot", Level: 1}}}, true
	case "quake":
		return Prereqs{MinCasterLevel: 20}, true
	default:
		return Prereqs{}, false
	}
}

func TestAdd_RejectsUnknownSpell(t *testing.T) {
	tr := New(fakeCatalogue{})
	err := tr.Add(10, "lol")
	require.Error(t, err)
}

func TestAdd_RejectsMissingSpellPrereq(t *testing.T) {
	tr := New(fakeCatalogue{})
	err := tr.Add(10, "fire")
	require.Error(t, err, "fire requires hot-1 first")
}

func TestAdd_RejectsLevelTooLow(t *testing.T) {
	tr := New(fakeCatalogue{})
	err := tr.Add(10, "quake")
	require.Error(t, err, "quake needs caster level 20")
}

func TestAdd_RejectsWhenOutOfSpellPoints(t *testing.T) {
	tr := New(fakeCatalogue{})
	// caster level 1 allows learning exactly one spell point.
	require.NoError(t, tr.Add(1, "hot"))
	err := tr.Add(1, "cold")
	require.Error(t, err, "must level up before learning a second spell")
}

func TestAdd_SequentialLevelsThenChain(t *testing.T) {
	tr := New(fakeCatalogue{})
	casterLevel := 10
	for i := 0; i < MaxSpellLevel; i++ {
		require.NoError(t, tr.Add(casterLevel, "hot"))
		casterLevel++ // one spell point per level
	}
	assert.Equal(t, MaxSpellLevel, tr.LevelOf("hot"))

	err := tr.Add(casterLevel, "hot")
	require.Error(t, err, "hot is already maxed")

	require.NoError(t, tr.Add(casterLevel, "fire"))
	assert.True(t, tr.Knows(Spec{Name: "fire", Level: 1}))
}

func TestKnows_RespectsLevelOrdering(t *testing.T) {
	tr := New(fakeCatalogue{})
	require.NoError(t, tr.Add(5, "hot"))
	assert.True(t, tr.Knows(Spec{Name: "hot", Level: 1}))
	assert.False(t, tr.Knows(Spec{Name: "hot", Level: 2}))
}

func TestAll_ListsEveryLearnedLevelSorted(t *testing.T) {
	tr := New(fakeCatalogue{})
	require.NoError(t, tr.Add(20, "hot"))
	require.NoError(t, tr.Add(21, "hot"))
	require.NoError(t, tr.Add(22, "cold"))

	all := tr.All()
	assert.Equal(t, []Spec{
		{Name: "cold", Level: 1},
		{Name: "hot", Level: 1},
		{Name: "hot", Level: 2},
	}, all)
}

func TestLearnable_ExcludesGatedSpells(t *testing.T) {
	tr := New(fakeCatalogue{})
	learnable := tr.Learnable(10)

	names := map[string]bool{}
	for _, s := range learnable {
		names[s.Name] = true
	}
	assert.True(t, names["hot"])
	assert.True(t, names["cold"])
	assert.False(t, names["fire"], "fire is gated on knowing hot-1")
	assert.False(t, names["quake"], "quake needs caster level 20")
}
