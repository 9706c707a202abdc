package engine

import (
	"testing"

	"baalrealm/internal/coords"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_CanonicalAndAliasAgree(t *testing.T) {
	canonical, err := ParseCommand("end")
	require.NoError(t, err)
	alias, err := ParseCommand("n")
	require.NoError(t, err)
	assert.Equal(t, canonical, alias)
}

func TestParseCommand_EndTurnDefaultsToOne(t *testing.T) {
	cmd, err := ParseCommand("end")
	require.NoError(t, err)
	assert.Equal(t, EndTurn, cmd.Kind)
	assert.Equal(t, 1, cmd.NumTurns)
}

func TestParseCommand_EndTurnWithCount(t *testing.T) {
	cmd, err := ParseCommand("end 5")
	require.NoError(t, err)
	assert.Equal(t, 5, cmd.NumTurns)
}

func TestParseCommand_EndTurnRejectsOutOfRange(t *testing.T) {
	_, err := ParseCommand("end 101")
	assert.Error(t, err)
}

func TestParseCommand_CastParsesAllThreeArguments(t *testing.T) {
	cmd, err := ParseCommand("cast hot 2 1,3")
	require.NoError(t, err)
	assert.Equal(t, Cast, cmd.Kind)
	assert.Equal(t, "hot", cmd.SpellName)
	assert.Equal(t, 2, cmd.SpellLevel)
	assert.Equal(t, coords.Location{Row: 1, Col: 3}, cmd.Location)
}

func TestParseCommand_CastAliasSpell(t *testing.T) {
	cmd, err := ParseCommand("spell hot 1 0,0")
	require.NoError(t, err)
	assert.Equal(t, Cast, cmd.Kind)
}

func TestParseCommand_CastWrongArgCount(t *testing.T) {
	_, err := ParseCommand("cast hot 1")
	assert.Error(t, err)
}

func TestParseCommand_CastBadLocation(t *testing.T) {
	_, err := ParseCommand("cast hot 1 notalocation")
	assert.Error(t, err)
}

func TestParseCommand_LearnRequiresOneArgument(t *testing.T) {
	_, err := ParseCommand("learn")
	assert.Error(t, err)

	cmd, err := ParseCommand("learn hot")
	require.NoError(t, err)
	assert.Equal(t, "hot", cmd.LearnSpellName)
}

func TestParseCommand_QuitRejectsArguments(t *testing.T) {
	_, err := ParseCommand("quit now")
	assert.Error(t, err)

	cmd, err := ParseCommand("exit")
	require.NoError(t, err)
	assert.Equal(t, Quit, cmd.Kind)
}

func TestParseCommand_HackOptionalExpOverride(t *testing.T) {
	cmd, err := ParseCommand("hack")
	require.NoError(t, err)
	assert.Nil(t, cmd.HackExp)

	cmd, err = ParseCommand("hack 500")
	require.NoError(t, err)
	require.NotNil(t, cmd.HackExp)
	assert.Equal(t, 500, *cmd.HackExp)
}

func TestParseCommand_UnknownCommandErrors(t *testing.T) {
	_, err := ParseCommand("frobnicate")
	assert.Error(t, err)
}

func TestParseCommand_EmptyLineErrors(t *testing.T) {
	_, err := ParseCommand("   ")
	assert.Error(t, err)
}

func TestParseCommand_HelpWithAndWithoutTopic(t *testing.T) {
	cmd, err := ParseCommand("help")
	require.NoError(t, err)
	assert.Empty(t, cmd.HelpTopic)

	cmd, err = ParseCommand("h cast")
	require.NoError(t, err)
	assert.Equal(t, "cast", cmd.HelpTopic)
}
