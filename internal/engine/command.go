// Package engine drives the turn loop and dispatches player commands
// against a caster, a catalogue, and a world. Grounded on
// original_source/code/game/{engine.py,command.py,player.py}, adapted
// from Python's Command class hierarchy plus runtime CommandFactory
// registration to a closed Go command kind, and on
// internal/game/processor/command_parser.go's alias-table text parser.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"baalrealm/internal/baalerr"
	"baalrealm/internal/coords"
)

// Kind is the closed set of commands a player can issue.
type Kind int

const (
	Help Kind = iota
	EndTurn
	Quit
	Save
	Cast
	Learn
	Draw
	Hack
)

var kindNames = [...]string{"help", "end", "quit", "save", "cast", "learn", "draw", "hack"}

func (k Kind) String() string {
	if k < Help || k > Hack {
		return "?"
	}
	return kindNames[k]
}

// maxSkipTurns bounds the "end" command's optional turn-skip count
// (command.py's _EndTurnCommand.__MAX_SKIP_TURNS).
const maxSkipTurns = 100

// Command is the parsed form of one line of player input, a tagged
// union over Kind with only the fields relevant to that kind set.
type Command struct {
	Kind Kind

	// EndTurn
	NumTurns int

	// Cast
	SpellName  string
	SpellLevel int
	Location   coords.Location

	// Learn
	LearnSpellName string

	// Draw
	DrawMode string

	// Hack; nil means "give enough exp to reach the next level"
	HackExp *int

	// Help
	HelpTopic string
}

// aliases maps every canonical command name to the extra words a
// player may type instead (command.py's per-command _ALIASES tuples).
var aliases = map[string][]string{
	"help":  {"h"},
	"end":   {"n"},
	"quit":  {"q", "exit"},
	"save":  {"s"},
	"cast":  {"c", "spell"},
	"learn": {"l"},
	"draw":  {"d", "show"},
	"hack":  {},
}

var nameToKind = map[string]Kind{
	"help": Help, "end": EndTurn, "quit": Quit, "save": Save,
	"cast": Cast, "learn": Learn, "draw": Draw, "hack": Hack,
}

// resolveAlias returns the canonical command name for word, or "" if
// word matches no command or alias.
func resolveAlias(word string) string {
	if _, ok := nameToKind[word]; ok {
		return word
	}
	for canonical, alts := range aliases {
		for _, a := range alts {
			if a == word {
				return canonical
			}
		}
	}
	return ""
}

// ParseCommand parses one line of player input into a Command,
// returning a user error for unknown commands or malformed arguments
// (command.py's per-class __init__ argument validation).
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, baalerr.NewUser("EMPTY_COMMAND", "no command given")
	}

	canonical := resolveAlias(strings.ToLower(fields[0]))
	if canonical == "" {
		return Command{}, baalerr.ErrUnknownCommand
	}
	args := fields[1:]
	kind := nameToKind[canonical]

	switch kind {
	case Help:
		c := Command{Kind: Help}
		if len(args) > 0 {
			c.HelpTopic = args[0]
		}
		return c, nil

	case EndTurn:
		if len(args) > 1 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "end takes at most one argument")
		}
		numTurns := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, baalerr.WrapUser("BAD_ARGUMENT", fmt.Sprintf("%q is not a valid integer", args[0]), err)
			}
			if n <= 0 || n > maxSkipTurns {
				return Command{}, baalerr.NewUser("BAD_ARGUMENT", fmt.Sprintf("num-turns must be between 1 and %d", maxSkipTurns))
			}
			numTurns = n
		}
		return Command{Kind: EndTurn, NumTurns: numTurns}, nil

	case Quit:
		if len(args) != 0 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "quit takes no arguments")
		}
		return Command{Kind: Quit}, nil

	case Save:
		if len(args) > 1 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "save takes at most one argument")
		}
		return Command{Kind: Save}, nil

	case Cast:
		if len(args) != 3 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "cast takes three arguments")
		}
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, baalerr.WrapUser("BAD_ARGUMENT", fmt.Sprintf("%q is not a valid integer", args[1]), err)
		}
		loc, err := coords.ParseLocation(args[2])
		if err != nil {
			return Command{}, baalerr.WrapUser("BAD_ARGUMENT", fmt.Sprintf("%q is not a valid location", args[2]), err)
		}
		return Command{Kind: Cast, SpellName: args[0], SpellLevel: level, Location: loc}, nil

	case Learn:
		if len(args) != 1 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "learn takes one argument")
		}
		return Command{Kind: Learn, LearnSpellName: args[0]}, nil

	case Draw:
		if len(args) > 1 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "draw takes at most one argument")
		}
		c := Command{Kind: Draw}
		if len(args) == 1 {
			c.DrawMode = args[0]
		}
		return c, nil

	case Hack:
		if len(args) > 1 {
			return Command{}, baalerr.NewUser("BAD_ARGUMENT", "hack takes at most one argument")
		}
		c := Command{Kind: Hack}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, baalerr.WrapUser("BAD_ARGUMENT", fmt.Sprintf("%q is not a valid integer", args[0]), err)
			}
			c.HackExp = &n
		}
		return c, nil
	}

	return Command{}, baalerr.ErrUnknownCommand
}
