package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"baalrealm/internal/baalerr"
	"baalrealm/internal/baallog"
	"baalrealm/internal/caster"
	"baalrealm/internal/civilization"
	"baalrealm/internal/grid"
	"baalrealm/internal/spell"
	"baalrealm/internal/talent"
)

func talentSpec(name string, level int) talent.Spec { return talent.Spec{Name: name, Level: level} }

// Game mediates between the world, the civilization aggregate, the
// caster, and the spell catalogue, and drives the turn loop and
// command dispatch. Grounded on engine.py's Engine: a single object
// that wires the other pieces together and owns __play_impl's loop,
// adapted from Python's mediator singleton to a plain Go struct the
// caller constructs and owns.
type Game struct {
	World     *grid.World
	Civ       *civilization.Civilization
	Caster    *caster.Caster
	Catalogue *spell.Catalogue

	Winner string // "caster" or "civilization" once the game has ended
	quit   bool
}

// NewGame wires together an already-built world, civilization,
// caster, and catalogue into a playable Game.
func NewGame(world *grid.World, civ *civilization.Civilization, c *caster.Caster, cat *spell.Catalogue) *Game {
	return &Game{World: world, Civ: civ, Caster: c, Catalogue: cat}
}

// Over reports whether the game has ended (a win condition was met, or
// the player issued quit).
func (g *Game) Over() bool { return g.quit }

// CycleTurn advances the simulation by exactly one turn, in the order
// engine.py's __play_impl enforces: caster regen, every city's AI
// (against a roster snapshot taken before any settler placements this
// turn), the civilization rollup, then the world's own tile/season
// cycle. Finally checks both win conditions.
func (g *Game) CycleTurn() {
	t := g.World.Time()
	baallog.TurnStart(t.Year, t.Season.String())

	g.Caster.CycleTurn()

	roster := g.World.Cities()
	for _, c := range roster {
		g.World.CycleCity(c)
	}

	g.Civ.CycleTurn(g.World.CityPopulations())
	g.World.CycleTurn()

	g.checkWin()

	t = g.World.Time()
	baallog.TurnEnd(t.Year, t.Season.String())
}

func (g *Game) checkWin() {
	switch {
	case g.Civ.IsDefeated():
		g.Winner = "caster"
		g.quit = true
		baallog.GameOver(g.Winner)
	case g.Civ.HasWon():
		g.Winner = "civilization"
		g.quit = true
		baallog.GameOver(g.Winner)
	}
}

// ApplyCommand dispatches one parsed command, returning a
// human-readable report of what happened. Grounded on command.py's
// per-command apply() methods and player.py's atomic cast sequence
// (verify_cast, spell.verify_apply, then player.cast/spell.apply/
// player.gain_exp as one block that must never itself fail).
func (g *Game) ApplyCommand(cmd Command) (string, error) {
	switch cmd.Kind {
	case Help:
		return g.applyHelp(cmd), nil

	case EndTurn:
		for i := 0; i < cmd.NumTurns && !g.quit; i++ {
			g.CycleTurn()
		}
		return fmt.Sprintf("turn ended (%d cycled)", cmd.NumTurns), nil

	case Quit:
		g.quit = true
		return "goodbye", nil

	case Save:
		return "", baalerr.NewUser("NOT_IMPLEMENTED", "save is not implemented")

	case Cast:
		return g.applyCast(cmd)

	case Learn:
		if err := g.Caster.LearnSpell(cmd.LearnSpellName); err != nil {
			return "", err
		}
		return fmt.Sprintf("learned %s (level %d)", cmd.LearnSpellName, g.Caster.Talents.LevelOf(cmd.LearnSpellName)), nil

	case Draw:
		return "(drawing is not implemented by this engine)", nil

	case Hack:
		exp := g.Caster.NextLevelCost - g.Caster.Exp
		if cmd.HackExp != nil {
			exp = float64(*cmd.HackExp)
		}
		g.Caster.GrantExp(exp)
		return fmt.Sprintf("granted %.0f exp", exp), nil
	}

	return "", baalerr.ErrUnknownCommand
}

func (g *Game) applyHelp(cmd Command) string {
	if cmd.HelpTopic == "" {
		names := make([]string, 0, len(nameToKind))
		for name := range nameToKind {
			names = append(names, name)
		}
		return "commands: " + strings.Join(names, ", ")
	}
	if _, ok := nameToKind[resolveAlias(cmd.HelpTopic)]; !ok {
		return "no help available for " + cmd.HelpTopic
	}
	return "help for " + cmd.HelpTopic
}

// applyCast runs the cast command's atomic flow: verify the caster can
// afford and knows the spell, verify the spell's own preconditions
// against the world, then spend mana, apply the spell, and grant exp
// as a single block that must not fail partway (player.py's
// __cast_impl/spell_factory.create_spell/__verify_cast_impl sequence).
func (g *Game) applyCast(cmd Command) (string, error) {
	s, err := g.Catalogue.Create(cmd.SpellName, cmd.SpellLevel, cmd.Location)
	if err != nil {
		return "", err
	}

	cost := s.Cost()
	if cost > g.Caster.Mana {
		return "", baalerr.ErrInsufficientMana
	}
	if !g.Caster.Talents.Knows(talentSpec(cmd.SpellName, cmd.SpellLevel)) {
		return "", baalerr.ErrTalentViolation
	}
	if err := s.VerifyApply(g.World); err != nil {
		return "", err
	}

	if err := g.Caster.SpendMana(cost); err != nil {
		baalerr.Raise("cast affordability was verified but SpendMana failed: %v", err)
	}
	exp := s.Apply(g.World)
	g.Caster.GrantExp(exp)

	baallog.SpellCast(cmd.SpellName, cmd.SpellLevel, cmd.Location.Row, cmd.Location.Col, exp)
	return fmt.Sprintf("cast %s (level %d) at %s, gained %.1f exp", cmd.SpellName, cmd.SpellLevel, cmd.Location, exp), nil
}

// Run drives the interactive loop: read one line per iteration, apply
// it, print the result, until the game ends or input runs out. This is
// a minimal stand-in for engine.py's __play_impl's draw/interact cycle;
// rendering itself is out of scope.
func (g *Game) Run(input io.Reader, output io.Writer) {
	scanner := bufio.NewScanner(input)
	for !g.quit && scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(output, "error:", err)
			continue
		}
		report, err := g.ApplyCommand(cmd)
		if err != nil {
			fmt.Fprintln(output, "error:", err)
			continue
		}
		fmt.Fprintln(output, report)
	}
}
