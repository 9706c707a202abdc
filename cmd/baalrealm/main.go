// Command baalrealm is the text-presentation entry point: it loads
// configuration, builds the hardcoded starting world, and drives the
// interactive command loop against stdin/stdout. Grounded on
// cmd/world-service/main.go's composition-root shape (load config, wire
// dependencies in order, log each step), scaled down to a single-process
// CLI since this engine has no database or message bus to connect.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"baalrealm/internal/baalerr"
	"baalrealm/internal/baallog"
	"baalrealm/internal/caster"
	"baalrealm/internal/city"
	"baalrealm/internal/civilization"
	"baalrealm/internal/config"
	"baalrealm/internal/engine"
	"baalrealm/internal/grid"
	"baalrealm/internal/spell"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	baallog.Log = baallog.New(os.Stderr)

	defer func() {
		if r := recover(); r != nil {
			inv, ok := r.(*baalerr.Invariant)
			if !ok {
				panic(r)
			}
			baallog.Fatal(inv)
			os.Exit(1)
		}
	}()

	cfg := config.Load()
	baallog.Log.Info().Str("interface", cfg.InterfaceConfig).Str("world", cfg.WorldConfig).
		Str("player", cfg.PlayerConfig).Msg("starting baalrealm")

	catalogue := spell.NewCatalogue()
	civ := civilization.New()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	world, capital, err := buildWorld(cfg, &civ, rng)
	if err != nil {
		baallog.Log.Error().Err(err).Msg("could not build world")
		os.Exit(1)
	}
	baallog.Log.Info().Str("capital", capital.Name).Msg("world ready")

	player := caster.New(cfg.PlayerConfig, catalogue)
	game := engine.NewGame(world, &civ, player, catalogue)

	fmt.Fprintln(os.Stdout, "baalrealm: type 'help' for commands")
	game.Run(os.Stdin, os.Stdout)

	if game.Winner != "" {
		fmt.Fprintf(os.Stdout, "game over: %s wins\n", game.Winner)
	}
}

// buildWorld constructs the world named by cfg.WorldConfig. Only the
// hardcoded numbered worlds are implemented; a random or file-backed
// world is a boundary-adapter concern this text interface doesn't carry
// (spec Non-goals: no world generation algorithm, no save format).
func buildWorld(cfg config.Config, civ *civilization.Civilization, rng *rand.Rand) (*grid.World, *city.City, error) {
	switch cfg.WorldSource {
	case config.WorldSourceHardcoded:
		if cfg.WorldNumber != 1 {
			return nil, nil, fmt.Errorf("no hardcoded world numbered %d", cfg.WorldNumber)
		}
		w, capital := grid.NewWorld1(civ, rng)
		return w, capital, nil
	case config.WorldSourceRandom:
		return nil, nil, fmt.Errorf("random world generation is not implemented")
	case config.WorldSourceFile:
		return nil, nil, fmt.Errorf("loading a world from %q is not implemented", cfg.WorldConfig)
	default:
		return nil, nil, fmt.Errorf("unknown world source")
	}
}
