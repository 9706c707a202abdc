// Package config loads the three process-start options the engine needs
// (spec §6): which presentation adapter to bind, which world to build, and
// the caster's name. Loading happens once at process start, never per
// turn, following the teacher's env-var loadConfig() pattern in
// cmd/world-service/main.go — no config file format or flag library is
// introduced since the teacher itself uses none for this shape of
// configuration.
package config

import (
	"os"
	"strings"
)

// WorldSource describes how world_config should be interpreted.
type WorldSource int

const (
	// WorldSourceHardcoded selects one of the built-in numbered worlds.
	WorldSourceHardcoded WorldSource = iota
	// WorldSourceRandom requests a programmatically generated world.
	WorldSourceRandom
	// WorldSourceFile names a ".baalmap" file to load (out of scope here;
	// recorded only so the boundary adapter can act on it).
	WorldSourceFile
)

// Config holds the fixed triple of process-start options.
type Config struct {
	InterfaceConfig string
	WorldConfig     string
	WorldSource     WorldSource
	WorldNumber     int
	PlayerConfig    string
}

// Load reads configuration from the environment, applying the defaults a
// bare `go run ./cmd/baalrealm` needs to boot the hardcoded world.
func Load() Config {
	cfg := Config{
		InterfaceConfig: getenv("BAAL_INTERFACE", "text"),
		WorldConfig:     getenv("BAAL_WORLD", "1"),
		PlayerConfig:    getenv("BAAL_PLAYER", "caster"),
	}
	cfg.WorldSource, cfg.WorldNumber = classifyWorld(cfg.WorldConfig)
	return cfg
}

func classifyWorld(raw string) (WorldSource, int) {
	switch {
	case raw == "r":
		return WorldSourceRandom, 0
	case strings.HasSuffix(raw, ".baalmap"):
		return WorldSourceFile, 0
	default:
		n := 0
		for _, r := range raw {
			if r < '0' || r > '9' {
				return WorldSourceHardcoded, 1
			}
			n = n*10 + int(r-'0')
		}
		if n == 0 {
			n = 1
		}
		return WorldSourceHardcoded, n
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
