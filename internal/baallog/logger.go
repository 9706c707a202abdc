// Package baallog provides the simulation-wide structured logger. It
// mirrors the dual Trace/Debug/Info split the teacher's simulation logger
// uses: per-turn arithmetic logs at Trace/Debug, and turn boundaries,
// win/loss conditions, and fatal invariants log at Info/Error.
package baallog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Tests may redirect it with New.
var Log = New(os.Stderr)

// New builds a console-formatted zerolog.Logger writing to w.
func New(w *os.File) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// TurnStart logs the beginning of a turn.
func TurnStart(year int, season string) {
	Log.Debug().Int("year", year).Str("season", season).Msg("turn start")
}

// TurnEnd logs the end of a turn.
func TurnEnd(year int, season string) {
	Log.Debug().Int("year", year).Str("season", season).Msg("turn end")
}

// SpellCast logs a successful spell cast.
func SpellCast(name string, level int, row, col int, exp float64) {
	Log.Info().Str("spell", name).Int("level", level).
		Int("row", row).Int("col", col).Float64("exp", exp).Msg("spell cast")
}

// CityRemoved logs a city falling below MIN_CITY_SIZE and being removed.
func CityRemoved(name string, row, col int) {
	Log.Info().Str("city", name).Int("row", row).Int("col", col).Msg("city destroyed")
}

// GameOver logs the terminal win condition.
func GameOver(winner string) {
	Log.Info().Str("winner", winner).Msg("game over")
}

// Fatal logs a fatal invariant violation immediately before the process
// halts.
func Fatal(err error) {
	Log.Error().Err(err).Msg("invariant violation, halting")
}
