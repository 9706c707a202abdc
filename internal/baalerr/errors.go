// Package baalerr defines the two-class error taxonomy the simulation
// engine distinguishes throughout: user errors are recoverable and unwind
// the current command without mutating state, invariant violations are
// fatal and must halt the process.
package baalerr

import "fmt"

// UserError represents a recoverable, user-visible mistake: an unknown
// command, a bad argument, insufficient mana, casting on the wrong tile,
// and so on. Callers should report it to the renderer and continue the
// loop.
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error { return e.Err }

// NewUser creates a UserError with the given machine-readable code.
func NewUser(code, message string) *UserError {
	return &UserError{Code: code, Message: message}
}

// WrapUser wraps an underlying error in a UserError carrying the given code.
func WrapUser(code, message string, err error) *UserError {
	return &UserError{Code: code, Message: message, Err: err}
}

// Common user error templates, named the way they're raised across the
// engine.
var (
	ErrUnknownCommand  = &UserError{Code: "UNKNOWN_COMMAND", Message: "unknown command"}
	ErrUnknownSpell    = &UserError{Code: "UNKNOWN_SPELL", Message: "unknown spell"}
	ErrUnknownDrawMode = &UserError{Code: "UNKNOWN_DRAW_MODE", Message: "unknown draw mode"}
	ErrOffGrid         = &UserError{Code: "OFF_GRID", Message: "location is off the grid"}
	ErrInsufficientMana = &UserError{Code: "INSUFFICIENT_MANA", Message: "insufficient mana"}
	ErrWrongTile       = &UserError{Code: "WRONG_TILE", Message: "spell cannot be cast on this tile"}
	ErrWrongSeason     = &UserError{Code: "WRONG_SEASON", Message: "spell cannot be cast this season"}
	ErrAlreadyCast     = &UserError{Code: "ALREADY_CAST", Message: "that spell was already cast on this tile this turn"}
	ErrTalentViolation = &UserError{Code: "TALENT_VIOLATION", Message: "talent requirements not met"}
	ErrBadArgument     = &UserError{Code: "BAD_ARGUMENT", Message: "bad argument"}
)

// Invariant represents a fatal, unrecoverable invariant violation: negative
// HP, over-max infrastructure, negative city population, an anomaly outside
// its legal intensity range, a tile yield with both components non-zero.
// The engine treats an Invariant as a programming error: it panics with
// this type, and the loop's outermost recover is the only place that is
// allowed to observe it, translating it into a fatal process exit.
type Invariant struct {
	Message string
}

func (e *Invariant) Error() string { return "invariant violation: " + e.Message }

// Raise panics with an Invariant. Call this from any guarded mutating
// method that detects its own state has become inconsistent.
func Raise(format string, args ...any) {
	panic(&Invariant{Message: fmt.Sprintf(format, args...)})
}
