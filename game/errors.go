package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrStalemate signals that the turn owner has no legal moves. The game loop
// decides whether to skip the turn; the searchers never guess.
var ErrStalemate = errors.New("no legal moves for turn owner")

// InvalidMoveError reports a move to an out-of-bounds or non-adjacent cell.
// It is a recoverable signal for the caller, not a crash.
type InvalidMoveError struct {
	From Coord
	To   Coord
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move from %s to %s", e.From, e.To)
}

// NoSolutionError reports that a path search finished without reaching the
// goal, either because the frontier emptied or because an expansion budget
// ran out. A partial path is never returned silently.
type NoSolutionError struct {
	Reason   string
	Expanded int
	Elapsed  time.Duration
}

func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("no solution: %s (expanded %d nodes in %s)", e.Reason, e.Expanded, e.Elapsed)
}

// ConfigError reports malformed episode configuration, such as a non-positive
// terrain cost or a resource placed out of bounds.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Reason)
}
