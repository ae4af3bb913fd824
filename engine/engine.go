package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"harvest/game"
	"harvest/searcher"
)

// MaxTurns caps a match so two shuffling agents cannot loop forever.
const MaxTurns = 500

// Engine drives a two-agent match one move at a time. It owns the only
// mutable game state in the system; the searchers each receive an immutable
// snapshot and never touch it. The UI layer consumes the pause/step/reset
// hooks and never reaches into the searches.
type Engine struct {
	State  game.GameState
	Agents [2]searcher.Agent

	initial game.GameState
	paused  bool
}

// New builds an engine over the grid with one agent per side.
func New(g *game.Grid, agentA, agentB searcher.Agent) *Engine {
	state := game.NewGameState(g)
	return &Engine{
		State:   state,
		Agents:  [2]searcher.Agent{agentA, agentB},
		initial: state,
	}
}

// Pause stops Run from advancing; Step still works, which is what the UI's
// single-step key uses.
func (e *Engine) Pause() { e.paused = true }

// Resume lets Run advance again.
func (e *Engine) Resume() { e.paused = false }

// Paused reports whether auto-advance is stopped.
func (e *Engine) Paused() bool { return e.paused }

// Reset restores the initial match state.
func (e *Engine) Reset() {
	e.State = e.initial
	e.paused = false
}

// Step advances the match by a single turn. A stalemate for the turn owner
// skips the turn rather than failing the match.
func (e *Engine) Step() error {
	if e.State.IsTerminal() {
		return nil
	}

	turn := e.State.Turn
	move, score, err := e.Agents[turn].FindBestMove(e.State)
	if errors.Is(err, game.ErrStalemate) {
		log.Info().Str("agent", turn.String()).Msg("turn owner has no legal moves, skipping turn")
		// A skipped turn still counts toward the turn cap.
		e.State.Turn = turn.Opponent()
		e.State.Moves++
		return nil
	}
	if err != nil {
		return fmt.Errorf("agent %s failed to choose a move: %w", turn, err)
	}

	next, err := e.State.Apply(move)
	if err != nil {
		return fmt.Errorf("agent %s chose an illegal move: %w", turn, err)
	}

	log.Debug().
		Int("turn", e.State.Moves+1).
		Str("agent", turn.String()).
		Str("move", move.String()).
		Int("score", score).
		Msg("applied move")

	e.State = next
	return nil
}

// Run advances the match until it is terminal, paused, or the turn cap is
// hit. It returns the final state.
func (e *Engine) Run() (game.GameState, error) {
	for !e.paused && !e.State.IsTerminal() && e.State.Moves < MaxTurns {
		if err := e.Step(); err != nil {
			return e.State, err
		}
	}
	return e.State, nil
}

// Choice is the outcome of ChooseMove. Score is meaningful only when Scored
// is set; random play carries no score.
type Choice struct {
	Move   game.Coord
	Score  int
	Scored bool
}

// ChooseMove selects a move for the state's turn owner: minimax at the given
// depth when useMinimax is set, otherwise the seeded uniform-random policy.
func ChooseMove(state game.GameState, depth int, useMinimax bool, seed uint64) (Choice, error) {
	if useMinimax {
		move, score, err := searcher.NewMinimax(searcher.WithDepth(depth)).FindBestMove(state)
		if err != nil {
			return Choice{}, err
		}
		return Choice{Move: move, Score: score, Scored: true}, nil
	}

	move, _, err := searcher.NewRandom(seed).FindBestMove(state)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Move: move}, nil
}
