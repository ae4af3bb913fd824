package searcher

import "harvest/game"

// Agent selects a move for the turn owner of a game state.
type Agent interface {
	FindBestMove(s game.GameState) (move game.Coord, score int, err error)
}

const (
	inf = int(1e9)
	// terminalBoost keeps real outcomes above any static evaluation.
	terminalBoost = 1_000_000
)

// MinimaxOption configures a Minimax searcher.
type MinimaxOption func(*Minimax)

// WithDepth sets the search horizon in plies.
func WithDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn replaces the leaf evaluator.
func WithEvaluationFn(evaluate game.Evaluate) MinimaxOption {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs, turning the searcher into the
// exhaustive-minimax oracle. Pruning must never change the chosen move, and
// this is how the tests check that.
func WithoutPruning() MinimaxOption {
	return func(m *Minimax) {
		m.prune = false
	}
}

// Minimax is the depth-bounded adversarial searcher. Agent A maximizes and
// agent B minimizes the A-perspective score, so the same searcher plays
// either side; the root picks for whoever owns the turn.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	prune    bool
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{
		depth:    4,
		evaluate: game.EvaluateBackpack,
		prune:    true,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the best destination for the turn owner and its score
// from A's perspective. It fails with ErrStalemate when the turn owner has no
// legal moves.
func (m *Minimax) FindBestMove(s game.GameState) (game.Coord, int, error) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, 0, game.ErrStalemate
	}

	isMax := s.Turn == game.AgentA
	alpha, beta := -inf, inf
	var bestMove game.Coord
	var bestVal int

	for i, mv := range moves {
		child, err := s.Apply(mv)
		if err != nil {
			// LegalMoves only yields in-bounds neighbors
			continue
		}
		val := m.search(child, m.depth-1, alpha, beta)

		if i == 0 || better(val, bestVal, isMax) {
			bestVal, bestMove = val, mv
		}
		if isMax && val > alpha {
			alpha = val
		} else if !isMax && val < beta {
			beta = val
		}
	}

	return bestMove, bestVal, nil
}

func (m *Minimax) search(s game.GameState, depth, alpha, beta int) int {
	if s.IsTerminal() {
		return s.Utility() * terminalBoost
	}
	if depth == 0 {
		return m.evaluate(s)
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		// Turn owner is stuck; score the position as it stands.
		return m.evaluate(s)
	}

	if s.Turn == game.AgentA {
		best := -inf
		for _, mv := range moves {
			child, err := s.Apply(mv)
			if err != nil {
				continue
			}
			if val := m.search(child, depth-1, alpha, beta); val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
			if m.prune && beta <= alpha {
				break
			}
		}
		return best
	}

	best := inf
	for _, mv := range moves {
		child, err := s.Apply(mv)
		if err != nil {
			continue
		}
		if val := m.search(child, depth-1, alpha, beta); val < best {
			best = val
		}
		if best < beta {
			beta = best
		}
		if m.prune && beta <= alpha {
			break
		}
	}
	return best
}

func better(val, best int, isMax bool) bool {
	if isMax {
		return val > best
	}
	return val < best
}
