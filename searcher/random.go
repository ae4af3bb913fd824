package searcher

import (
	"golang.org/x/exp/rand"

	"harvest/game"
)

// Random samples uniformly from the turn owner's legal moves. It is the
// baseline opponent policy for agent B.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a seeded random policy. Seed 0 is replaced by 1 so a zero
// value still produces a usable source.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = 1
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// FindBestMove picks a uniformly random legal move. The score is always 0;
// random play has no opinion.
func (r *Random) FindBestMove(s game.GameState) (game.Coord, int, error) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, 0, game.ErrStalemate
	}
	return moves[r.rng.Intn(len(moves))], 0, nil
}
