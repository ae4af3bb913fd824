package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"harvest/game"
)

// contestedGrid has a single stone equidistant from both bases.
func contestedGrid(t *testing.T) *game.Grid {
	t.Helper()
	terrain := make([][]game.Terrain, 5)
	for r := range terrain {
		terrain[r] = make([]game.Terrain, 5)
	}
	resources := []game.ResourceTile{{Pos: game.Coord{Row: 2, Col: 2}, Kind: game.Stone}}
	var required game.Requirement
	required[game.Stone] = 1

	g, err := game.NewGrid(terrain, resources, game.DefaultCosts(), required, 2)
	require.NoError(t, err)
	return g
}

func TestFindBestMoveClosesOnContestedResource(t *testing.T) {
	g := contestedGrid(t)
	state := game.NewGameState(g)

	move, _, err := NewMinimax(WithDepth(2)).FindBestMove(state)
	require.NoError(t, err)

	before := game.Manhattan(state.Players[game.AgentA].Pos, game.Coord{Row: 2, Col: 2})
	after := game.Manhattan(move, game.Coord{Row: 2, Col: 2})
	require.Less(t, after, before, "depth-2 search must step toward the contested stone")
}

func TestFindBestMoveDeliversWinningItem(t *testing.T) {
	g := contestedGrid(t)
	state := game.NewGameState(g)
	state.Players[game.AgentA].Pos = game.Coord{Row: 0, Col: 1}
	state.Players[game.AgentA].Bag[game.Stone] = 1
	state.Consumed = 1 << 0

	move, score, err := NewMinimax(WithDepth(3)).FindBestMove(state)
	require.NoError(t, err)
	require.Equal(t, game.Coord{Row: 0, Col: 0}, move, "delivering the last item ends the game")
	require.Equal(t, 1_000_000, score, "terminal utility carries the boost")
}

func TestFindBestMovePlaysBothSides(t *testing.T) {
	g := contestedGrid(t)
	state := game.NewGameState(g)
	state.Turn = game.AgentB

	move, _, err := NewMinimax(WithDepth(2)).FindBestMove(state)
	require.NoError(t, err)

	// B minimizes the A-perspective score, which for B means the same thing:
	// close on the stone.
	before := game.Manhattan(state.Players[game.AgentB].Pos, game.Coord{Row: 2, Col: 2})
	after := game.Manhattan(move, game.Coord{Row: 2, Col: 2})
	require.Less(t, after, before)
}

// Alpha-beta pruning is a performance optimization, not a policy change: for
// every depth and every sampled position it must pick the same root move with
// the same root score as exhaustive minimax.
func TestPruningNeverChangesTheChosenMove(t *testing.T) {
	g, err := game.BuiltinMap("A")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	state := game.NewGameState(g)

	for step := 0; step < 10; step++ {
		for depth := 1; depth <= 4; depth++ {
			pruned := NewMinimax(WithDepth(depth))
			exhaustive := NewMinimax(WithDepth(depth), WithoutPruning())

			prunedMove, prunedScore, err := pruned.FindBestMove(state)
			require.NoError(t, err)
			exhaustiveMove, exhaustiveScore, err := exhaustive.FindBestMove(state)
			require.NoError(t, err)

			require.Equal(t, exhaustiveMove, prunedMove, "step %d depth %d", step, depth)
			require.Equal(t, exhaustiveScore, prunedScore, "step %d depth %d", step, depth)
		}

		// Walk to a fresh position along a seeded random playout.
		moves := state.LegalMoves()
		next, err := state.Apply(moves[rng.Intn(len(moves))])
		require.NoError(t, err)
		state = next
	}
}

func TestFindBestMoveStalemate(t *testing.T) {
	// Degenerate single-cell grid: the turn owner has nowhere to go but the
	// lone resource keeps the state non-terminal.
	g := &game.Grid{
		Terrain:   [][]game.Terrain{{game.Grass}},
		Resources: []game.ResourceTile{{Pos: game.Coord{Row: 0, Col: 0}, Kind: game.Stone}},
		Costs:     game.DefaultCosts(),
		Capacity:  1,
	}
	state := game.NewGameState(g)

	_, _, err := NewMinimax(WithDepth(2)).FindBestMove(state)
	require.ErrorIs(t, err, game.ErrStalemate)

	_, _, err = NewRandom(1).FindBestMove(state)
	require.ErrorIs(t, err, game.ErrStalemate)
}

func TestRandomIsSeededAndLegal(t *testing.T) {
	g := contestedGrid(t)
	state := game.NewGameState(g)

	first := NewRandom(42)
	second := NewRandom(42)
	for i := 0; i < 10; i++ {
		a, _, err := first.FindBestMove(state)
		require.NoError(t, err)
		b, _, err := second.FindBestMove(state)
		require.NoError(t, err)
		require.Equal(t, a, b, "same seed, same stream")
		require.Contains(t, state.LegalMoves(), a)
	}
}
