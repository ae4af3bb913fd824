package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"harvest/game"
	"harvest/searcher"
)

// quickGrid is a 3x3 all-grass episode with a single stone next to A's base.
func quickGrid(t *testing.T) *game.Grid {
	t.Helper()
	terrain := make([][]game.Terrain, 3)
	for r := range terrain {
		terrain[r] = make([]game.Terrain, 3)
	}
	resources := []game.ResourceTile{{Pos: game.Coord{Row: 0, Col: 1}, Kind: game.Stone}}
	var required game.Requirement
	required[game.Stone] = 1

	g, err := game.NewGrid(terrain, resources, game.DefaultCosts(), required, 1)
	require.NoError(t, err)
	return g
}

func TestStepAlternatesTurns(t *testing.T) {
	g := quickGrid(t)
	e := New(g, searcher.NewMinimax(searcher.WithDepth(2)), searcher.NewRandom(1))

	require.Equal(t, game.AgentA, e.State.Turn)
	require.NoError(t, e.Step())
	require.Equal(t, game.AgentB, e.State.Turn)
	require.Equal(t, 1, e.State.Moves)
	require.NoError(t, e.Step())
	require.Equal(t, game.AgentA, e.State.Turn)
}

func TestRunFinishesTheMatch(t *testing.T) {
	g := quickGrid(t)
	e := New(g, searcher.NewMinimax(searcher.WithDepth(4)), searcher.NewMinimax(searcher.WithDepth(4)))

	final, err := e.Run()
	require.NoError(t, err)
	require.True(t, final.IsTerminal(), "the single stone should get banked")
	require.Less(t, final.Moves, MaxTurns)
	require.Equal(t, 1, final.DeliveredTotal)
}

func TestRunStopsAtTurnCap(t *testing.T) {
	// Two random wanderers may never deliver; the cap must end the match.
	g := quickGrid(t)
	e := New(g, searcher.NewRandom(3), searcher.NewRandom(4))

	final, err := e.Run()
	require.NoError(t, err)
	require.LessOrEqual(t, final.Moves, MaxTurns)
}

func TestPauseStopsRun(t *testing.T) {
	g := quickGrid(t)
	e := New(g, searcher.NewMinimax(), searcher.NewRandom(1))

	e.Pause()
	require.True(t, e.Paused())
	final, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, 0, final.Moves, "a paused engine does not advance")

	e.Resume()
	require.False(t, e.Paused())
	require.NoError(t, e.Step())
	require.Equal(t, 1, e.State.Moves)
}

func TestResetRestoresInitialState(t *testing.T) {
	g := quickGrid(t)
	e := New(g, searcher.NewMinimax(searcher.WithDepth(2)), searcher.NewRandom(1))

	initial := e.State
	require.NoError(t, e.Step())
	require.NoError(t, e.Step())
	require.NotEqual(t, initial.Key(), e.State.Key())

	e.Reset()
	require.Equal(t, initial.Key(), e.State.Key())
	require.Equal(t, 0, e.State.Moves)
}

func TestStepSkipsStalemateTurn(t *testing.T) {
	// Single-cell grid: no agent ever has a legal move, but the undelivered
	// stone keeps the state non-terminal. Step must skip the turn, not fail.
	g := &game.Grid{
		Terrain:   [][]game.Terrain{{game.Grass}},
		Resources: []game.ResourceTile{{Pos: game.Coord{Row: 0, Col: 0}, Kind: game.Stone}},
		Costs:     game.DefaultCosts(),
		Capacity:  1,
	}
	e := New(g, searcher.NewMinimax(searcher.WithDepth(2)), searcher.NewRandom(1))

	require.NoError(t, e.Step())
	require.Equal(t, game.AgentB, e.State.Turn)
	require.Equal(t, 1, e.State.Moves, "a skipped turn counts toward the cap")
	require.NoError(t, e.Step())
	require.Equal(t, game.AgentA, e.State.Turn)
	require.Equal(t, 2, e.State.Moves)
}

func TestRunReturnsOnPermanentStalemate(t *testing.T) {
	// Neither agent ever has a legal move and the stone is never delivered,
	// so the match can only end at the turn cap. Run must hit it and return.
	g := &game.Grid{
		Terrain:   [][]game.Terrain{{game.Grass}},
		Resources: []game.ResourceTile{{Pos: game.Coord{Row: 0, Col: 0}, Kind: game.Stone}},
		Costs:     game.DefaultCosts(),
		Capacity:  1,
	}
	e := New(g, searcher.NewMinimax(searcher.WithDepth(2)), searcher.NewRandom(1))

	final, err := e.Run()
	require.NoError(t, err)
	require.False(t, final.IsTerminal())
	require.Equal(t, MaxTurns, final.Moves)
}

func TestChooseMove(t *testing.T) {
	g := quickGrid(t)
	state := game.NewGameState(g)

	t.Run("minimax choice carries a score", func(t *testing.T) {
		choice, err := ChooseMove(state, 2, true, 0)
		require.NoError(t, err)
		require.True(t, choice.Scored)
		require.Contains(t, state.LegalMoves(), choice.Move)
	})

	t.Run("random choice has no score", func(t *testing.T) {
		choice, err := ChooseMove(state, 0, false, 9)
		require.NoError(t, err)
		require.False(t, choice.Scored)
		require.Contains(t, state.LegalMoves(), choice.Move)
	})
}
