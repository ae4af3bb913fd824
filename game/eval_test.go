package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func evalGrid(t *testing.T) *Grid {
	t.Helper()
	resources := []ResourceTile{{Pos: Coord{2, 2}, Kind: Stone}}
	var required Requirement
	required[Stone] = 1
	g, err := NewGrid(allGrass(5, 5), resources, DefaultCosts(), required, 2)
	require.NoError(t, err)
	return g
}

func TestEvaluateBackpackPossessionDominates(t *testing.T) {
	g := evalGrid(t)

	ahead := NewGameState(g)
	ahead.Players[AgentA].Delivered = 1
	require.Positive(t, EvaluateBackpack(ahead))

	behind := NewGameState(g)
	behind.Players[AgentB].Delivered = 1
	require.Negative(t, EvaluateBackpack(behind))

	// A carried item counts like a delivered one in the possession term.
	carrying := NewGameState(g)
	carrying.Players[AgentA].Bag[Stone] = 1
	require.Positive(t, EvaluateBackpack(carrying))
}

func TestEvaluateBackpackRewardsProximity(t *testing.T) {
	g := evalGrid(t)

	near := NewGameState(g)
	near.Players[AgentA].Pos = Coord{2, 1} // one step from the stone

	far := NewGameState(g)
	far.Players[AgentA].Pos = Coord{0, 0}

	require.Greater(t, EvaluateBackpack(near), EvaluateBackpack(far))
}

func TestEvaluateBackpackUrgesLoadedAgentHome(t *testing.T) {
	g := evalGrid(t)

	nearHome := NewGameState(g)
	nearHome.Players[AgentA].Bag[Stone] = 1
	nearHome.Players[AgentA].Pos = Coord{0, 1}
	nearHome.Consumed = 1 << 0

	farFromHome := NewGameState(g)
	farFromHome.Players[AgentA].Bag[Stone] = 1
	farFromHome.Players[AgentA].Pos = Coord{4, 3}
	farFromHome.Consumed = 1 << 0

	require.Greater(t, EvaluateBackpack(nearHome), EvaluateBackpack(farFromHome))
}

func TestEvaluateBackpackIsSymmetricAtStart(t *testing.T) {
	// Both agents at their bases, nothing collected: the only asymmetry
	// allowed is each agent's distance to the resources.
	resources := []ResourceTile{{Pos: Coord{2, 2}, Kind: Stone}}
	var required Requirement
	required[Stone] = 1
	g, err := NewGrid(allGrass(5, 5), resources, DefaultCosts(), required, 2)
	require.NoError(t, err)

	s := NewGameState(g)
	// (2,2) is equidistant from (0,0) and (4,4); only the step tax remains.
	require.Equal(t, -3, EvaluateBackpack(s))
}

func TestEvaluateBackpackIsPure(t *testing.T) {
	g := evalGrid(t)
	s := NewGameState(g)
	s.Players[AgentA].Pos = Coord{1, 2}
	s.Players[AgentA].Bag[Stone] = 1

	before := s
	first := EvaluateBackpack(s)
	second := EvaluateBackpack(s)
	require.Equal(t, first, second)
	require.Equal(t, before, s, "evaluation must not mutate the state")
}
