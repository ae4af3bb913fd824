package game

// Evaluate scores a GameState from agent A's perspective: positive favors A,
// negative favors B. Implementations must be pure functions of the state.
type Evaluate func(GameState) int

// Evaluator weights. Possession dominates so that actually banking items
// always beats hovering near them; the return bonus outweighs the proximity
// bonus so a loaded agent heads home; the step tax breaks ties toward
// finishing sooner.
const (
	possessionWeight  = 220
	nearResourceBonus = 60
	returnBaseBonus   = 260
	stepTax           = 3
)

// EvaluateBackpack is the backpack-aware static evaluator used at minimax
// leaves. It combines the delivered-plus-carried difference between the
// agents, each agent's proximity to the nearest remaining resource, and an
// urgency-to-return term for loaded bags.
func EvaluateBackpack(s GameState) int {
	a := s.Players[AgentA]
	b := s.Players[AgentB]
	minCost := s.Grid.MinEntryCost()

	val := (a.Delivered + a.BagCount() - b.Delivered - b.BagCount()) * possessionWeight

	if d, ok := nearestRemainingDistance(s, a.Pos); ok {
		val += max(0, nearResourceBonus-d*minCost)
	}
	if d, ok := nearestRemainingDistance(s, b.Pos); ok {
		val -= max(0, nearResourceBonus-d*minCost)
	}

	if a.BagCount() > 0 {
		val += max(0, returnBaseBonus-Manhattan(a.Pos, s.Grid.BaseA)*minCost*10)
	}
	if b.BagCount() > 0 {
		val -= max(0, returnBaseBonus-Manhattan(b.Pos, s.Grid.BaseB)*minCost*10)
	}

	return val - stepTax
}

// nearestRemainingDistance returns the Manhattan distance from pos to the
// closest resource tile still on the map, and false if none remain.
func nearestRemainingDistance(s GameState, pos Coord) (int, bool) {
	best := 0
	found := false
	for _, tile := range s.Grid.Resources {
		if s.ConsumedTile(tile.Index) {
			continue
		}
		d := Manhattan(pos, tile.Pos)
		if !found || d < best {
			best = d
			found = true
		}
	}
	return best, found
}
