package game

// State is the single-agent search state explored by A*. It is a plain value
// type comparable with ==, so it can key the cost and parent maps directly.
// Position alone is not enough: which resources are still owed changes which
// paths are optimal, so the backpack, delivered counts and the consumed tile
// mask are all part of the state.
type State struct {
	Pos       Coord
	Bag       [NumResourceKinds]int8
	Delivered [NumResourceKinds]int8
	Consumed  uint32
}

// StartState places the collector at base A with an empty backpack, nothing
// delivered and no tiles consumed.
func StartState(g *Grid) State {
	return State{Pos: g.BaseA}
}

// IsGoal reports whether every required resource has been delivered and the
// agent is back at its base.
func (s State) IsGoal(g *Grid) bool {
	if s.Pos != g.BaseA {
		return false
	}
	for k, need := range g.Required {
		if int(s.Delivered[k]) < need {
			return false
		}
	}
	return true
}

// BagCount returns the number of items carried.
func (s State) BagCount() int {
	total := 0
	for _, n := range s.Bag {
		total += int(n)
	}
	return total
}

// ConsumedTile reports whether the resource tile with the given index has
// been picked up somewhere along this state's history.
func (s State) ConsumedTile(index int) bool {
	return s.Consumed&(1<<uint(index)) != 0
}

// Remaining returns, per kind, how many items still have to be delivered,
// ignoring anything carried in the bag.
func (s State) Remaining(g *Grid) [NumResourceKinds]int {
	var out [NumResourceKinds]int
	for k, need := range g.Required {
		out[k] = max(0, need-int(s.Delivered[k]))
	}
	return out
}

// NeedToCollect returns, per kind, how many items still have to be picked up,
// discounting what is already in the bag.
func (s State) NeedToCollect(g *Grid) [NumResourceKinds]int {
	out := s.Remaining(g)
	for k := range out {
		out[k] = max(0, out[k]-int(s.Bag[k]))
	}
	return out
}

// TotalNeedToCollect sums NeedToCollect across kinds.
func (s State) TotalNeedToCollect(g *Grid) int {
	need := s.NeedToCollect(g)
	total := 0
	for _, n := range need {
		total += n
	}
	return total
}

// deposit empties the bag into the delivered counts, clamped at the
// requirement so equivalent states share one representation.
func (s State) deposit(g *Grid) State {
	for k := range s.Bag {
		delivered := int(s.Delivered[k]) + int(s.Bag[k])
		if delivered > g.Required[k] {
			delivered = g.Required[k]
		}
		s.Delivered[k] = int8(delivered)
		s.Bag[k] = 0
	}
	return s
}
