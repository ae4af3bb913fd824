package game

// Pickup and delivery policy, fixed for the whole system: entering a cell
// with an available resource picks it up automatically when the bag has room
// (a full bag leaves the tile on the map for a later pass), and entering the
// agent's own base deposits the whole bag automatically. Both search engines
// rely on the same policy, so it lives here with the transition function.

// Successor pairs a successor state with the terrain cost of the step that
// produced it.
type Successor struct {
	State State
	Cost  int
}

// Step moves the collector to dest and applies the pickup/delivery policy.
// The step cost is the entry cost of the destination cell. A destination that
// is out of bounds or not orthogonally adjacent fails with InvalidMoveError.
func Step(g *Grid, s State, dest Coord) (State, int, error) {
	if !g.InBounds(dest) || Manhattan(s.Pos, dest) != 1 {
		return State{}, 0, &InvalidMoveError{From: s.Pos, To: dest}
	}

	cost := g.EntryCost(dest)
	next := s
	next.Pos = dest

	if dest == g.BaseA && next.BagCount() > 0 {
		next = next.deposit(g)
	}

	if tile := g.ResourceAt(dest); tile != nil {
		if !next.ConsumedTile(tile.Index) && next.BagCount() < g.Capacity {
			next.Bag[tile.Kind]++
			next.Consumed |= 1 << uint(tile.Index)
		}
	}

	return next, cost, nil
}

// Successors generates every valid successor of s, up to four, in the grid's
// fixed neighbor order.
func Successors(g *Grid, s State) []Successor {
	out := make([]Successor, 0, 4)
	for _, dest := range g.Neighbors(s.Pos) {
		next, cost, err := Step(g, s, dest)
		if err != nil {
			continue
		}
		out = append(out, Successor{State: next, Cost: cost})
	}
	return out
}
