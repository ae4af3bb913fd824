package game

import "fmt"

// Heuristic estimates the remaining cost from a search state to the goal.
// Every heuristic here except HeuristicZero must underestimate the true cost
// (admissible), which is what guarantees A* returns optimal paths. They use
// Manhattan distance and the minimum terrain cost per step, never the actual
// terrain under a hypothetical route.
type Heuristic func(*Grid, State) int

// HeuristicID selects one of the closed set of heuristic variants.
type HeuristicID int

const (
	// HeuristicZero is h=0, turning A* into Dijkstra. It is the correctness
	// oracle for the informed heuristics, not a production choice.
	HeuristicZero HeuristicID = iota
	// HeuristicNearest bounds by the distance to the nearest still-needed
	// resource, or to base once only delivery remains.
	HeuristicNearest
	// HeuristicTrips bounds by the round trips still required at the bag
	// capacity.
	HeuristicTrips
	// HeuristicMax takes the max of HeuristicNearest and HeuristicTrips; the
	// max of admissible bounds is still admissible. This is the default.
	HeuristicMax
)

func (id HeuristicID) String() string {
	switch id {
	case HeuristicZero:
		return "zero"
	case HeuristicNearest:
		return "nearest"
	case HeuristicTrips:
		return "trips"
	case HeuristicMax:
		return "max"
	}
	return fmt.Sprintf("heuristic(%d)", int(id))
}

// ParseHeuristic resolves a heuristic name from config or flags.
func ParseHeuristic(name string) (HeuristicID, error) {
	switch name {
	case "zero":
		return HeuristicZero, nil
	case "nearest":
		return HeuristicNearest, nil
	case "trips":
		return HeuristicTrips, nil
	case "max":
		return HeuristicMax, nil
	}
	return 0, &ConfigError{Field: "heuristic", Reason: fmt.Sprintf("unknown heuristic %q", name)}
}

// Func returns the heuristic function for the id.
func (id HeuristicID) Func() Heuristic {
	switch id {
	case HeuristicNearest:
		return heuristicNearest
	case HeuristicTrips:
		return heuristicTrips
	case HeuristicMax:
		return heuristicMax
	default:
		return heuristicZero
	}
}

func heuristicZero(*Grid, State) int { return 0 }

func heuristicNearest(g *Grid, s State) int {
	minCost := g.MinEntryCost()

	// A full bag forces a trip home before anything else can be picked up.
	if s.BagCount() == g.Capacity {
		return Manhattan(s.Pos, g.BaseA) * minCost
	}

	if s.TotalNeedToCollect(g) > 0 {
		if d, ok := nearestNeededDistance(g, s, s.Pos, s.NeedToCollect(g)); ok {
			return d * minCost
		}
		return Manhattan(s.Pos, g.BaseA) * minCost
	}

	// Nothing left to collect; anything carried still has to come home.
	if s.BagCount() > 0 {
		return Manhattan(s.Pos, g.BaseA) * minCost
	}
	return 0
}

func heuristicTrips(g *Grid, s State) int {
	needed := s.NeedToCollect(g)
	notInBag := 0
	for _, n := range needed {
		notInBag += n
	}
	if notInBag == 0 {
		return 0
	}

	trips := (notInBag + g.Capacity - 1) / g.Capacity

	baseToNearest, ok := nearestNeededDistance(g, s, g.BaseA, needed)
	if !ok {
		return 0
	}
	posToNearest, _ := nearestNeededDistance(g, s, s.Pos, needed)

	// Any remaining tour decomposes into legs: reaching a first needed
	// resource from here, one return to base per trip, and one outbound from
	// base for every trip after the first. Each leg is bounded below by the
	// straight-line distance at the cheapest terrain, so the sum stays
	// admissible.
	legs := posToNearest + (2*trips-1)*baseToNearest
	return legs * g.MinEntryCost()
}

func heuristicMax(g *Grid, s State) int {
	return max(heuristicNearest(g, s), heuristicTrips(g, s))
}

// nearestNeededDistance returns the Manhattan distance from pos to the
// closest unconsumed tile of a kind with a positive count in needed, and
// false if no such tile exists.
func nearestNeededDistance(g *Grid, s State, pos Coord, needed [NumResourceKinds]int) (int, bool) {
	best := 0
	found := false
	for _, tile := range g.Resources {
		if needed[tile.Kind] <= 0 || s.ConsumedTile(tile.Index) {
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
