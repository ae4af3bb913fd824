package searcher

import (
	"container/heap"
	"time"

	"harvest/game"
)

// Option configures an AStar searcher.
type Option func(*AStar)

// WithHeuristic selects the heuristic variant. Defaults to HeuristicMax.
func WithHeuristic(id game.HeuristicID) Option {
	return func(a *AStar) {
		a.heuristic = id
	}
}

// WithMaxExpansions caps the number of node expansions. An exhausted budget
// fails the solve explicitly; a partial path is never returned.
func WithMaxExpansions(n int) Option {
	return func(a *AStar) {
		if n > 0 {
			a.maxExpansions = n
		}
	}
}

// WithTimeout bounds the wall-clock search time. The deadline is checked
// before each expansion, so the search never stops mid-expansion.
func WithTimeout(d time.Duration) Option {
	return func(a *AStar) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// AStar is the single-agent cost-optimal path searcher. It plans the full
// collect-and-deliver tour: the goal is every required resource delivered and
// the agent back on its base.
type AStar struct {
	heuristic     game.HeuristicID
	maxExpansions int
	timeout       time.Duration
}

func NewAStar(options ...Option) *AStar {
	a := &AStar{heuristic: game.HeuristicMax}
	for _, option := range options {
		option(a)
	}
	return a
}

// SolveResult carries the reconstructed path and the search statistics.
type SolveResult struct {
	Path     []game.Coord // cells from start to goal, start included
	Cost     int          // sum of entry costs along the path
	Length   int          // number of moves, len(Path)-1
	Expanded int          // nodes expanded
	Elapsed  time.Duration
	Final    game.State
}

// entry is one frontier element. The same state can appear multiple times
// with different g values; stale entries are discarded when popped.
type entry struct {
	f, h, g int
	seq     int // insertion sequence, the final tie-break
	state   game.State
}

// frontier orders entries by f, then h, then insertion sequence. The explicit
// total order makes expansion deterministic and paths reproducible.
type frontier []entry

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)   { *q = append(*q, x.(entry)) }
func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Solve runs A* from the grid's start state. It returns NoSolutionError when
// the frontier empties before the goal, or when a configured budget runs out.
func (a *AStar) Solve(g *game.Grid) (SolveResult, error) {
	result, _, err := a.solve(g)
	return result, err
}

// solveStats exposes internals the public result does not need.
type solveStats struct {
	maxExpandedF int
}

func (a *AStar) solve(g *game.Grid) (SolveResult, solveStats, error) {
	h := a.heuristic.Func()
	start := game.StartState(g)

	gCost := map[game.State]int{start: 0}
	cameFrom := map[game.State]game.State{}

	open := &frontier{}
	heap.Init(open)
	seq := 0
	h0 := h(g, start)
	heap.Push(open, entry{f: h0, h: h0, g: 0, seq: seq, state: start})
	seq++

	expanded := 0
	stats := solveStats{}
	t0 := time.Now()

	for open.Len() > 0 {
		cur := heap.Pop(open).(entry)

		// Discard entries made stale by a cheaper route to the same state.
		if cur.g != gCost[cur.state] {
			continue
		}

		if cur.state.IsGoal(g) {
			elapsed := time.Since(t0)
			path := reconstructPath(cameFrom, start, cur.state)
			return SolveResult{
				Path:     path,
				Cost:     cur.g,
				Length:   len(path) - 1,
				Expanded: expanded,
				Elapsed:  elapsed,
				Final:    cur.state,
			}, stats, nil
		}

		if a.maxExpansions > 0 && expanded >= a.maxExpansions {
			return SolveResult{Expanded: expanded, Elapsed: time.Since(t0)}, stats,
				&game.NoSolutionError{Reason: "expansion budget exhausted", Expanded: expanded, Elapsed: time.Since(t0)}
		}
		if a.timeout > 0 && time.Since(t0) > a.timeout {
			return SolveResult{Expanded: expanded, Elapsed: time.Since(t0)}, stats,
				&game.NoSolutionError{Reason: "deadline exceeded", Expanded: expanded, Elapsed: time.Since(t0)}
		}

		expanded++
		if cur.f > stats.maxExpandedF {
			stats.maxExpandedF = cur.f
		}

		for _, succ := range game.Successors(g, cur.state) {
			newG := cur.g + succ.Cost
			if old, seen := gCost[succ.State]; seen && newG >= old {
				continue
			}
			gCost[succ.State] = newG
			cameFrom[succ.State] = cur.state

			h2 := h(g, succ.State)
			heap.Push(open, entry{f: newG + h2, h: h2, g: newG, seq: seq, state: succ.State})
			seq++
		}
	}

	elapsed := time.Since(t0)
	return SolveResult{Expanded: expanded, Elapsed: elapsed}, stats,
		&game.NoSolutionError{Reason: "frontier exhausted", Expanded: expanded, Elapsed: elapsed}
}

// reconstructPath walks the parent links from goal back to start and returns
// the cell sequence in traversal order.
func reconstructPath(cameFrom map[game.State]game.State, start, goal game.State) []game.Coord {
	var rev []game.Coord
	s := goal
	for s != start {
		rev = append(rev, s.Pos)
		s = cameFrom[s]
	}
	rev = append(rev, start.Pos)

	path := make([]game.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
