package game

// AgentID identifies one of the two competing agents.
type AgentID int

const (
	AgentA AgentID = iota
	AgentB
)

func (id AgentID) String() string {
	if id == AgentA {
		return "A"
	}
	return "B"
}

// Opponent returns the other agent.
func (id AgentID) Opponent() AgentID {
	if id == AgentA {
		return AgentB
	}
	return AgentA
}

// Player is one agent's dynamic state inside a GameState.
type Player struct {
	Pos       Coord
	Bag       [NumResourceKinds]int8
	Delivered int // total items delivered at this player's base
}

// BagCount returns the number of items the player carries.
func (p Player) BagCount() int {
	total := 0
	for _, n := range p.Bag {
		total += int(n)
	}
	return total
}

// GameState is an immutable snapshot of the two-agent game. Apply never
// mutates the receiver; every search branch works on its own copy, which is
// what makes sibling branches independent.
type GameState struct {
	Grid           *Grid
	Players        [2]Player
	Consumed       uint32
	DeliveredTotal int // items delivered by both agents combined
	Turn           AgentID
	Moves          int
}

// GameKey is a comparable identity for a GameState minus the grid, usable as
// a map key for transposition or repetition bookkeeping.
type GameKey struct {
	PosA, PosB Coord
	BagA, BagB [NumResourceKinds]int8
	Consumed   uint32
	Turn       AgentID
}

// NewGameState places both agents on their bases with agent A to move.
func NewGameState(g *Grid) GameState {
	return GameState{
		Grid: g,
		Players: [2]Player{
			{Pos: g.BaseA},
			{Pos: g.BaseB},
		},
		Turn: AgentA,
	}
}

// Key returns the comparable identity of the state.
func (s GameState) Key() GameKey {
	return GameKey{
		PosA:     s.Players[AgentA].Pos,
		PosB:     s.Players[AgentB].Pos,
		BagA:     s.Players[AgentA].Bag,
		BagB:     s.Players[AgentB].Bag,
		Consumed: s.Consumed,
		Turn:     s.Turn,
	}
}

// LegalMoves returns the destinations the turn owner may move to, in the
// grid's fixed neighbor order.
func (s GameState) LegalMoves() []Coord {
	return s.Grid.Neighbors(s.Players[s.Turn].Pos)
}

// IsTerminal reports whether every resource on the map has been delivered to
// one of the bases.
func (s GameState) IsTerminal() bool {
	return s.DeliveredTotal >= len(s.Grid.Resources)
}

// Utility is the zero-sum game outcome from A's perspective: items delivered
// by A minus items delivered by B.
func (s GameState) Utility() int {
	return s.Players[AgentA].Delivered - s.Players[AgentB].Delivered
}

// ConsumedTile reports whether the resource tile with the given index has
// been picked up by either agent.
func (s GameState) ConsumedTile(index int) bool {
	return s.Consumed&(1<<uint(index)) != 0
}

// Apply moves the turn owner to dest, runs the pickup/delivery policy and
// hands the turn to the opponent. It returns a fresh state; the receiver is
// untouched. An out-of-bounds or non-adjacent destination fails with
// InvalidMoveError.
func (s GameState) Apply(dest Coord) (GameState, error) {
	me := s.Players[s.Turn]
	if !s.Grid.InBounds(dest) || Manhattan(me.Pos, dest) != 1 {
		return GameState{}, &InvalidMoveError{From: me.Pos, To: dest}
	}

	me.Pos = dest

	next := s
	if tile := s.Grid.ResourceAt(dest); tile != nil {
		if !s.ConsumedTile(tile.Index) && me.BagCount() < s.Grid.Capacity {
			me.Bag[tile.Kind]++
			next.Consumed |= 1 << uint(tile.Index)
		}
	}

	if dest == s.Grid.Base(s.Turn) && me.BagCount() > 0 {
		delivered := me.BagCount()
		me.Bag = [NumResourceKinds]int8{}
		me.Delivered += delivered
		next.DeliveredTotal += delivered
	}

	next.Players[s.Turn] = me
	next.Turn = s.Turn.Opponent()
	next.Moves++
	return next, nil
}
