package game

import "fmt"

// Coord identifies a cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance between two cells.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type Terrain int

const (
	Grass Terrain = iota
	Hill
	Swamp
	Mountain
)

func (t Terrain) String() string {
	switch t {
	case Grass:
		return "grass"
	case Hill:
		return "hill"
	case Swamp:
		return "swamp"
	case Mountain:
		return "mountain"
	}
	return fmt.Sprintf("terrain(%d)", int(t))
}

type ResourceKind int

const (
	Stone ResourceKind = iota
	Iron
	Crystal
)

// NumResourceKinds sizes the per-kind count vectors used in search states.
const NumResourceKinds = 3

func (k ResourceKind) String() string {
	switch k {
	case Stone:
		return "stone"
	case Iron:
		return "iron"
	case Crystal:
		return "crystal"
	}
	return fmt.Sprintf("resource(%d)", int(k))
}

// ResourceTile is a resource sitting on a cell. Index is stable for the
// episode and addresses the tile's bit in consumed masks.
type ResourceTile struct {
	Pos   Coord
	Kind  ResourceKind
	Index int
}

// CostModel maps a terrain type to the cost charged when entering a cell of
// that terrain. Costs must be strictly positive.
type CostModel map[Terrain]int

// DefaultCosts returns the standard terrain cost table.
func DefaultCosts() CostModel {
	return CostModel{Grass: 1, Hill: 2, Swamp: 3, Mountain: 4}
}

// Validate checks that every terrain type has a positive entry cost.
func (c CostModel) Validate() error {
	for _, t := range []Terrain{Grass, Hill, Swamp, Mountain} {
		cost, ok := c[t]
		if !ok {
			return &ConfigError{Field: "costs", Reason: fmt.Sprintf("missing cost for terrain %s", t)}
		}
		if cost <= 0 {
			return &ConfigError{Field: "costs", Reason: fmt.Sprintf("cost for terrain %s must be positive, got %d", t, cost)}
		}
	}
	return nil
}

// Requirement holds the delivered count needed per resource kind, indexed by
// ResourceKind.
type Requirement [NumResourceKinds]int

// Total returns the total number of items that must be delivered.
func (r Requirement) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Grid is the static part of an episode: terrain, resource placement, cost
// table, delivery requirement and agent bases. It never changes once built;
// dynamic facts (who picked what) live in State and GameState.
type Grid struct {
	Terrain   [][]Terrain
	Resources []ResourceTile
	Costs     CostModel
	Required  Requirement
	Capacity  int
	BaseA     Coord
	BaseB     Coord

	minCost    int
	resourceAt map[Coord]int // cell -> index into Resources
}

// NewGrid validates and assembles a grid. Resource tiles are indexed in the
// order given. BaseA defaults to the top-left cell and BaseB to the
// bottom-right cell.
func NewGrid(terrain [][]Terrain, resources []ResourceTile, costs CostModel, required Requirement, capacity int) (*Grid, error) {
	if len(terrain) == 0 || len(terrain[0]) == 0 {
		return nil, &ConfigError{Field: "terrain", Reason: "grid must have at least one row and one column"}
	}
	cols := len(terrain[0])
	for r, row := range terrain {
		if len(row) != cols {
			return nil, &ConfigError{Field: "terrain", Reason: fmt.Sprintf("row %d has %d columns, want %d", r, len(row), cols)}
		}
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, &ConfigError{Field: "capacity", Reason: fmt.Sprintf("backpack capacity must be positive, got %d", capacity)}
	}
	for k, n := range required {
		if n < 0 {
			return nil, &ConfigError{Field: "requirement", Reason: fmt.Sprintf("required count for %s is negative", ResourceKind(k))}
		}
	}

	g := &Grid{
		Terrain:    terrain,
		Costs:      costs,
		Required:   required,
		Capacity:   capacity,
		BaseA:      Coord{0, 0},
		BaseB:      Coord{len(terrain) - 1, cols - 1},
		resourceAt: make(map[Coord]int, len(resources)),
	}

	if len(resources) > 32 {
		// Consumed masks are 32-bit
		return nil, &ConfigError{Field: "resources", Reason: fmt.Sprintf("at most 32 resource tiles supported, got %d", len(resources))}
	}
	for i, tile := range resources {
		if !g.InBounds(tile.Pos) {
			return nil, &ConfigError{Field: "resources", Reason: fmt.Sprintf("resource %s at %s is out of bounds", tile.Kind, tile.Pos)}
		}
		if _, taken := g.resourceAt[tile.Pos]; taken {
			return nil, &ConfigError{Field: "resources", Reason: fmt.Sprintf("cell %s holds more than one resource", tile.Pos)}
		}
		tile.Index = i
		g.Resources = append(g.Resources, tile)
		g.resourceAt[tile.Pos] = i
	}

	g.minCost = 0
	for _, cost := range costs {
		if g.minCost == 0 || cost < g.minCost {
			g.minCost = cost
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return len(g.Terrain) }

func (g *Grid) Cols() int { return len(g.Terrain[0]) }

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Cols()
}

// EntryCost returns the cost charged for entering the given cell.
func (g *Grid) EntryCost(c Coord) int {
	return g.Costs[g.Terrain[c.Row][c.Col]]
}

// MinEntryCost returns the cheapest terrain cost on the table. Heuristics use
// it as the optimistic per-step cost.
func (g *Grid) MinEntryCost() int {
	return g.minCost
}

// ResourceAt returns the resource tile on the cell, or nil if the cell is
// empty. Whether the tile has already been picked up is a property of the
// search state, not the grid.
func (g *Grid) ResourceAt(c Coord) *ResourceTile {
	i, ok := g.resourceAt[c]
	if !ok {
		return nil
	}
	return &g.Resources[i]
}

// neighborOffsets is the fixed expansion order: north, south, west, east.
// Keeping this order stable makes search results reproducible.
var neighborOffsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds orthogonal neighbors of c in fixed
// north/south/west/east order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := Coord{c.Row + d.Row, c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Base returns the base cell of the given agent.
func (g *Grid) Base(id AgentID) Coord {
	if id == AgentA {
		return g.BaseA
	}
	return g.BaseB
}
