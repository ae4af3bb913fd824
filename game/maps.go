package game

import "fmt"

// Built-in 5x5 episode maps. The requirement is the same on all three:
// 3 stone, 2 iron, 1 crystal, with a bag capacity of 2.

// DefaultRequirement returns the standard 3/2/1 delivery requirement.
func DefaultRequirement() Requirement {
	var r Requirement
	r[Stone] = 3
	r[Iron] = 2
	r[Crystal] = 1
	return r
}

// DefaultCapacity is the standard backpack capacity.
const DefaultCapacity = 2

var mapTerrains = map[string][][]Terrain{
	// Map A: mostly grass with a few swamps and hills.
	"A": {
		{Grass, Grass, Grass, Hill, Grass},
		{Grass, Swamp, Grass, Grass, Grass},
		{Grass, Grass, Grass, Hill, Grass},
		{Grass, Swamp, Grass, Hill, Grass},
		{Grass, Grass, Grass, Grass, Grass},
	},
	// Map B: more swamp and hill, forcing detours.
	"B": {
		{Grass, Hill, Hill, Grass, Grass},
		{Swamp, Swamp, Hill, Grass, Grass},
		{Grass, Grass, Swamp, Swamp, Grass},
		{Grass, Hill, Grass, Hill, Grass},
		{Grass, Grass, Grass, Swamp, Grass},
	},
	// Map C: mountains (cost 4 but passable) and scattered swamp.
	"C": {
		{Grass, Mountain, Hill, Mountain, Grass},
		{Grass, Mountain, Swamp, Hill, Grass},
		{Grass, Grass, Mountain, Swamp, Grass},
		{Mountain, Hill, Grass, Hill, Mountain},
		{Grass, Grass, Grass, Grass, Grass},
	},
}

var mapResources = map[string][]ResourceTile{
	"A": {
		{Pos: Coord{1, 3}, Kind: Stone},
		{Pos: Coord{3, 0}, Kind: Stone},
		{Pos: Coord{4, 2}, Kind: Stone},
		{Pos: Coord{2, 1}, Kind: Iron},
		{Pos: Coord{4, 4}, Kind: Iron},
		{Pos: Coord{0, 4}, Kind: Crystal},
	},
	"B": {
		{Pos: Coord{0, 3}, Kind: Stone},
		{Pos: Coord{3, 0}, Kind: Stone},
		{Pos: Coord{4, 2}, Kind: Stone},
		{Pos: Coord{2, 4}, Kind: Iron},
		{Pos: Coord{4, 4}, Kind: Iron},
		{Pos: Coord{1, 4}, Kind: Crystal},
	},
	"C": {
		{Pos: Coord{1, 3}, Kind: Stone},
		{Pos: Coord{3, 2}, Kind: Stone},
		{Pos: Coord{4, 0}, Kind: Stone},
		{Pos: Coord{2, 4}, Kind: Iron},
		{Pos: Coord{4, 4}, Kind: Iron},
		{Pos: Coord{0, 4}, Kind: Crystal},
	},
}

// MapNames lists the built-in maps in selection order.
func MapNames() []string {
	return []string{"A", "B", "C"}
}

// BuiltinMap builds one of the built-in maps by name.
func BuiltinMap(name string) (*Grid, error) {
	terrain, ok := mapTerrains[name]
	if !ok {
		return nil, &ConfigError{Field: "map", Reason: fmt.Sprintf("unknown map %q", name)}
	}
	return NewGrid(terrain, mapResources[name], DefaultCosts(), DefaultRequirement(), DefaultCapacity)
}
