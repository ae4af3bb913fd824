package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"harvest/game"
)

// File is the YAML episode configuration: a cost table, a bag capacity and
// one or more maps. Omitted costs and capacity fall back to the defaults.
//
//	capacity: 2
//	costs: {grass: 1, hill: 2, swamp: 3, mountain: 4}
//	maps:
//	  - name: A
//	    terrain:
//	      - "GGGHG"
//	      - "GSGGG"
//	    resources:
//	      - {row: 1, col: 3, kind: stone}
//	    requirement: {stone: 3, iron: 2, crystal: 1}
type File struct {
	Capacity int            `yaml:"capacity"`
	Costs    map[string]int `yaml:"costs"`
	Maps     []Map          `yaml:"maps"`
}

type Map struct {
	Name        string         `yaml:"name"`
	Terrain     []string       `yaml:"terrain"`
	Resources   []Resource     `yaml:"resources"`
	Requirement map[string]int `yaml:"requirement"`
}

type Resource struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Kind string `yaml:"kind"`
}

// Load reads and parses an episode configuration file.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &f, nil
}

// Grid builds the named map from the file. Numeric validation (positive
// costs, in-bounds resources) happens in game.NewGrid.
func (f *File) Grid(name string) (*game.Grid, error) {
	for _, m := range f.Maps {
		if m.Name == name {
			return f.build(m)
		}
	}
	return nil, &game.ConfigError{Field: "maps", Reason: fmt.Sprintf("no map named %q", name)}
}

func (f *File) build(m Map) (*game.Grid, error) {
	terrain := make([][]game.Terrain, len(m.Terrain))
	for r, row := range m.Terrain {
		terrain[r] = make([]game.Terrain, len(row))
		for c, symbol := range []byte(row) {
			t, err := terrainFromSymbol(symbol)
			if err != nil {
				return nil, err
			}
			terrain[r][c] = t
		}
	}

	resources := make([]game.ResourceTile, 0, len(m.Resources))
	for _, res := range m.Resources {
		kind, err := kindFromName(res.Kind)
		if err != nil {
			return nil, err
		}
		resources = append(resources, game.ResourceTile{
			Pos:  game.Coord{Row: res.Row, Col: res.Col},
			Kind: kind,
		})
	}

	costs := game.DefaultCosts()
	for name, cost := range f.Costs {
		t, err := terrainFromName(name)
		if err != nil {
			return nil, err
		}
		costs[t] = cost
	}

	required := game.DefaultRequirement()
	if m.Requirement != nil {
		required = game.Requirement{}
		for name, count := range m.Requirement {
			kind, err := kindFromName(name)
			if err != nil {
				return nil, err
			}
			required[kind] = count
		}
	}

	capacity := f.Capacity
	if capacity == 0 {
		capacity = game.DefaultCapacity
	}

	return game.NewGrid(terrain, resources, costs, required, capacity)
}

func terrainFromSymbol(symbol byte) (game.Terrain, error) {
	switch symbol {
	case 'G':
		return game.Grass, nil
	case 'H':
		return game.Hill, nil
	case 'S':
		return game.Swamp, nil
	case 'M':
		return game.Mountain, nil
	}
	return 0, &game.ConfigError{Field: "terrain", Reason: fmt.Sprintf("unknown terrain symbol %q", string(symbol))}
}

func terrainFromName(name string) (game.Terrain, error) {
	switch name {
	case "grass":
		return game.Grass, nil
	case "hill":
		return game.Hill, nil
	case "swamp":
		return game.Swamp, nil
	case "mountain":
		return game.Mountain, nil
	}
	return 0, &game.ConfigError{Field: "costs", Reason: fmt.Sprintf("unknown terrain %q", name)}
}

func kindFromName(name string) (game.ResourceKind, error) {
	switch name {
	case "stone":
		return game.Stone, nil
	case "iron":
		return game.Iron, nil
	case "crystal":
		return game.Crystal, nil
	}
	return 0, &game.ConfigError{Field: "resources", Reason: fmt.Sprintf("unknown resource kind %q", name)}
}
