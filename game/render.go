package game

import (
	"fmt"
	"strings"
)

// terrain symbols for ASCII rendering
var terrainSymbols = map[Terrain]string{
	Grass:    ".",
	Hill:     "^",
	Swamp:    "~",
	Mountain: "#",
}

var resourceSymbols = map[ResourceKind]string{
	Stone:   "S",
	Iron:    "I",
	Crystal: "C",
}

// Render draws the grid in ASCII: terrain as . ^ ~ #, base A as B, resources
// as S/I/C, and cells on the given path as *.
func Render(g *Grid, path []Coord) string {
	onPath := make(map[Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		row := make([]string, 0, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cell := Coord{r, c}
			ch := terrainSymbols[g.Terrain[r][c]]
			if tile := g.ResourceAt(cell); tile != nil {
				ch = resourceSymbols[tile.Kind]
			}
			if cell == g.BaseA {
				ch = "B"
			} else if onPath[cell] {
				ch = "*"
			}
			row = append(row, ch)
		}
		b.WriteString(strings.Join(row, " "))
		if r < g.Rows()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatPath prints a path as a plain list of (row,col) pairs in traversal
// order.
func FormatPath(path []Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FormatDelivered pretty-prints delivered counts per kind.
func FormatDelivered(d [NumResourceKinds]int8) string {
	return fmt.Sprintf("{Stone:%d, Iron:%d, Crystal:%d}", d[Stone], d[Iron], d[Crystal])
}
