package pathfinder

import "roomfinder/models"

// Grid is a Size x Size board of unit cells.
type Grid struct {
	Size int
}

func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// InBounds reports whether c lies in [0, Size) on both axes.
func (g Grid) InBounds(c models.Coordinate) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// steps is the fixed expansion order; it keeps results reproducible.
var steps = [4]models.Coordinate{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// Neighbors returns the in-bounds cells one step away from c.
func (g Grid) Neighbors(c models.Coordinate) []models.Coordinate {
	out := make([]models.Coordinate, 0, len(steps))
	for _, d := range steps {
		next := models.Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
		if g.InBounds(next) {
			out = append(out, next)
		}
	}
	return out
}

// Manhattan is |dx| + |dy|.
func Manhattan(a, b models.Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
