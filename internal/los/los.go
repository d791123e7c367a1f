// Package los answers tile-to-tile line-of-sight questions using a
// rasterized line and a height-interpolated sightline.
package los

import "github.com/KirkDiggler/tactics-grid/internal/entities/grid"

// HasLineOfSight reports whether from can see to.
//
// Each tile strictly between the endpoints is checked against the sightline
// height linearly interpolated between the endpoint heights. Tiles no higher
// than from never block; taller tiles block when they rise above the sightline.
func HasLineOfSight(m *grid.Map, from, to grid.Position) bool {
	if !m.InBounds(from) || !m.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}

	fromHeight := m.Tiles[from.Y][from.X].Terrain.HeightLevel
	toHeight := m.Tiles[to.Y][to.X].Terrain.HeightLevel

	line := Line(from, to)
	last := len(line) - 1
	for i := 1; i < last; i++ {
		p := line[i]
		tile, ok := m.TileAt(p)
		if !ok {
			continue
		}

		h := tile.Terrain.HeightLevel
		if h <= fromHeight {
			continue
		}

		t := float64(i) / float64(last)
		sightline := float64(fromHeight) + float64(toHeight-fromHeight)*t
		if float64(h) > sightline {
			return false
		}
	}

	return true
}

// Line returns the Bresenham rasterization of the segment from a to b,
// including both endpoints, in order from a.
func Line(a, b grid.Position) []grid.Position {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	points := make([]grid.Position, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	err := dx + dy
	for {
		points = append(points, grid.Position{X: x, Y: y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
