// Package topology owns the adjacency and distance rules of the two grid types.
// Every algorithm picks its Topology once per call through For, so square and
// hex rules live in exactly one place.
package topology

import "github.com/KirkDiggler/tactics-grid/internal/entities/grid"

// Topology describes neighbor and distance rules for a grid type
type Topology interface {
	// Neighbors returns the adjacent positions of p, without bounds filtering
	Neighbors(p grid.Position) []grid.Position

	// Distance returns the step distance between a and b.
	// It is symmetric and satisfies the triangle inequality.
	Distance(a, b grid.Position) int
}

// For returns the topology for the grid type. Unknown types fall back to square.
func For(gridType grid.GridType) Topology {
	if gridType == grid.GridTypeHex {
		return Hex{}
	}
	return Square{}
}

// Square is a 4-connected square grid measured with Manhattan distance
type Square struct{}

var squareDirections = [4]grid.Position{
	{X: 0, Y: -1}, // up
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
}

// Neighbors returns up, right, down, left
func (Square) Neighbors(p grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(squareDirections))
	for _, d := range squareDirections {
		out = append(out, grid.Position{X: p.X + d.X, Y: p.Y + d.Y})
	}
	return out
}

// Distance returns the Manhattan distance
func (Square) Distance(a, b grid.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Hex is a pointy-top hex grid in odd-row offset coordinates:
// odd rows are shoved half a hex to the right.
type Hex struct{}

var hexDirections = [2][6]grid.Position{
	// even rows
	{{X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
	// odd rows
	{{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

// Neighbors returns the six neighbors chosen by row parity
func (Hex) Neighbors(p grid.Position) []grid.Position {
	dirs := hexDirections[p.Y&1]
	out := make([]grid.Position, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, grid.Position{X: p.X + d.X, Y: p.Y + d.Y})
	}
	return out
}

// Distance converts both positions to cube coordinates and returns the
// largest axis delta
func (Hex) Distance(a, b grid.Position) int {
	ac := ToCube(a)
	bc := ToCube(b)
	return max(abs(ac.Q-bc.Q), abs(ac.R-bc.R), abs(ac.S-bc.S))
}

// Cube is a hex position in cube coordinates. Q+R+S is always zero.
type Cube struct {
	Q, R, S int
}

// ToCube converts an odd-row offset position to cube coordinates
func ToCube(p grid.Position) Cube {
	q := p.X - (p.Y-(p.Y&1))/2
	r := p.Y
	return Cube{Q: q, R: r, S: -q - r}
}

// FromCube converts cube coordinates back to an odd-row offset position
func FromCube(c Cube) grid.Position {
	return grid.Position{X: c.Q + (c.R-(c.R&1))/2, Y: c.R}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
