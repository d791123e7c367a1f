package grid

import "fmt"

// Position is an integer tile coordinate. It carries no bounds of its own.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a single cell of a map
type Tile struct {
	Position         Position
	Terrain          TerrainData
	OccupantID       string // empty when unoccupied
	ItemID           string // empty when no item
	IsChest          bool
	IsDoor           bool
	IsDeploymentZone bool
	FogRevealed      bool
}

// IsOccupied reports whether a unit id is recorded on the tile
func (t Tile) IsOccupied() bool {
	return t.OccupantID != ""
}

// Map is a battle map. Tiles are indexed [y][x] and Tiles[y][x].Position is always (x,y).
//
// Maps are treated as immutable values: operations that change a map return a
// new one. Callers must not write through Tiles of a map they did not just build.
type Map struct {
	ID              string
	Name            string
	Width           int
	Height          int
	GridType        GridType
	Tiles           [][]Tile
	DeploymentZones []Position
}

// InBounds reports whether the position lies on the map
func (m *Map) InBounds(p Position) bool {
	if m == nil {
		return false
	}
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height &&
		p.Y < len(m.Tiles) && p.X < len(m.Tiles[p.Y])
}

// TileAt returns a copy of the tile at p
func (m *Map) TileAt(p Position) (Tile, bool) {
	if !m.InBounds(p) {
		return Tile{}, false
	}
	return m.Tiles[p.Y][p.X], true
}

// Clone returns a deep copy sharing no slices with m
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}

	clone := *m
	clone.Tiles = make([][]Tile, len(m.Tiles))
	for y, row := range m.Tiles {
		clone.Tiles[y] = make([]Tile, len(row))
		copy(clone.Tiles[y], row)
	}

	if m.DeploymentZones != nil {
		clone.DeploymentZones = make([]Position, len(m.DeploymentZones))
		copy(clone.DeploymentZones, m.DeploymentZones)
	}

	return &clone
}

// WithRow returns a shallow copy of m whose row y is a private copy.
// All other rows are shared with m, which is safe because maps are never mutated in place.
func (m *Map) WithRow(y int) *Map {
	next := *m
	next.Tiles = make([][]Tile, len(m.Tiles))
	copy(next.Tiles, m.Tiles)

	row := make([]Tile, len(m.Tiles[y]))
	copy(row, m.Tiles[y])
	next.Tiles[y] = row

	return &next
}

// Positions returns every in-bounds position in row-major order
func (m *Map) Positions() []Position {
	if m == nil {
		return nil
	}
	out := make([]Position, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}
