// Package gridmap builds and edits battle maps. Every edit is copy-on-write:
// it returns a new *grid.Map and leaves the map it was given untouched.
package gridmap

import (
	"sort"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/terrain"
	"github.com/KirkDiggler/tactics-grid/internal/topology"
)

// New creates a width x height map of Plains with all tile metadata defaulted.
// Non-positive dimensions produce a map with no tiles.
func New(width, height int, gridType grid.GridType) *grid.Map {
	m := &grid.Map{
		Width:           width,
		Height:          height,
		GridType:        gridType,
		DeploymentZones: []grid.Position{},
	}
	if width <= 0 || height <= 0 {
		m.Tiles = [][]grid.Tile{}
		return m
	}

	m.Tiles = make([][]grid.Tile, height)
	for y := 0; y < height; y++ {
		row := make([]grid.Tile, width)
		for x := 0; x < width; x++ {
			row[x] = grid.Tile{
				Position: grid.Position{X: x, Y: y},
				Terrain:  terrain.GetTerrainData(grid.TerrainPlains),
			}
		}
		m.Tiles[y] = row
	}

	return m
}

// Load returns a full structural copy of m. The result shares no rows or
// deployment-zone storage with the source.
func Load(m *grid.Map) *grid.Map {
	return m.Clone()
}

// GetTile returns the tile at pos, or false when pos is off the map
func GetTile(m *grid.Map, pos grid.Position) (grid.Tile, bool) {
	return m.TileAt(pos)
}

// IsInBounds reports whether pos lies on m
func IsInBounds(m *grid.Map, pos grid.Position) bool {
	return m.InBounds(pos)
}

// SetOccupant returns a map whose tile at pos records unitID as occupant.
// An empty unitID clears the tile. Off-map positions return m itself.
func SetOccupant(m *grid.Map, pos grid.Position, unitID string) *grid.Map {
	if !m.InBounds(pos) {
		return m
	}

	next := m.WithRow(pos.Y)
	next.Tiles[pos.Y][pos.X].OccupantID = unitID
	return next
}

// SetTerrain returns a map whose tile at pos has the catalog data of t.
// Off-map positions and unknown terrain return m itself.
func SetTerrain(m *grid.Map, pos grid.Position, t grid.TerrainType) *grid.Map {
	if !m.InBounds(pos) || !t.IsValid() {
		return m
	}

	next := m.WithRow(pos.Y)
	next.Tiles[pos.Y][pos.X].Terrain = terrain.GetTerrainData(t)
	return next
}

// SetDeploymentZones returns a map whose deployment list and tile flags match
// zones. Off-map and duplicate entries are dropped.
func SetDeploymentZones(m *grid.Map, zones []grid.Position) *grid.Map {
	if m == nil {
		return nil
	}

	next := m.Clone()
	for y := range next.Tiles {
		for x := range next.Tiles[y] {
			next.Tiles[y][x].IsDeploymentZone = false
		}
	}

	seen := make(map[grid.Position]bool, len(zones))
	next.DeploymentZones = make([]grid.Position, 0, len(zones))
	for _, z := range zones {
		if !next.InBounds(z) || seen[z] {
			continue
		}
		seen[z] = true
		next.DeploymentZones = append(next.DeploymentZones, z)
		next.Tiles[z.Y][z.X].IsDeploymentZone = true
	}

	return next
}

// AdjacentPositions returns the in-bounds neighbors of pos for the map's grid type
func AdjacentPositions(m *grid.Map, pos grid.Position) []grid.Position {
	if m == nil {
		return nil
	}

	candidates := topology.For(m.GridType).Neighbors(pos)
	out := candidates[:0]
	for _, c := range candidates {
		if m.InBounds(c) {
			out = append(out, c)
		}
	}
	return out
}

// Distance returns the grid distance between a and b for gridType
func Distance(a, b grid.Position, gridType grid.GridType) int {
	return topology.For(gridType).Distance(a, b)
}

// VisiblePositions returns the fog-revealed positions of m in row-major order
func VisiblePositions(m *grid.Map) []grid.Position {
	if m == nil {
		return nil
	}

	var out []grid.Position
	for _, row := range m.Tiles {
		for _, t := range row {
			if t.FogRevealed {
				out = append(out, t.Position)
			}
		}
	}
	return out
}

// SortPositions orders positions row-major (by y, then x)
func SortPositions(positions []grid.Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
}
