// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
)

// MapBuilder provides a fluent interface for building test maps
type MapBuilder struct {
	m *grid.Map
}

// NewMapBuilder creates a builder for an all-plains map
func NewMapBuilder(width, height int, gridType grid.GridType) *MapBuilder {
	m := gridmap.New(width, height, gridType)
	m.ID = "map-test-001"
	m.Name = "Test Map"
	return &MapBuilder{m: m}
}

// WithID sets the map ID
func (b *MapBuilder) WithID(id string) *MapBuilder {
	b.m.ID = id
	return b
}

// WithName sets the map name
func (b *MapBuilder) WithName(name string) *MapBuilder {
	b.m.Name = name
	return b
}

// WithTerrain sets the terrain of each listed position
func (b *MapBuilder) WithTerrain(t grid.TerrainType, positions ...grid.Position) *MapBuilder {
	for _, p := range positions {
		b.m = gridmap.SetTerrain(b.m, p, t)
	}
	return b
}

// WithTerrainRow sets the terrain of every tile in row y
func (b *MapBuilder) WithTerrainRow(t grid.TerrainType, y int) *MapBuilder {
	for x := 0; x < b.m.Width; x++ {
		b.m = gridmap.SetTerrain(b.m, grid.Position{X: x, Y: y}, t)
	}
	return b
}

// WithTerrainColumn sets the terrain of every tile in column x
func (b *MapBuilder) WithTerrainColumn(t grid.TerrainType, x int) *MapBuilder {
	for y := 0; y < b.m.Height; y++ {
		b.m = gridmap.SetTerrain(b.m, grid.Position{X: x, Y: y}, t)
	}
	return b
}

// WithOccupant places unitID on pos
func (b *MapBuilder) WithOccupant(pos grid.Position, unitID string) *MapBuilder {
	b.m = gridmap.SetOccupant(b.m, pos, unitID)
	return b
}

// WithUnits places every placed unit on its position
func (b *MapBuilder) WithUnits(units ...grid.Unit) *MapBuilder {
	for _, u := range units {
		if u.Position != nil {
			b.m = gridmap.SetOccupant(b.m, *u.Position, u.ID)
		}
	}
	return b
}

// WithDeploymentZones replaces the deployment zones
func (b *MapBuilder) WithDeploymentZones(positions ...grid.Position) *MapBuilder {
	b.m = gridmap.SetDeploymentZones(b.m, positions)
	return b
}

// WithItem puts an item on pos, optionally in a chest
func (b *MapBuilder) WithItem(pos grid.Position, itemID string, chest bool) *MapBuilder {
	b.m = b.m.Clone()
	b.m.Tiles[pos.Y][pos.X].ItemID = itemID
	b.m.Tiles[pos.Y][pos.X].IsChest = chest
	return b
}

// WithDoor marks pos as a door
func (b *MapBuilder) WithDoor(pos grid.Position) *MapBuilder {
	b.m = b.m.Clone()
	b.m.Tiles[pos.Y][pos.X].IsDoor = true
	return b
}

// Build returns the built map
func (b *MapBuilder) Build() *grid.Map {
	return b.m
}

// UnitBuilder provides a fluent interface for building test units
type UnitBuilder struct {
	unit grid.Unit
}

// NewUnitBuilder creates a living foot unit with 5 movement and no position
func NewUnitBuilder(id, team string) *UnitBuilder {
	return &UnitBuilder{
		unit: grid.Unit{
			ID:           id,
			Team:         team,
			IsAlive:      true,
			MovementType: grid.MovementFoot,
			CurrentStats: grid.UnitStats{Movement: 5},
		},
	}
}

// At places the unit on (x, y)
func (b *UnitBuilder) At(x, y int) *UnitBuilder {
	b.unit.Position = &grid.Position{X: x, Y: y}
	return b
}

// WithMovement sets the unit's movement points
func (b *UnitBuilder) WithMovement(movement int) *UnitBuilder {
	b.unit.CurrentStats.Movement = movement
	return b
}

// WithMovementType sets the unit's movement type
func (b *UnitBuilder) WithMovementType(mt grid.MovementType) *UnitBuilder {
	b.unit.MovementType = mt
	return b
}

// Dead marks the unit as not alive
func (b *UnitBuilder) Dead() *UnitBuilder {
	b.unit.IsAlive = false
	return b
}

// Build returns the built unit
func (b *UnitBuilder) Build() grid.Unit {
	return b.unit
}
