// Package engine is the single entry point to the tile-grid core. It
// dispatches to the terrain, map, pathfinding, range, line-of-sight and fog
// packages and adds nothing but bounds checks.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/tactics-grid/internal/engine Engine

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
)

// Engine provides every spatial query a battle needs.
//
// All methods are synchronous and pure: a method that changes a map returns a
// new one and never alters its argument. Geometry queries signal invalid
// input with nil, empty slices or false; only DeserializeMap returns errors
// for bad data.
type Engine interface {
	// Map construction and edits
	CreateGrid(width, height int, gridType grid.GridType) *grid.Map
	LoadMap(m *grid.Map) *grid.Map
	GetTile(m *grid.Map, pos grid.Position) (grid.Tile, bool)
	IsInBounds(m *grid.Map, pos grid.Position) bool
	SetOccupant(m *grid.Map, pos grid.Position, unitID string) *grid.Map
	SetTerrain(m *grid.Map, pos grid.Position, terrainType grid.TerrainType) *grid.Map
	SetDeploymentZones(m *grid.Map, zones []grid.Position) *grid.Map

	// Topology and terrain
	GetAdjacentPositions(m *grid.Map, pos grid.Position) []grid.Position
	GetDistance(a, b grid.Position, gridType grid.GridType) int
	GetTerrainData(terrainType grid.TerrainType) grid.TerrainData

	// Movement
	FindPath(
		m *grid.Map,
		start, end grid.Position,
		movementBudget int,
		movementType grid.MovementType,
		units []grid.Unit,
	) []grid.Position
	PathCost(m *grid.Map, path []grid.Position, movementType grid.MovementType, units []grid.Unit) (int, bool)
	GetMovementRange(
		m *grid.Map,
		start grid.Position,
		movement int,
		movementType grid.MovementType,
		units []grid.Unit,
	) []grid.Position
	GetAttackRange(m *grid.Map, origins []grid.Position, minRange, maxRange int) []grid.Position
	CalculateDangerZone(m *grid.Map, enemies []grid.Unit) []grid.Position

	// Visibility
	GetLineOfSight(m *grid.Map, from, to grid.Position) bool
	ApplyFogOfWar(m *grid.Map, team string, units []grid.Unit) *grid.Map
	VisiblePositions(m *grid.Map) []grid.Position

	// Snapshots
	SerializeMap(m *grid.Map) (string, error)
	DeserializeMap(data string) (*grid.Map, error)

	// Rules returns the balance values the engine was built with
	Rules() rules.Rules
}
