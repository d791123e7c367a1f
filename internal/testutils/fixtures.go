package testutils

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/testutils/builders"
)

// Fixture teams
const (
	TeamPlayer = "player"
	TeamEnemy  = "enemy"
)

// OpenField returns an all-plains square map
func OpenField(width, height int) *grid.Map {
	return builders.NewMapBuilder(width, height, grid.GridTypeSquare).
		WithID("open-field").
		WithName("Open Field").
		Build()
}

// RiverCrossing returns a 7x5 square map split by a water column at x=3
// with a single bridge at (3,2)
func RiverCrossing() *grid.Map {
	return builders.NewMapBuilder(7, 5, grid.GridTypeSquare).
		WithID("river-crossing").
		WithName("River Crossing").
		WithTerrainColumn(grid.TerrainWater, 3).
		WithTerrain(grid.TerrainBridge, grid.Position{X: 3, Y: 2}).
		WithDeploymentZones(
			grid.Position{X: 0, Y: 1},
			grid.Position{X: 0, Y: 2},
			grid.Position{X: 0, Y: 3},
		).
		Build()
}

// Skirmish returns a player unit at (0,0) and an enemy at (4,4)
func Skirmish() []grid.Unit {
	return []grid.Unit{
		builders.NewUnitBuilder("hero", TeamPlayer).At(0, 0).Build(),
		builders.NewUnitBuilder("raider", TeamEnemy).At(4, 4).WithMovement(3).Build(),
	}
}
