// Package terrain is the static terrain catalog: movement cost per movement
// type, defense and evasion bonuses, height, and derived passability.
package terrain

import "github.com/KirkDiggler/tactics-grid/internal/entities/grid"

const no = grid.ImpassableCost

type entry struct {
	// foot, mounted, armored, flying
	costs   grid.MovementCosts
	defense int
	evasion int
	height  int
}

var catalog = map[grid.TerrainType]entry{
	grid.TerrainPlains:   {costs: grid.MovementCosts{1, 1, 1, 1}},
	grid.TerrainForest:   {costs: grid.MovementCosts{2, 3, 2, 1}, defense: 1, evasion: 20},
	grid.TerrainMountain: {costs: grid.MovementCosts{4, no, no, 1}, defense: 2, evasion: 30, height: 2},
	grid.TerrainWater:    {costs: grid.MovementCosts{no, no, no, 1}},
	grid.TerrainLava:     {costs: grid.MovementCosts{no, no, no, 1}},
	grid.TerrainFortress: {costs: grid.MovementCosts{1, 1, 1, 1}, defense: 3, evasion: 20, height: 1},
	grid.TerrainBridge:   {costs: grid.MovementCosts{1, 1, 1, 1}},
	grid.TerrainSwamp:    {costs: grid.MovementCosts{3, 4, 3, 1}, evasion: 10},
	grid.TerrainSand:     {costs: grid.MovementCosts{2, 3, 2, 1}, evasion: 5},
	grid.TerrainSnow:     {costs: grid.MovementCosts{2, 3, 2, 1}, evasion: 10},
	// Void is closed to flyers too
	grid.TerrainVoid: {costs: grid.MovementCosts{no, no, no, no}},
}

// GetTerrainData returns the catalog entry for t. The result is a fresh value
// the caller may modify freely. Unknown types come back as impassable Void-like
// terrain carrying the requested type.
func GetTerrainData(t grid.TerrainType) grid.TerrainData {
	e, ok := catalog[t]
	if !ok {
		e = catalog[grid.TerrainVoid]
	}

	data := grid.TerrainData{
		Type:         t,
		MovementCost: e.costs,
		DefenseBonus: e.defense,
		EvasionBonus: e.evasion,
		HeightLevel:  e.height,
	}
	for _, mt := range grid.AllMovementTypes() {
		data.Passable[mt] = IsPassableCost(e.costs.For(mt))
	}

	return data
}

// IsPassableCost reports whether a movement cost is below the impassable sentinel
func IsPassableCost(cost int) bool {
	return cost < grid.ImpassableCost
}

// MovementCost returns the catalog cost of t for mt
func MovementCost(t grid.TerrainType, mt grid.MovementType) int {
	return GetTerrainData(t).MovementCost.For(mt)
}

// IsPassable returns whether mt may enter terrain t
func IsPassable(t grid.TerrainType, mt grid.MovementType) bool {
	return GetTerrainData(t).Passable.For(mt)
}
