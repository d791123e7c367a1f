package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/terrain"
)

func TestGetTerrainData(t *testing.T) {
	testCases := []struct {
		name     string
		terrain  grid.TerrainType
		costs    grid.MovementCosts
		passable grid.Passability
		defense  int
		evasion  int
		height   int
	}{
		{
			name:     "plains",
			terrain:  grid.TerrainPlains,
			costs:    grid.MovementCosts{1, 1, 1, 1},
			passable: grid.Passability{true, true, true, true},
		},
		{
			name:     "forest",
			terrain:  grid.TerrainForest,
			costs:    grid.MovementCosts{2, 3, 2, 1},
			passable: grid.Passability{true, true, true, true},
			defense:  1,
			evasion:  20,
		},
		{
			name:     "mountain blocks mounted and armored",
			terrain:  grid.TerrainMountain,
			costs:    grid.MovementCosts{4, grid.ImpassableCost, grid.ImpassableCost, 1},
			passable: grid.Passability{true, false, false, true},
			defense:  2,
			evasion:  30,
			height:   2,
		},
		{
			name:     "water only for flyers",
			terrain:  grid.TerrainWater,
			costs:    grid.MovementCosts{grid.ImpassableCost, grid.ImpassableCost, grid.ImpassableCost, 1},
			passable: grid.Passability{false, false, false, true},
		},
		{
			name:     "fortress",
			terrain:  grid.TerrainFortress,
			costs:    grid.MovementCosts{1, 1, 1, 1},
			passable: grid.Passability{true, true, true, true},
			defense:  3,
			evasion:  20,
			height:   1,
		},
		{
			name:    "void closed to everyone",
			terrain: grid.TerrainVoid,
			costs: grid.MovementCosts{
				grid.ImpassableCost, grid.ImpassableCost, grid.ImpassableCost, grid.ImpassableCost,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := terrain.GetTerrainData(tc.terrain)

			assert.Equal(t, tc.terrain, data.Type)
			assert.Equal(t, tc.costs, data.MovementCost)
			assert.Equal(t, tc.passable, data.Passable)
			assert.Equal(t, tc.defense, data.DefenseBonus)
			assert.Equal(t, tc.evasion, data.EvasionBonus)
			assert.Equal(t, tc.height, data.HeightLevel)
		})
	}
}

func TestEveryTerrainTypeHasAnEntry(t *testing.T) {
	for _, tt := range grid.AllTerrainTypes() {
		data := terrain.GetTerrainData(tt)
		assert.Equal(t, tt, data.Type)
		for _, mt := range grid.AllMovementTypes() {
			assert.Equal(t, terrain.IsPassableCost(data.MovementCost.For(mt)), data.Passable.For(mt),
				"%s/%s passability must follow cost", tt, mt)
		}
	}
}

func TestGetTerrainDataReturnsOwnedCopy(t *testing.T) {
	data := terrain.GetTerrainData(grid.TerrainForest)
	data.MovementCost[grid.MovementFoot] = 50
	data.Passable[grid.MovementFlying] = false

	again := terrain.GetTerrainData(grid.TerrainForest)
	assert.Equal(t, 2, again.MovementCost.For(grid.MovementFoot))
	assert.True(t, again.Passable.For(grid.MovementFlying))
}

func TestUnknownTerrainIsImpassable(t *testing.T) {
	data := terrain.GetTerrainData("quicksand")

	assert.Equal(t, grid.TerrainType("quicksand"), data.Type)
	for _, mt := range grid.AllMovementTypes() {
		assert.False(t, data.Passable.For(mt))
		assert.Equal(t, grid.ImpassableCost, data.MovementCost.For(mt))
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 3, terrain.MovementCost(grid.TerrainSwamp, grid.MovementFoot))
	assert.Equal(t, 4, terrain.MovementCost(grid.TerrainSwamp, grid.MovementMounted))
	assert.True(t, terrain.IsPassable(grid.TerrainLava, grid.MovementFlying))
	assert.False(t, terrain.IsPassable(grid.TerrainLava, grid.MovementArmored))
	assert.False(t, terrain.IsPassable(grid.TerrainPlains, grid.MovementType(9)))

	assert.True(t, terrain.IsPassableCost(98))
	assert.False(t, terrain.IsPassableCost(grid.ImpassableCost))
}
