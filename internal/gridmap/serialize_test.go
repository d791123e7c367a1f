package gridmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/testutils"
	"github.com/KirkDiggler/tactics-grid/internal/testutils/builders"
)

func detailedMap() *grid.Map {
	m := builders.NewMapBuilder(4, 3, grid.GridTypeHex).
		WithID("keep").
		WithName("The Keep").
		WithTerrain(grid.TerrainFortress, grid.Position{X: 1, Y: 1}).
		WithTerrainRow(grid.TerrainSwamp, 2).
		WithOccupant(grid.Position{X: 0, Y: 0}, "hero").
		WithItem(grid.Position{X: 3, Y: 0}, "potion", true).
		WithDoor(grid.Position{X: 2, Y: 1}).
		WithDeploymentZones(grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 1}).
		Build()
	m.Tiles[1][2].FogRevealed = true
	return m
}

// mutate decodes a snapshot, applies fn to the generic JSON and re-encodes it
func mutate(t *testing.T, m *grid.Map, fn func(doc map[string]any)) string {
	t.Helper()

	data, err := gridmap.Serialize(m)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &doc))
	fn(doc)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(out)
}

func TestSerializeRoundTrip(t *testing.T) {
	for _, m := range []*grid.Map{detailedMap(), testutils.RiverCrossing(), testutils.OpenField(1, 1)} {
		t.Run(m.ID, func(t *testing.T) {
			data, err := gridmap.Serialize(m)
			require.NoError(t, err)

			decoded, err := gridmap.Deserialize(data)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
		})
	}
}

func TestSerializeWireFormat(t *testing.T) {
	data, err := gridmap.Serialize(detailedMap())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &doc))

	assert.Equal(t, "keep", doc["id"])
	assert.Equal(t, "hex", doc["gridType"])

	tiles := doc["tiles"].([]any)
	first := tiles[0].([]any)[0].(map[string]any)
	assert.Equal(t, "hero", first["occupantId"])
	assert.Nil(t, first["itemId"])
	assert.Contains(t, first, "itemId", "empty ids are written as null")

	terrainDoc := first["terrain"].(map[string]any)
	assert.Equal(t, "plains", terrainDoc["type"])
	assert.Equal(t, map[string]any{"foot": 1.0, "mounted": 1.0, "armored": 1.0, "flying": 1.0}, terrainDoc["movementCost"])
}

func TestSerializeNil(t *testing.T) {
	_, err := gridmap.Serialize(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDeserializedMapIsIndependent(t *testing.T) {
	data, err := gridmap.Serialize(detailedMap())
	require.NoError(t, err)

	a, err := gridmap.Deserialize(data)
	require.NoError(t, err)
	b, err := gridmap.Deserialize(data)
	require.NoError(t, err)

	a.Tiles[0][0].OccupantID = "someone-else"
	assert.Equal(t, "hero", b.Tiles[0][0].OccupantID)
}

func TestDeserializeParseError(t *testing.T) {
	for _, text := range []string{"", "{", "{not json}", `{"id": "x",}`} {
		_, err := gridmap.Deserialize(text)
		require.Error(t, err, text)
		assert.True(t, gridmap.IsParseError(err), text)
		assert.False(t, gridmap.IsValidationError(err), text)
	}
}

func TestDeserializeRowLengthMismatch(t *testing.T) {
	data := mutate(t, testutils.OpenField(3, 2), func(doc map[string]any) {
		rows := doc["tiles"].([]any)
		rows[1] = rows[1].([]any)[:2]
	})

	_, err := gridmap.Deserialize(data)
	require.Error(t, err)
	assert.True(t, gridmap.IsValidationError(err))
	assert.False(t, gridmap.IsParseError(err))

	fields := errors.GetFieldErrors(err)
	assert.Contains(t, fields, "tiles[1]")
}

func TestDeserializeValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(doc map[string]any)
		field  string
	}{
		{
			name:   "missing width",
			mutate: func(doc map[string]any) { delete(doc, "width") },
			field:  "width",
		},
		{
			name:   "zero height",
			mutate: func(doc map[string]any) { doc["height"] = 0 },
			field:  "height",
		},
		{
			name:   "fractional width",
			mutate: func(doc map[string]any) { doc["width"] = 2.5 },
			field:  "width",
		},
		{
			name:   "unknown grid type",
			mutate: func(doc map[string]any) { doc["gridType"] = "triangle" },
			field:  "gridType",
		},
		{
			name:   "wrong row count",
			mutate: func(doc map[string]any) { doc["tiles"] = doc["tiles"].([]any)[:1] },
			field:  "tiles",
		},
		{
			name: "tile position disagrees with its index",
			mutate: func(doc map[string]any) {
				tile := doc["tiles"].([]any)[0].([]any)[1].(map[string]any)
				tile["position"] = map[string]any{"x": 0, "y": 0}
			},
			field: "tiles[0][1].position",
		},
		{
			name: "unknown terrain type",
			mutate: func(doc map[string]any) {
				tile := doc["tiles"].([]any)[1].([]any)[0].(map[string]any)
				tile["terrain"].(map[string]any)["type"] = "quicksand"
			},
			field: "tiles[1][0].terrain.type",
		},
		{
			name: "missing movement cost entry",
			mutate: func(doc map[string]any) {
				tile := doc["tiles"].([]any)[0].([]any)[0].(map[string]any)
				delete(tile["terrain"].(map[string]any)["movementCost"].(map[string]any), "flying")
			},
			field: "tiles[0][0].terrain.movementCost.flying",
		},
		{
			name: "negative movement cost",
			mutate: func(doc map[string]any) {
				setTerrainField(doc, "movementCost", "foot", -1)
			},
			field: "tiles[0][0].terrain.movementCost.foot",
		},
		{
			name: "zero movement cost",
			mutate: func(doc map[string]any) {
				setTerrainField(doc, "movementCost", "flying", 0)
			},
			field: "tiles[0][0].terrain.movementCost.flying",
		},
		{
			name: "passable flag on impassable cost",
			mutate: func(doc map[string]any) {
				setTerrainField(doc, "movementCost", "armored", grid.ImpassableCost)
			},
			field: "tiles[0][0].terrain.passable.armored",
		},
		{
			name: "impassable flag on passable cost",
			mutate: func(doc map[string]any) {
				setTerrainField(doc, "passable", "mounted", false)
			},
			field: "tiles[0][0].terrain.passable.mounted",
		},
		{
			name: "occupant of the wrong type",
			mutate: func(doc map[string]any) {
				tile := doc["tiles"].([]any)[0].([]any)[0].(map[string]any)
				tile["occupantId"] = 7
			},
			field: "tiles[0][0].occupantId",
		},
		{
			name: "deployment zone off the map",
			mutate: func(doc map[string]any) {
				doc["deploymentZones"] = []any{map[string]any{"x": 5, "y": 0}}
			},
			field: "deploymentZones[0]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := mutate(t, testutils.OpenField(2, 2), tc.mutate)

			m, err := gridmap.Deserialize(data)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, gridmap.IsValidationError(err))
			assert.Contains(t, errors.GetFieldErrors(err), tc.field)
		})
	}
}

func setTerrainField(doc map[string]any, table, movementType string, value any) {
	tile := doc["tiles"].([]any)[0].([]any)[0].(map[string]any)
	tile["terrain"].(map[string]any)[table].(map[string]any)[movementType] = value
}

func TestDeserializeTerrainCostsAgreeWithPassability(t *testing.T) {
	water := builders.NewMapBuilder(2, 1, grid.GridTypeSquare).
		WithTerrain(grid.TerrainWater, grid.Position{X: 1, Y: 0}).
		Build()
	data, err := gridmap.Serialize(water)
	require.NoError(t, err)

	m, err := gridmap.Deserialize(data)
	require.NoError(t, err)
	assert.False(t, m.Tiles[0][1].Terrain.Passable.For(grid.MovementFoot))
	assert.True(t, m.Tiles[0][1].Terrain.Passable.For(grid.MovementFlying))
}

func TestDeserializeBadCostReportsOnlyTheCost(t *testing.T) {
	data := mutate(t, testutils.OpenField(1, 1), func(doc map[string]any) {
		setTerrainField(doc, "movementCost", "foot", "cheap")
	})

	_, err := gridmap.Deserialize(data)
	require.Error(t, err)

	fields := errors.GetFieldErrors(err)
	assert.Equal(t, []string{"must be a number"}, fields["tiles[0][0].terrain.movementCost.foot"])
	assert.NotContains(t, fields, "tiles[0][0].terrain.passable.foot")
}

func TestDeserializeReportsEveryProblem(t *testing.T) {
	data := mutate(t, testutils.OpenField(2, 2), func(doc map[string]any) {
		delete(doc, "name")
		doc["gridType"] = "triangle"
	})

	_, err := gridmap.Deserialize(data)
	require.Error(t, err)

	fields := errors.GetFieldErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "gridType")
}

func TestDeserializeNonObject(t *testing.T) {
	_, err := gridmap.Deserialize(`[1, 2, 3]`)
	require.Error(t, err)
	assert.True(t, gridmap.IsValidationError(err))
	assert.Contains(t, errors.GetFieldErrors(err), "map")
}
