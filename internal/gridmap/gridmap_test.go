package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/testutils"
)

type GridMapTestSuite struct {
	suite.Suite
}

func TestGridMapSuite(t *testing.T) {
	suite.Run(t, new(GridMapTestSuite))
}

func (s *GridMapTestSuite) TestNewBuildsPlains() {
	m := gridmap.New(3, 2, grid.GridTypeHex)

	s.Equal(3, m.Width)
	s.Equal(2, m.Height)
	s.Equal(grid.GridTypeHex, m.GridType)
	s.NotNil(m.DeploymentZones)
	s.Empty(m.DeploymentZones)
	s.Require().Len(m.Tiles, 2)

	for y, row := range m.Tiles {
		s.Require().Len(row, 3)
		for x, tile := range row {
			s.Equal(grid.Position{X: x, Y: y}, tile.Position)
			s.Equal(grid.TerrainPlains, tile.Terrain.Type)
			s.False(tile.IsOccupied())
			s.False(tile.IsDeploymentZone)
			s.False(tile.FogRevealed)
		}
	}
}

func (s *GridMapTestSuite) TestNewWithoutArea() {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		m := gridmap.New(dims[0], dims[1], grid.GridTypeSquare)
		s.Empty(m.Tiles)
		s.False(gridmap.IsInBounds(m, grid.Position{}))
	}
}

func (s *GridMapTestSuite) TestSetOccupantIsCopyOnWrite() {
	original := testutils.OpenField(3, 3)
	p := grid.Position{X: 1, Y: 2}

	edited := gridmap.SetOccupant(original, p, "hero")

	s.NotSame(original, edited)
	s.Equal("hero", edited.Tiles[2][1].OccupantID)
	s.Empty(original.Tiles[2][1].OccupantID)

	cleared := gridmap.SetOccupant(edited, p, "")
	s.Empty(cleared.Tiles[2][1].OccupantID)
	s.Equal("hero", edited.Tiles[2][1].OccupantID)
}

func (s *GridMapTestSuite) TestEditsOffMapReturnSameMap() {
	m := testutils.OpenField(2, 2)
	off := grid.Position{X: 2, Y: 0}

	s.Same(m, gridmap.SetOccupant(m, off, "hero"))
	s.Same(m, gridmap.SetTerrain(m, off, grid.TerrainForest))
	s.Same(m, gridmap.SetTerrain(m, grid.Position{}, "quicksand"))
}

func (s *GridMapTestSuite) TestSetTerrainUsesCatalog() {
	m := testutils.OpenField(2, 2)

	edited := gridmap.SetTerrain(m, grid.Position{X: 1, Y: 0}, grid.TerrainMountain)

	tile, ok := gridmap.GetTile(edited, grid.Position{X: 1, Y: 0})
	s.Require().True(ok)
	s.Equal(grid.TerrainMountain, tile.Terrain.Type)
	s.Equal(2, tile.Terrain.HeightLevel)
	s.False(tile.Terrain.Passable.For(grid.MovementMounted))
	s.Equal(grid.TerrainPlains, m.Tiles[0][1].Terrain.Type)
}

func (s *GridMapTestSuite) TestSetDeploymentZones() {
	m := testutils.RiverCrossing()

	edited := gridmap.SetDeploymentZones(m, []grid.Position{
		{X: 6, Y: 0},
		{X: 6, Y: 0},
		{X: 9, Y: 9},
		{X: 6, Y: 4},
	})

	s.Equal([]grid.Position{{X: 6, Y: 0}, {X: 6, Y: 4}}, edited.DeploymentZones)
	s.True(edited.Tiles[0][6].IsDeploymentZone)
	s.True(edited.Tiles[4][6].IsDeploymentZone)
	s.False(edited.Tiles[2][0].IsDeploymentZone, "old zones are cleared")

	s.True(m.Tiles[2][0].IsDeploymentZone, "source map keeps its zones")
	s.Len(m.DeploymentZones, 3)
}

func (s *GridMapTestSuite) TestLoadSharesNothing() {
	m := testutils.RiverCrossing()

	loaded := gridmap.Load(m)
	s.Equal(m, loaded)

	loaded.Tiles[0][0].OccupantID = "intruder"
	loaded.DeploymentZones[0] = grid.Position{X: 5, Y: 5}

	s.Empty(m.Tiles[0][0].OccupantID)
	s.Equal(grid.Position{X: 0, Y: 1}, m.DeploymentZones[0])
}

func (s *GridMapTestSuite) TestAdjacentPositions() {
	square := testutils.OpenField(3, 3)
	s.Equal(
		[]grid.Position{{X: 1, Y: 0}, {X: 0, Y: 1}},
		gridmap.AdjacentPositions(square, grid.Position{X: 0, Y: 0}),
	)
	s.Len(gridmap.AdjacentPositions(square, grid.Position{X: 1, Y: 1}), 4)

	hex := gridmap.New(3, 3, grid.GridTypeHex)
	s.Len(gridmap.AdjacentPositions(hex, grid.Position{X: 1, Y: 1}), 6)
	s.ElementsMatch(
		[]grid.Position{{X: 1, Y: 0}, {X: 0, Y: 1}},
		gridmap.AdjacentPositions(hex, grid.Position{X: 0, Y: 0}),
	)

	s.Nil(gridmap.AdjacentPositions(nil, grid.Position{}))
}

func (s *GridMapTestSuite) TestDistance() {
	s.Equal(4, gridmap.Distance(grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2}, grid.GridTypeSquare))
	s.Equal(3, gridmap.Distance(grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2}, grid.GridTypeHex))
}

func (s *GridMapTestSuite) TestVisiblePositions() {
	m := testutils.OpenField(3, 2).Clone()
	m.Tiles[1][0].FogRevealed = true
	m.Tiles[0][2].FogRevealed = true

	s.Equal([]grid.Position{{X: 2, Y: 0}, {X: 0, Y: 1}}, gridmap.VisiblePositions(m))
	s.Empty(gridmap.VisiblePositions(testutils.OpenField(2, 2)))
}

func (s *GridMapTestSuite) TestSortPositions() {
	positions := []grid.Position{{X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	gridmap.SortPositions(positions)

	s.Equal([]grid.Position{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}}, positions)
}
