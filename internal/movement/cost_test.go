package movement_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/movement"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
	"github.com/KirkDiggler/tactics-grid/internal/testutils"
	"github.com/KirkDiggler/tactics-grid/internal/testutils/builders"
)

type ModelTestSuite struct {
	suite.Suite
	units []grid.Unit
	m     *grid.Map
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) SetupTest() {
	s.units = []grid.Unit{
		builders.NewUnitBuilder("hero", testutils.TeamPlayer).At(0, 0).Build(),
		builders.NewUnitBuilder("ally", testutils.TeamPlayer).At(1, 0).Build(),
		builders.NewUnitBuilder("raider", testutils.TeamEnemy).At(2, 2).Build(),
		builders.NewUnitBuilder("fallen", testutils.TeamPlayer).At(0, 1).Dead().Build(),
	}
	s.m = builders.NewMapBuilder(5, 5, grid.GridTypeSquare).
		WithUnits(s.units...).
		WithOccupant(grid.Position{X: 4, Y: 0}, "ghost").
		WithTerrain(grid.TerrainWater, grid.Position{X: 0, Y: 4}).
		Build()
}

func (s *ModelTestSuite) model(origin grid.Position) *movement.Model {
	return movement.New(s.m, origin, grid.MovementFoot, s.units, rules.ZoneOfControlExtraCost)
}

func (s *ModelTestSuite) TestMoverResolvedFromOccupant() {
	mdl := s.model(grid.Position{X: 0, Y: 0})
	s.Require().NotNil(mdl.Mover())
	s.Equal("hero", mdl.Mover().ID)
}

func (s *ModelTestSuite) TestMoverResolvedFromPosition() {
	m := testutils.OpenField(3, 3)
	units := []grid.Unit{builders.NewUnitBuilder("scout", testutils.TeamPlayer).At(1, 1).Build()}

	mdl := movement.New(m, grid.Position{X: 1, Y: 1}, grid.MovementFoot, units, rules.ZoneOfControlExtraCost)
	s.Require().NotNil(mdl.Mover())
	s.Equal("scout", mdl.Mover().ID)
}

func (s *ModelTestSuite) TestZoneOfControl() {
	mdl := s.model(grid.Position{X: 0, Y: 0})

	for _, p := range []grid.Position{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}} {
		s.True(mdl.InZoneOfControl(p), p.String())
	}
	s.False(mdl.InZoneOfControl(grid.Position{X: 1, Y: 1}))
	s.False(mdl.InZoneOfControl(grid.Position{X: 2, Y: 2}))
}

func (s *ModelTestSuite) TestZoneOfControlExcludesOrigin() {
	mdl := s.model(grid.Position{X: 2, Y: 1})
	s.Nil(mdl.Mover())
	s.False(mdl.InZoneOfControl(grid.Position{X: 2, Y: 1}))

	units := append([]grid.Unit{}, s.units...)
	units[0].Position = &grid.Position{X: 2, Y: 1}
	mdl = movement.New(s.m, grid.Position{X: 2, Y: 1}, grid.MovementFoot, units, rules.ZoneOfControlExtraCost)
	s.False(mdl.InZoneOfControl(grid.Position{X: 2, Y: 1}))
	s.True(mdl.InZoneOfControl(grid.Position{X: 1, Y: 2}))
}

func (s *ModelTestSuite) TestStepCost() {
	mdl := s.model(grid.Position{X: 0, Y: 0})

	testCases := []struct {
		name     string
		pos      grid.Position
		cost     int
		passable bool
	}{
		{name: "open plains", pos: grid.Position{X: 1, Y: 1}, cost: 1, passable: true},
		{name: "friendly unit can be passed", pos: grid.Position{X: 1, Y: 0}, cost: 1, passable: true},
		{name: "zone of control adds the penalty", pos: grid.Position{X: 2, Y: 1}, cost: 4, passable: true},
		{name: "enemy blocks", pos: grid.Position{X: 2, Y: 2}},
		{name: "dead occupant blocks", pos: grid.Position{X: 0, Y: 1}},
		{name: "unknown occupant blocks", pos: grid.Position{X: 4, Y: 0}},
		{name: "water is impassable on foot", pos: grid.Position{X: 0, Y: 4}},
		{name: "off the map", pos: grid.Position{X: 5, Y: 0}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cost, ok := mdl.StepCost(tc.pos)
			s.Equal(tc.passable, ok)
			if tc.passable {
				s.Equal(tc.cost, cost)
			}
		})
	}
}

func (s *ModelTestSuite) TestFlyerCrossesWater() {
	mdl := movement.New(s.m, grid.Position{X: 0, Y: 0}, grid.MovementFlying, s.units, rules.ZoneOfControlExtraCost)

	cost, ok := mdl.StepCost(grid.Position{X: 0, Y: 4})
	s.True(ok)
	s.Equal(1, cost)
}

func (s *ModelTestSuite) TestCanStop() {
	mdl := s.model(grid.Position{X: 0, Y: 0})

	s.True(mdl.CanStop(grid.Position{X: 0, Y: 0}), "own tile")
	s.True(mdl.CanStop(grid.Position{X: 3, Y: 3}), "empty tile")
	s.False(mdl.CanStop(grid.Position{X: 1, Y: 0}), "friendly tile")
	s.False(mdl.CanStop(grid.Position{X: 2, Y: 2}), "enemy tile")
	s.False(mdl.CanStop(grid.Position{X: 9, Y: 9}), "off the map")
}

func (s *ModelTestSuite) TestNoMoverHasNoSides() {
	mdl := s.model(grid.Position{X: 3, Y: 3})
	s.Nil(mdl.Mover())

	s.False(mdl.InZoneOfControl(grid.Position{X: 2, Y: 3}))

	_, ok := mdl.StepCost(grid.Position{X: 2, Y: 2})
	s.True(ok, "living units are passable without a mover")
	s.False(mdl.CanStop(grid.Position{X: 2, Y: 2}))

	_, ok = mdl.StepCost(grid.Position{X: 4, Y: 0})
	s.False(ok, "unknown occupants still block")
}

func (s *ModelTestSuite) TestPathCost() {
	mdl := s.model(grid.Position{X: 0, Y: 0})

	cost, ok := mdl.PathCost([]grid.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	s.True(ok)
	s.Equal(2, cost)

	cost, ok = mdl.PathCost([]grid.Position{{X: 0, Y: 0}})
	s.True(ok)
	s.Zero(cost)

	_, ok = mdl.PathCost([]grid.Position{{X: 0, Y: 0}, {X: 2, Y: 0}})
	s.False(ok, "steps must be adjacent")

	_, ok = mdl.PathCost([]grid.Position{{X: 1, Y: 1}, {X: 0, Y: 1}})
	s.False(ok, "blocked step")

	_, ok = mdl.PathCost(nil)
	s.False(ok)
}
