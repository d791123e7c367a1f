package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/ranges"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
	"github.com/KirkDiggler/tactics-grid/internal/testutils"
	"github.com/KirkDiggler/tactics-grid/internal/testutils/builders"
)

type RangesTestSuite struct {
	suite.Suite
	calc *ranges.Calculator
}

func TestRangesSuite(t *testing.T) {
	suite.Run(t, new(RangesTestSuite))
}

func (s *RangesTestSuite) SetupTest() {
	s.calc = ranges.NewCalculator(rules.Default())
}

func p(x, y int) grid.Position {
	return grid.Position{X: x, Y: y}
}

func (s *RangesTestSuite) TestMovementRangeOpenField() {
	m := testutils.OpenField(5, 5)

	s.Equal(
		[]grid.Position{p(2, 1), p(1, 2), p(2, 2), p(3, 2), p(2, 3)},
		s.calc.MovementRange(m, p(2, 2), 1, grid.MovementFoot, nil),
	)
	s.Equal([]grid.Position{p(2, 2)}, s.calc.MovementRange(m, p(2, 2), 0, grid.MovementFoot, nil))
}

func (s *RangesTestSuite) TestMovementRangeInvalidInput() {
	m := testutils.OpenField(3, 3)

	s.Empty(s.calc.MovementRange(m, p(1, 1), -1, grid.MovementFoot, nil))
	s.NotNil(s.calc.MovementRange(m, p(1, 1), -1, grid.MovementFoot, nil))
	s.Empty(s.calc.MovementRange(m, p(3, 1), 5, grid.MovementFoot, nil))
	s.Empty(s.calc.MovementRange(nil, p(0, 0), 5, grid.MovementFoot, nil))
}

func (s *RangesTestSuite) TestMovementRangeTerrain() {
	m := builders.NewMapBuilder(4, 1, grid.GridTypeSquare).
		WithTerrain(grid.TerrainForest, p(1, 0)).
		WithTerrain(grid.TerrainWater, p(3, 0)).
		Build()

	s.Equal([]grid.Position{p(0, 0), p(1, 0)}, s.calc.MovementRange(m, p(0, 0), 2, grid.MovementFoot, nil))
	s.Equal([]grid.Position{p(0, 0), p(1, 0), p(2, 0)}, s.calc.MovementRange(m, p(0, 0), 3, grid.MovementFoot, nil))
	s.Equal(
		[]grid.Position{p(0, 0), p(1, 0), p(2, 0), p(3, 0)},
		s.calc.MovementRange(m, p(0, 0), 3, grid.MovementFlying, nil),
	)
}

func (s *RangesTestSuite) TestMovementRangePassesAlliesButDoesNotStop() {
	units := []grid.Unit{
		builders.NewUnitBuilder("hero", testutils.TeamPlayer).At(0, 0).Build(),
		builders.NewUnitBuilder("ally", testutils.TeamPlayer).At(1, 0).Build(),
	}
	m := builders.NewMapBuilder(4, 1, grid.GridTypeSquare).WithUnits(units...).Build()

	s.Equal([]grid.Position{p(0, 0), p(2, 0)}, s.calc.MovementRange(m, p(0, 0), 2, grid.MovementFoot, units))
}

func (s *RangesTestSuite) TestMovementRangeZoneOfControl() {
	units := []grid.Unit{
		builders.NewUnitBuilder("hero", testutils.TeamPlayer).At(0, 0).Build(),
		builders.NewUnitBuilder("raider", testutils.TeamEnemy).At(2, 0).Build(),
	}
	m := builders.NewMapBuilder(3, 1, grid.GridTypeSquare).WithUnits(units...).Build()

	s.Equal([]grid.Position{p(0, 0)}, s.calc.MovementRange(m, p(0, 0), 3, grid.MovementFoot, units))
	s.Equal([]grid.Position{p(0, 0), p(1, 0)}, s.calc.MovementRange(m, p(0, 0), 4, grid.MovementFoot, units))
}

func (s *RangesTestSuite) TestMovementRangeTerminatesOnNonPositiveCosts() {
	m := testutils.OpenField(3, 1).Clone()
	m.Tiles[0][0].Terrain.MovementCost[grid.MovementFoot] = -1
	m.Tiles[0][1].Terrain.MovementCost[grid.MovementFoot] = 0

	s.Equal(
		[]grid.Position{p(0, 0), p(1, 0), p(2, 0)},
		s.calc.MovementRange(m, p(0, 0), 2, grid.MovementFoot, nil),
	)
	s.Equal(
		[]grid.Position{p(0, 0), p(1, 0)},
		s.calc.MovementRange(m, p(0, 0), 1, grid.MovementFoot, nil),
	)
}

func (s *RangesTestSuite) TestAttackRange() {
	m := testutils.OpenField(5, 5)

	s.Equal(
		[]grid.Position{p(2, 1), p(1, 2), p(3, 2), p(2, 3)},
		ranges.AttackRange(m, []grid.Position{p(2, 2)}, 1, 1),
	)
	s.Equal(
		[]grid.Position{p(2, 0), p(1, 1), p(3, 1), p(0, 2), p(4, 2), p(1, 3), p(3, 3), p(2, 4)},
		ranges.AttackRange(m, []grid.Position{p(2, 2)}, 2, 2),
	)
	s.Equal(
		[]grid.Position{p(2, 1), p(1, 2), p(3, 2), p(2, 3)},
		ranges.AttackRange(m, []grid.Position{p(2, 2)}, 0, 1),
		"origins are never targets",
	)
}

func (s *RangesTestSuite) TestAttackRangeMultipleOrigins() {
	m := testutils.OpenField(3, 2)

	s.Equal(
		[]grid.Position{p(2, 0), p(0, 1), p(1, 1)},
		ranges.AttackRange(m, []grid.Position{p(0, 0), p(1, 0)}, 1, 1),
	)
}

func (s *RangesTestSuite) TestAttackRangeHex() {
	m := gridHex(5, 5)
	s.Len(ranges.AttackRange(m, []grid.Position{p(2, 2)}, 1, 1), 6)
	s.Len(ranges.AttackRange(m, []grid.Position{p(2, 2)}, 1, 2), 18)
}

func (s *RangesTestSuite) TestAttackRangeInvalid() {
	m := testutils.OpenField(3, 3)

	s.Empty(ranges.AttackRange(m, []grid.Position{p(1, 1)}, -1, 1))
	s.Empty(ranges.AttackRange(m, []grid.Position{p(1, 1)}, 2, 1))
	s.Empty(ranges.AttackRange(m, nil, 1, 2))
	s.Empty(ranges.AttackRange(nil, []grid.Position{p(1, 1)}, 1, 2))
}

func (s *RangesTestSuite) TestDangerZone() {
	m := testutils.OpenField(5, 5)
	enemies := []grid.Unit{builders.NewUnitBuilder("raider", testutils.TeamEnemy).At(4, 4).WithMovement(3).Build()}

	zone := s.calc.DangerZone(m, enemies)

	s.Len(zone, 19)
	s.Contains(zone, p(4, 4))
	s.Contains(zone, p(0, 3))
	s.NotContains(zone, p(0, 2))
	s.Equal(p(3, 0), zone[0], "row-major order")
}

func (s *RangesTestSuite) TestDangerZoneUsesRules() {
	calc := ranges.NewCalculator(rules.Rules{ZoneOfControlCost: 3, DangerMinRange: 0, DangerMaxRange: 0})
	m := testutils.OpenField(5, 5)
	enemies := []grid.Unit{builders.NewUnitBuilder("raider", testutils.TeamEnemy).At(4, 4).WithMovement(3).Build()}

	s.Len(calc.DangerZone(m, enemies), 10)
}

func (s *RangesTestSuite) TestDangerZoneIgnoresDeadAndUnplaced() {
	m := testutils.OpenField(5, 5)
	enemies := []grid.Unit{
		builders.NewUnitBuilder("corpse", testutils.TeamEnemy).At(4, 4).Dead().Build(),
		builders.NewUnitBuilder("reserve", testutils.TeamEnemy).Build(),
	}

	s.Empty(s.calc.DangerZone(m, enemies))
}

func gridHex(w, h int) *grid.Map {
	return builders.NewMapBuilder(w, h, grid.GridTypeHex).Build()
}
