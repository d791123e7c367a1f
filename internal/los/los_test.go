package los_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/los"
	"github.com/KirkDiggler/tactics-grid/internal/testutils"
	"github.com/KirkDiggler/tactics-grid/internal/testutils/builders"
)

func p(x, y int) grid.Position {
	return grid.Position{X: x, Y: y}
}

func TestLine(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     grid.Position
		expected []grid.Position
	}{
		{name: "single point", a: p(2, 2), b: p(2, 2), expected: []grid.Position{p(2, 2)}},
		{name: "horizontal", a: p(0, 0), b: p(3, 0), expected: []grid.Position{p(0, 0), p(1, 0), p(2, 0), p(3, 0)}},
		{name: "vertical upward", a: p(1, 3), b: p(1, 1), expected: []grid.Position{p(1, 3), p(1, 2), p(1, 1)}},
		{name: "diagonal", a: p(0, 0), b: p(2, 2), expected: []grid.Position{p(0, 0), p(1, 1), p(2, 2)}},
		{name: "shallow slope", a: p(0, 0), b: p(3, 1), expected: []grid.Position{p(0, 0), p(1, 0), p(2, 1), p(3, 1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, los.Line(tc.a, tc.b))
		})
	}
}

func TestHasLineOfSightFlat(t *testing.T) {
	m := testutils.OpenField(7, 5)

	assert.True(t, los.HasLineOfSight(m, p(0, 0), p(6, 4)))
	assert.True(t, los.HasLineOfSight(m, p(3, 3), p(3, 3)))
}

func TestHasLineOfSightOffMap(t *testing.T) {
	m := testutils.OpenField(3, 3)

	assert.False(t, los.HasLineOfSight(m, p(0, 0), p(3, 0)))
	assert.False(t, los.HasLineOfSight(m, p(-1, 0), p(1, 0)))
	assert.False(t, los.HasLineOfSight(nil, p(0, 0), p(0, 0)))
}

func TestHasLineOfSightHeights(t *testing.T) {
	testCases := []struct {
		name     string
		build    func(b *builders.MapBuilder) *builders.MapBuilder
		expected bool
	}{
		{
			name: "mountain between plains blocks",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(2, 0))
			},
			expected: false,
		},
		{
			name: "lower ground never blocks a viewer on a mountain",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(0, 0)).WithTerrain(grid.TerrainFortress, p(2, 0))
			},
			expected: true,
		},
		{
			name: "equal height does not block",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(0, 0), p(2, 0))
			},
			expected: true,
		},
		{
			name: "fortress near a raised target stays under the sightline",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(4, 0)).WithTerrain(grid.TerrainFortress, p(3, 0))
			},
			expected: true,
		},
		{
			name: "fortress near the viewer rises above the sightline",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(4, 0)).WithTerrain(grid.TerrainFortress, p(1, 0))
			},
			expected: false,
		},
		{
			name: "endpoints themselves never block",
			build: func(b *builders.MapBuilder) *builders.MapBuilder {
				return b.WithTerrain(grid.TerrainMountain, p(4, 0))
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.build(builders.NewMapBuilder(5, 1, grid.GridTypeSquare)).Build()
			assert.Equal(t, tc.expected, los.HasLineOfSight(m, p(0, 0), p(4, 0)))
		})
	}
}
