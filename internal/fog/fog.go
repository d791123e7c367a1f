// Package fog computes a team's fog-of-war view of a map
package fog

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/los"
	"github.com/KirkDiggler/tactics-grid/internal/topology"
)

// Apply returns a clone of m whose FogRevealed flags are recomputed from
// scratch for team. A tile is revealed when some living, placed unit of the
// team is within movement+visionBonus grid distance and has line of sight to it.
// Prior fog state on m is ignored.
func Apply(m *grid.Map, team string, units []grid.Unit, visionBonus int) *grid.Map {
	if m == nil {
		return nil
	}

	out := m.Clone()
	for y := range out.Tiles {
		for x := range out.Tiles[y] {
			out.Tiles[y][x].FogRevealed = false
		}
	}

	topo := topology.For(m.GridType)
	for i := range units {
		u := &units[i]
		if u.Team != team || !u.IsPlaced() || !m.InBounds(*u.Position) {
			continue
		}

		origin := *u.Position
		radius := u.CurrentStats.Movement + visionBonus
		if radius < 0 {
			continue
		}

		for y := max(0, origin.Y-radius); y <= min(m.Height-1, origin.Y+radius); y++ {
			for x := max(0, origin.X-radius); x <= min(m.Width-1, origin.X+radius); x++ {
				if out.Tiles[y][x].FogRevealed {
					continue
				}
				p := grid.Position{X: x, Y: y}
				if topo.Distance(origin, p) > radius {
					continue
				}
				if los.HasLineOfSight(m, origin, p) {
					out.Tiles[y][x].FogRevealed = true
				}
			}
		}
	}

	return out
}
