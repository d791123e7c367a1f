// Package ranges computes movement ranges, attack rings and enemy danger zones.
// Movement ranges use the same cost model as pathfinding.
package ranges

import (
	"container/heap"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/movement"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
	"github.com/KirkDiggler/tactics-grid/internal/topology"
)

// Calculator runs range queries under a fixed rule set. It is stateless between calls.
type Calculator struct {
	rules rules.Rules
}

// NewCalculator creates a Calculator using r
func NewCalculator(r rules.Rules) *Calculator {
	return &Calculator{rules: r}
}

// MovementRange returns every tile the unit at start can end its move on with
// at most movement points, sorted row-major. start is always included.
// Off-map starts and negative movement return an empty slice.
func (c *Calculator) MovementRange(
	m *grid.Map,
	start grid.Position,
	movementPoints int,
	mt grid.MovementType,
	units []grid.Unit,
) []grid.Position {
	if !m.InBounds(start) || movementPoints < 0 {
		return []grid.Position{}
	}

	model := movement.New(m, start, mt, units, c.rules.ZoneOfControlCost)

	best := map[grid.Position]int{start: 0}
	open := &costHeap{{pos: start}}
	heap.Init(open)

	for open.Len() > 0 {
		current := heap.Pop(open).(costEntry)
		if current.cost > best[current.pos] {
			continue // stale entry
		}

		for _, next := range model.Neighbors(current.pos) {
			stepCost, ok := model.StepCost(next)
			if !ok {
				continue
			}
			cost := current.cost + stepCost
			if cost > movementPoints {
				continue
			}
			if prev, seen := best[next]; seen && prev <= cost {
				continue
			}
			best[next] = cost
			heap.Push(open, costEntry{pos: next, cost: cost})
		}
	}

	out := make([]grid.Position, 0, len(best))
	for pos := range best {
		if pos == start || model.CanStop(pos) {
			out = append(out, pos)
		}
	}
	gridmap.SortPositions(out)
	return out
}

// AttackRange returns every tile whose distance to some origin lies in
// [minRange, maxRange], excluding the origins themselves, sorted row-major.
// Invalid ranges return an empty slice.
func AttackRange(m *grid.Map, origins []grid.Position, minRange, maxRange int) []grid.Position {
	if m == nil || minRange < 0 || maxRange < minRange {
		return []grid.Position{}
	}

	topo := topology.For(m.GridType)
	exclude := make(map[grid.Position]bool, len(origins))
	for _, o := range origins {
		exclude[o] = true
	}

	hit := make(map[grid.Position]bool)
	for _, o := range origins {
		// A step moves at most one row and one column on either grid,
		// so the square window of radius maxRange holds every candidate.
		for y := max(0, o.Y-maxRange); y <= min(m.Height-1, o.Y+maxRange); y++ {
			for x := max(0, o.X-maxRange); x <= min(m.Width-1, o.X+maxRange); x++ {
				p := grid.Position{X: x, Y: y}
				if exclude[p] || hit[p] {
					continue
				}
				d := topo.Distance(o, p)
				if d >= minRange && d <= maxRange {
					hit[p] = true
				}
			}
		}
	}

	out := make([]grid.Position, 0, len(hit))
	for p := range hit {
		out = append(out, p)
	}
	gridmap.SortPositions(out)
	return out
}

// DangerZone returns the union of every living, placed enemy's movement range
// and the attack band reachable from it, sorted row-major.
// The enemies slice doubles as the roster for occupancy and zone of control.
func (c *Calculator) DangerZone(m *grid.Map, enemies []grid.Unit) []grid.Position {
	zone := make(map[grid.Position]bool)

	for i := range enemies {
		e := &enemies[i]
		if !e.IsPlaced() {
			continue
		}

		reach := c.MovementRange(m, *e.Position, e.CurrentStats.Movement, e.MovementType, enemies)
		for _, p := range reach {
			zone[p] = true
		}
		for _, p := range AttackRange(m, reach, c.rules.DangerMinRange, c.rules.DangerMaxRange) {
			zone[p] = true
		}
	}

	out := make([]grid.Position, 0, len(zone))
	for p := range zone {
		out = append(out, p)
	}
	gridmap.SortPositions(out)
	return out
}

type costEntry struct {
	pos  grid.Position
	cost int
}

// costHeap implements container/heap.Interface as a min-heap on cost
type costHeap []costEntry

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costEntry)) }

func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
