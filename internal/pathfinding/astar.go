// Package pathfinding finds budget-constrained shortest paths with A*.
package pathfinding

import (
	"container/heap"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/movement"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
	"github.com/KirkDiggler/tactics-grid/internal/topology"
)

// Finder runs path queries under a fixed rule set. It is stateless between calls.
type Finder struct {
	rules rules.Rules
}

// NewFinder creates a Finder using r
func NewFinder(r rules.Rules) *Finder {
	return &Finder{rules: r}
}

// FindPath returns the cheapest path from start to end whose terrain plus
// zone-of-control cost fits within budget, or nil when there is none.
//
// The path includes both endpoints. start == end yields []Position{start}
// without any cost check. Off-map endpoints and a negative budget yield nil.
func (f *Finder) FindPath(
	m *grid.Map,
	start, end grid.Position,
	budget int,
	mt grid.MovementType,
	units []grid.Unit,
) []grid.Position {
	if !m.InBounds(start) || !m.InBounds(end) || budget < 0 {
		return nil
	}
	if start == end {
		return []grid.Position{start}
	}

	model := movement.New(m, start, mt, units, f.rules.ZoneOfControlCost)
	if !model.CanStop(end) {
		return nil
	}
	if _, ok := model.StepCost(end); !ok {
		return nil
	}

	topo := topology.For(m.GridType)

	open := &nodeHeap{}
	heap.Init(open)

	nodes := make(map[grid.Position]*pathNode)
	closed := make(map[grid.Position]bool)

	startNode := &pathNode{pos: start, h: topo.Distance(start, end)}
	heap.Push(open, startNode)
	nodes[start] = startNode

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)

		if current.pos == end {
			if current.g > budget {
				return nil
			}
			return reconstructPath(current)
		}

		closed[current.pos] = true

		for _, next := range model.Neighbors(current.pos) {
			if closed[next] {
				continue
			}

			stepCost, ok := model.StepCost(next)
			if !ok {
				continue
			}

			g := current.g + stepCost
			if g > budget {
				continue
			}
			steps := current.steps + 1

			neighbor, seen := nodes[next]
			if !seen {
				neighbor = &pathNode{
					pos:    next,
					g:      g,
					h:      topo.Distance(next, end),
					steps:  steps,
					parent: current,
				}
				nodes[next] = neighbor
				heap.Push(open, neighbor)
				continue
			}

			if g < neighbor.g || (g == neighbor.g && steps < neighbor.steps) {
				neighbor.g = g
				neighbor.steps = steps
				neighbor.parent = current
				heap.Fix(open, neighbor.index)
			}
		}
	}

	return nil
}

// PathCost returns the accumulated terrain plus zone-of-control cost of path
// for the unit standing on its first position. It returns false when a step
// is not adjacent to the previous one or cannot be entered.
func (f *Finder) PathCost(m *grid.Map, path []grid.Position, mt grid.MovementType, units []grid.Unit) (int, bool) {
	if len(path) == 0 {
		return 0, false
	}
	model := movement.New(m, path[0], mt, units, f.rules.ZoneOfControlCost)
	return model.PathCost(path)
}

func reconstructPath(node *pathNode) []grid.Position {
	path := make([]grid.Position, 0, node.steps+1)
	for n := node; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
