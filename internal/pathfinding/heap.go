package pathfinding

import "github.com/KirkDiggler/tactics-grid/internal/entities/grid"

// pathNode is a search node. Nodes are ordered by (f, steps) so that among
// equally cheap routes the one with fewer edges wins.
type pathNode struct {
	pos    grid.Position
	g      int // accumulated cost from start
	h      int // heuristic to goal
	steps  int // edges from start
	parent *pathNode
	index  int // heap index, -1 once popped
}

func (n *pathNode) f() int {
	return n.g + n.h
}

// nodeHeap implements container/heap.Interface as a min-heap on (f, steps)
type nodeHeap []*pathNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f() != h[j].f() {
		return h[i].f() < h[j].f()
	}
	return h[i].steps < h[j].steps
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x interface{}) {
	node := x.(*pathNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
