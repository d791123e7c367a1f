// Package movement is the cost and occupancy model shared by pathfinding and
// range queries: who is moving, which tiles they may enter or stop on, and
// what each step costs including zone-of-control penalties.
package movement

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/terrain"
)

// occupancy classifies a tile's occupant relative to the mover
type occupancy int

const (
	occupancyNone occupancy = iota
	occupancySelf
	occupancyFriendly
	occupancyBlocking
)

// Model answers cost and occupancy questions for one mover on one map.
// Build it with New once per query; it holds no state between queries.
type Model struct {
	m            *grid.Map
	origin       grid.Position
	movementType grid.MovementType
	mover        *grid.Unit
	units        map[string]*grid.Unit
	zoneOfCtrl   map[grid.Position]bool
	zocCost      int
}

// New builds the model for a unit standing at origin.
//
// The mover is the unit recorded as occupant of origin or, failing that, the
// first living unit whose position is origin. Zone of control is the set of
// tiles adjacent to living enemies of the mover, minus origin itself.
func New(m *grid.Map, origin grid.Position, mt grid.MovementType, units []grid.Unit, zocCost int) *Model {
	model := &Model{
		m:            m,
		origin:       origin,
		movementType: mt,
		units:        make(map[string]*grid.Unit, len(units)),
		zoneOfCtrl:   make(map[grid.Position]bool),
		zocCost:      zocCost,
	}

	for i := range units {
		u := &units[i]
		if _, dup := model.units[u.ID]; !dup {
			model.units[u.ID] = u
		}
	}

	model.mover = model.resolveMover(units)
	if model.mover == nil {
		return model
	}

	for i := range units {
		u := &units[i]
		if !u.IsPlaced() || !u.IsEnemyOf(model.mover) {
			continue
		}
		for _, adj := range gridmap.AdjacentPositions(m, *u.Position) {
			model.zoneOfCtrl[adj] = true
		}
	}
	delete(model.zoneOfCtrl, origin)

	return model
}

func (mdl *Model) resolveMover(units []grid.Unit) *grid.Unit {
	if tile, ok := mdl.m.TileAt(mdl.origin); ok && tile.IsOccupied() {
		if u, found := mdl.units[tile.OccupantID]; found {
			return u
		}
	}
	for i := range units {
		u := &units[i]
		if u.IsPlaced() && *u.Position == mdl.origin {
			return u
		}
	}
	return nil
}

// Mover returns the resolved moving unit, or nil when none stands at the origin
func (mdl *Model) Mover() *grid.Unit {
	return mdl.mover
}

// InZoneOfControl reports whether p is adjacent to a living enemy of the mover
func (mdl *Model) InZoneOfControl(p grid.Position) bool {
	return mdl.zoneOfCtrl[p]
}

func (mdl *Model) occupancyAt(tile grid.Tile) occupancy {
	if !tile.IsOccupied() {
		return occupancyNone
	}
	if tile.Position == mdl.origin {
		return occupancySelf
	}
	if mdl.mover != nil && tile.OccupantID == mdl.mover.ID {
		return occupancySelf
	}

	occupant, known := mdl.units[tile.OccupantID]
	if known && mdl.mover != nil && occupant.IsAlive && !occupant.IsEnemyOf(mdl.mover) {
		return occupancyFriendly
	}
	if known && mdl.mover == nil && occupant.IsAlive {
		// Without a resolved mover there is no side to be hostile to.
		return occupancyFriendly
	}
	return occupancyBlocking
}

// StepCost returns the cost of entering p and whether p may be entered at all.
// Impassable terrain and tiles held by enemies or unknown occupants cannot be entered.
func (mdl *Model) StepCost(p grid.Position) (int, bool) {
	tile, ok := mdl.m.TileAt(p)
	if !ok {
		return 0, false
	}

	cost := tile.Terrain.MovementCost.For(mdl.movementType)
	if !terrain.IsPassableCost(cost) {
		return 0, false
	}
	// every step costs at least 1, which keeps range and path searches finite
	cost = max(cost, 1)
	if mdl.occupancyAt(tile) == occupancyBlocking {
		return 0, false
	}

	if mdl.zoneOfCtrl[p] {
		cost += mdl.zocCost
	}
	return cost, true
}

// CanStop reports whether a move may end on p. Tiles held by other friendly
// units can be passed through but not stopped on.
func (mdl *Model) CanStop(p grid.Position) bool {
	tile, ok := mdl.m.TileAt(p)
	if !ok {
		return false
	}
	switch mdl.occupancyAt(tile) {
	case occupancyNone, occupancySelf:
		return true
	default:
		return false
	}
}

// Neighbors returns the in-bounds positions adjacent to p
func (mdl *Model) Neighbors(p grid.Position) []grid.Position {
	return gridmap.AdjacentPositions(mdl.m, p)
}

// PathCost sums StepCost over every step after the first position.
// It returns false if any step is not enterable or not adjacent to the previous one.
func (mdl *Model) PathCost(path []grid.Position) (int, bool) {
	if len(path) == 0 || !mdl.m.InBounds(path[0]) {
		return 0, false
	}

	total := 0
	for i := 1; i < len(path); i++ {
		if !mdl.adjacent(path[i-1], path[i]) {
			return 0, false
		}
		cost, ok := mdl.StepCost(path[i])
		if !ok {
			return 0, false
		}
		total += cost
	}
	return total, true
}

func (mdl *Model) adjacent(a, b grid.Position) bool {
	for _, n := range mdl.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}
