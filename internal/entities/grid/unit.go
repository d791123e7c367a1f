package grid

import "github.com/KirkDiggler/rpg-toolkit/core"

// UnitEntityType is the toolkit entity type reported by units
const UnitEntityType = "unit"

// UnitStats is the subset of a unit's current stats read by the grid
type UnitStats struct {
	Movement int `json:"movement"`
}

// Unit is the read-only view of a combat unit. The combat system owns the
// full record; grid code never modifies a Unit.
type Unit struct {
	ID           string       `json:"id"`
	Team         string       `json:"team"`
	IsAlive      bool         `json:"is_alive"`
	Position     *Position    `json:"position,omitempty"`
	MovementType MovementType `json:"movement_type"`
	CurrentStats UnitStats    `json:"current_stats"`
}

// GetID returns the unit id
func (u *Unit) GetID() string {
	return u.ID
}

// GetType returns the entity type for rpg-toolkit
func (u *Unit) GetType() string {
	return UnitEntityType
}

// IsPlaced reports whether the unit is alive and standing on the grid
func (u *Unit) IsPlaced() bool {
	return u != nil && u.IsAlive && u.Position != nil
}

// IsEnemyOf reports whether the two units are on opposing teams
func (u *Unit) IsEnemyOf(other *Unit) bool {
	if u == nil || other == nil {
		return false
	}
	return u.Team != other.Team
}

// Compile-time check that units can be handed to rpg-toolkit
var _ core.Entity = (*Unit)(nil)
