// Package grid contains the tile-grid entities shared by every spatial query:
// positions, terrain, tiles, maps and the read-only view of combat units.
package grid

import (
	"fmt"
	"strings"
)

// GridType selects the adjacency and distance rules of a map
type GridType string

// Grid types
const (
	GridTypeSquare GridType = "square"
	// GridTypeHex uses odd-row offset coordinates
	GridTypeHex GridType = "hex"
)

// IsValid reports whether the grid type is one of the known values
func (g GridType) IsValid() bool {
	return g == GridTypeSquare || g == GridTypeHex
}

// MovementType is the traversal class used to look up terrain costs
type MovementType int

// Movement types
const (
	MovementFoot MovementType = iota
	MovementMounted
	MovementArmored
	MovementFlying

	// MovementTypeCount is the number of movement types, used to size per-type tables
	MovementTypeCount = 4
)

var movementTypeNames = [MovementTypeCount]string{
	MovementFoot:    "foot",
	MovementMounted: "mounted",
	MovementArmored: "armored",
	MovementFlying:  "flying",
}

// AllMovementTypes lists every movement type in table order
func AllMovementTypes() []MovementType {
	return []MovementType{MovementFoot, MovementMounted, MovementArmored, MovementFlying}
}

// IsValid reports whether the movement type is one of the known values
func (m MovementType) IsValid() bool {
	return m >= 0 && m < MovementTypeCount
}

// String returns the wire name of the movement type
func (m MovementType) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("MovementType(%d)", int(m))
	}
	return movementTypeNames[m]
}

// MarshalText encodes the movement type by name
func (m MovementType) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("unknown movement type %d", int(m))
	}
	return []byte(movementTypeNames[m]), nil
}

// UnmarshalText decodes a movement type from its name
func (m *MovementType) UnmarshalText(text []byte) error {
	parsed, err := ParseMovementType(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMovementType converts a wire name into a MovementType
func ParseMovementType(name string) (MovementType, error) {
	for i, n := range movementTypeNames {
		if strings.EqualFold(n, name) {
			return MovementType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown movement type %q", name)
}

// TerrainType identifies a terrain catalog entry
type TerrainType string

// Terrain types
const (
	TerrainPlains   TerrainType = "plains"
	TerrainForest   TerrainType = "forest"
	TerrainMountain TerrainType = "mountain"
	TerrainWater    TerrainType = "water"
	TerrainLava     TerrainType = "lava"
	TerrainFortress TerrainType = "fortress"
	TerrainBridge   TerrainType = "bridge"
	TerrainSwamp    TerrainType = "swamp"
	TerrainSand     TerrainType = "sand"
	TerrainSnow     TerrainType = "snow"
	TerrainVoid     TerrainType = "void"
)

// AllTerrainTypes lists the terrain types in catalog order
func AllTerrainTypes() []TerrainType {
	return []TerrainType{
		TerrainPlains,
		TerrainForest,
		TerrainMountain,
		TerrainWater,
		TerrainLava,
		TerrainFortress,
		TerrainBridge,
		TerrainSwamp,
		TerrainSand,
		TerrainSnow,
		TerrainVoid,
	}
}

// IsValid reports whether the terrain type is one of the known values
func (t TerrainType) IsValid() bool {
	for _, known := range AllTerrainTypes() {
		if t == known {
			return true
		}
	}
	return false
}
