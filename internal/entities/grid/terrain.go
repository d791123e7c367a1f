package grid

// ImpassableCost is the movement cost sentinel for terrain a movement type cannot enter
const ImpassableCost = 99

// MovementCosts holds one movement cost per movement type.
// It is an array so that copying a TerrainData copies the table.
type MovementCosts [MovementTypeCount]int

// For returns the cost for the movement type, or ImpassableCost for unknown types
func (c MovementCosts) For(mt MovementType) int {
	if !mt.IsValid() {
		return ImpassableCost
	}
	return c[mt]
}

// Passability holds one passable flag per movement type
type Passability [MovementTypeCount]bool

// For returns whether the movement type may enter, false for unknown types
func (p Passability) For(mt MovementType) bool {
	if !mt.IsValid() {
		return false
	}
	return p[mt]
}

// TerrainData describes how a terrain affects movement and combat
type TerrainData struct {
	Type         TerrainType
	MovementCost MovementCosts
	DefenseBonus int
	EvasionBonus int
	HeightLevel  int
	Passable     Passability
}
