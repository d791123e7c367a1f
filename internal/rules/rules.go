// Package rules holds the game-balance constants used by the spatial queries.
// They are plain data so content can tune them through configuration.
package rules

import "github.com/KirkDiggler/tactics-grid/internal/errors"

// Default values
const (
	// ZoneOfControlExtraCost is added to the cost of entering a tile adjacent to a living enemy
	ZoneOfControlExtraCost = 3
	// VisionBonus is added to a unit's movement to get its fog-of-war vision radius
	VisionBonus = 2
	// DangerMinRange and DangerMaxRange bound the attack band used for danger zones
	DangerMinRange = 1
	DangerMaxRange = 2
)

// Rules are the tunable parameters of the spatial queries
type Rules struct {
	ZoneOfControlCost int `yaml:"zone_of_control_cost"`
	VisionBonus       int `yaml:"vision_bonus"`
	DangerMinRange    int `yaml:"danger_min_range"`
	DangerMaxRange    int `yaml:"danger_max_range"`
}

// Default returns the shipped balance values
func Default() Rules {
	return Rules{
		ZoneOfControlCost: ZoneOfControlExtraCost,
		VisionBonus:       VisionBonus,
		DangerMinRange:    DangerMinRange,
		DangerMaxRange:    DangerMaxRange,
	}
}

// Validate checks that the rules describe a usable configuration
func (r Rules) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("zone_of_control_cost", r.ZoneOfControlCost, vb)
	errors.ValidateNonNegative("vision_bonus", r.VisionBonus, vb)
	errors.ValidateNonNegative("danger_min_range", r.DangerMinRange, vb)
	if r.DangerMaxRange < r.DangerMinRange {
		vb.Field("danger_max_range", "must be at least danger_min_range")
	}

	return vb.Build()
}
