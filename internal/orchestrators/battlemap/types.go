package battlemap

import (
	"time"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
)

// MaxDimension bounds the width and height of maps created through the service
const MaxDimension = 256

// CreateMapInput defines the request for creating an all-plains map
type CreateMapInput struct {
	Name     string
	Width    int
	Height   int
	GridType grid.GridType
	// DeploymentZones is optional; off-map entries are dropped
	DeploymentZones []grid.Position
}

// CreateMapOutput defines the response for creating a map
type CreateMapOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// GetMapInput defines the request for loading a map
type GetMapInput struct {
	MapID string
}

// GetMapOutput defines the response for loading a map
type GetMapOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// ImportMapInput defines the request for storing a map from a snapshot
type ImportMapInput struct {
	Snapshot string
	// MapID overrides the ID in the snapshot when set. A snapshot without
	// an ID and no override gets a generated one.
	MapID string
}

// ImportMapOutput defines the response for importing a map
type ImportMapOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// ExportMapInput defines the request for exporting a map snapshot
type ExportMapInput struct {
	MapID string
}

// ExportMapOutput defines the response for exporting a map snapshot
type ExportMapOutput struct {
	Snapshot string
}

// InstantiateTemplateInput defines the request for copying a stored map
// into a fresh battle map
type InstantiateTemplateInput struct {
	TemplateID string
	// Name of the new map; the template's name is kept when empty
	Name string
}

// InstantiateTemplateOutput defines the response for instantiating a template
type InstantiateTemplateOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// DeleteMapInput defines the request for deleting a map
type DeleteMapInput struct {
	MapID string
}

// DeleteMapOutput defines the response for deleting a map
type DeleteMapOutput struct{}

// SetOccupantInput defines the request for placing or clearing a unit
type SetOccupantInput struct {
	MapID    string
	Position grid.Position
	// UnitID clears the tile when empty
	UnitID string
}

// SetOccupantOutput defines the response for an occupant edit
type SetOccupantOutput struct {
	Map *grid.Map
}

// SetTerrainInput defines the request for changing a tile's terrain
type SetTerrainInput struct {
	MapID    string
	Position grid.Position
	Terrain  grid.TerrainType
}

// SetTerrainOutput defines the response for a terrain edit
type SetTerrainOutput struct {
	Map *grid.Map
}

// SetDeploymentZonesInput defines the request for replacing deployment zones
type SetDeploymentZonesInput struct {
	MapID     string
	Positions []grid.Position
}

// SetDeploymentZonesOutput defines the response for a deployment zone edit
type SetDeploymentZonesOutput struct {
	Map *grid.Map
}

// FindPathInput defines the request for a path search
type FindPathInput struct {
	MapID          string
	Start          grid.Position
	End            grid.Position
	MovementBudget int
	MovementType   grid.MovementType
	Units          []grid.Unit
}

// FindPathOutput defines the response for a path search. Found is false
// and Path empty when no path fits the budget.
type FindPathOutput struct {
	Path  []grid.Position
	Cost  int
	Found bool
}

// GetMovementRangeInput defines the request for a movement range
type GetMovementRangeInput struct {
	MapID        string
	Start        grid.Position
	Movement     int
	MovementType grid.MovementType
	Units        []grid.Unit
}

// GetMovementRangeOutput defines the response for a movement range
type GetMovementRangeOutput struct {
	Positions []grid.Position
}

// GetAttackRangeInput defines the request for an attack range
type GetAttackRangeInput struct {
	MapID    string
	Origins  []grid.Position
	MinRange int
	MaxRange int
}

// GetAttackRangeOutput defines the response for an attack range
type GetAttackRangeOutput struct {
	Positions []grid.Position
}

// GetDangerZoneInput defines the request for an enemy danger zone
type GetDangerZoneInput struct {
	MapID   string
	Enemies []grid.Unit
}

// GetDangerZoneOutput defines the response for a danger zone
type GetDangerZoneOutput struct {
	Positions []grid.Position
}

// CheckLineOfSightInput defines the request for a line-of-sight check
type CheckLineOfSightInput struct {
	MapID string
	From  grid.Position
	To    grid.Position
}

// CheckLineOfSightOutput defines the response for a line-of-sight check
type CheckLineOfSightOutput struct {
	Visible bool
}

// ApplyFogOfWarInput defines the request for computing a team's view
type ApplyFogOfWarInput struct {
	MapID string
	Team  string
	Units []grid.Unit
	// Persist stores the fogged map back under MapID
	Persist bool
}

// ApplyFogOfWarOutput defines the response for a fog computation
type ApplyFogOfWarOutput struct {
	Map     *grid.Map
	Visible []grid.Position
}
