package v1alpha1

// Position is a tile coordinate
type Position struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Terrain is the terrain of a tile
type Terrain struct {
	Type         string           `json:"type"`
	MovementCost map[string]int32 `json:"movement_cost"`
	DefenseBonus int32            `json:"defense_bonus"`
	EvasionBonus int32            `json:"evasion_bonus"`
	HeightLevel  int32            `json:"height_level"`
	Passable     map[string]bool  `json:"passable"`
}

// Tile is one cell of a battle map
type Tile struct {
	Position         *Position `json:"position"`
	Terrain          *Terrain  `json:"terrain"`
	OccupantId       string    `json:"occupant_id,omitempty"`
	ItemId           string    `json:"item_id,omitempty"`
	IsChest          bool      `json:"is_chest,omitempty"`
	IsDoor           bool      `json:"is_door,omitempty"`
	IsDeploymentZone bool      `json:"is_deployment_zone,omitempty"`
	FogRevealed      bool      `json:"fog_revealed,omitempty"`
}

// TileRow is one row of tiles
type TileRow struct {
	Tiles []*Tile `json:"tiles"`
}

// BattleMap is a full battle map
type BattleMap struct {
	Id              string      `json:"id"`
	Name            string      `json:"name"`
	Width           int32       `json:"width"`
	Height          int32       `json:"height"`
	GridType        string      `json:"grid_type"`
	Rows            []*TileRow  `json:"rows"`
	DeploymentZones []*Position `json:"deployment_zones"`
	UpdatedAt       string      `json:"updated_at,omitempty"`
}

// Unit is the grid's view of a combat unit
type Unit struct {
	Id           string    `json:"id"`
	Team         string    `json:"team"`
	IsAlive      bool      `json:"is_alive"`
	Position     *Position `json:"position,omitempty"`
	MovementType string    `json:"movement_type"`
	Movement     int32     `json:"movement"`
}

// CreateMapRequest creates an all-plains battle map
type CreateMapRequest struct {
	Name            string      `json:"name"`
	Width           int32       `json:"width"`
	Height          int32       `json:"height"`
	GridType        string      `json:"grid_type"`
	DeploymentZones []*Position `json:"deployment_zones,omitempty"`
}

// CreateMapResponse returns the created map
type CreateMapResponse struct {
	Map *BattleMap `json:"map"`
}

// GetMapRequest loads a map
type GetMapRequest struct {
	MapId string `json:"map_id"`
}

// GetMapResponse returns a stored map
type GetMapResponse struct {
	Map *BattleMap `json:"map"`
}

// ImportMapRequest stores a map from a snapshot
type ImportMapRequest struct {
	Snapshot string `json:"snapshot"`
	MapId    string `json:"map_id,omitempty"`
}

// ImportMapResponse returns the imported map
type ImportMapResponse struct {
	Map *BattleMap `json:"map"`
}

// ExportMapRequest exports a map snapshot
type ExportMapRequest struct {
	MapId string `json:"map_id"`
}

// ExportMapResponse returns a map snapshot
type ExportMapResponse struct {
	Snapshot string `json:"snapshot"`
}

// InstantiateTemplateRequest copies a stored map into a new battle map
type InstantiateTemplateRequest struct {
	TemplateId string `json:"template_id"`
	Name       string `json:"name,omitempty"`
}

// InstantiateTemplateResponse returns the new map
type InstantiateTemplateResponse struct {
	Map *BattleMap `json:"map"`
}

// DeleteMapRequest deletes a map
type DeleteMapRequest struct {
	MapId string `json:"map_id"`
}

// DeleteMapResponse is empty
type DeleteMapResponse struct{}

// SetOccupantRequest places or clears a unit on a tile
type SetOccupantRequest struct {
	MapId    string    `json:"map_id"`
	Position *Position `json:"position"`
	UnitId   string    `json:"unit_id"`
}

// SetOccupantResponse returns the edited map
type SetOccupantResponse struct {
	Map *BattleMap `json:"map"`
}

// SetTerrainRequest changes a tile's terrain
type SetTerrainRequest struct {
	MapId    string    `json:"map_id"`
	Position *Position `json:"position"`
	Terrain  string    `json:"terrain"`
}

// SetTerrainResponse returns the edited map
type SetTerrainResponse struct {
	Map *BattleMap `json:"map"`
}

// SetDeploymentZonesRequest replaces a map's deployment zones
type SetDeploymentZonesRequest struct {
	MapId     string      `json:"map_id"`
	Positions []*Position `json:"positions"`
}

// SetDeploymentZonesResponse returns the edited map
type SetDeploymentZonesResponse struct {
	Map *BattleMap `json:"map"`
}

// FindPathRequest searches for a cheapest path
type FindPathRequest struct {
	MapId          string    `json:"map_id"`
	Start          *Position `json:"start"`
	End            *Position `json:"end"`
	MovementBudget int32     `json:"movement_budget"`
	MovementType   string    `json:"movement_type"`
	Units          []*Unit   `json:"units,omitempty"`
}

// FindPathResponse returns the path, empty when none fits the budget
type FindPathResponse struct {
	Path  []*Position `json:"path"`
	Cost  int32       `json:"cost"`
	Found bool        `json:"found"`
}

// GetMovementRangeRequest computes reachable tiles
type GetMovementRangeRequest struct {
	MapId        string    `json:"map_id"`
	Start        *Position `json:"start"`
	Movement     int32     `json:"movement"`
	MovementType string    `json:"movement_type"`
	Units        []*Unit   `json:"units,omitempty"`
}

// GetMovementRangeResponse returns reachable tiles
type GetMovementRangeResponse struct {
	Positions []*Position `json:"positions"`
}

// GetAttackRangeRequest computes an attack band
type GetAttackRangeRequest struct {
	MapId    string      `json:"map_id"`
	Origins  []*Position `json:"origins"`
	MinRange int32       `json:"min_range"`
	MaxRange int32       `json:"max_range"`
}

// GetAttackRangeResponse returns the attack band
type GetAttackRangeResponse struct {
	Positions []*Position `json:"positions"`
}

// GetDangerZoneRequest computes the tiles enemies threaten
type GetDangerZoneRequest struct {
	MapId   string  `json:"map_id"`
	Enemies []*Unit `json:"enemies"`
}

// GetDangerZoneResponse returns threatened tiles
type GetDangerZoneResponse struct {
	Positions []*Position `json:"positions"`
}

// CheckLineOfSightRequest checks visibility between two tiles
type CheckLineOfSightRequest struct {
	MapId string    `json:"map_id"`
	From  *Position `json:"from"`
	To    *Position `json:"to"`
}

// CheckLineOfSightResponse reports visibility
type CheckLineOfSightResponse struct {
	Visible bool `json:"visible"`
}

// ApplyFogOfWarRequest computes a team's view of a map
type ApplyFogOfWarRequest struct {
	MapId   string  `json:"map_id"`
	Team    string  `json:"team"`
	Units   []*Unit `json:"units"`
	Persist bool    `json:"persist,omitempty"`
}

// ApplyFogOfWarResponse returns the fogged map and its revealed tiles
type ApplyFogOfWarResponse struct {
	Map     *BattleMap  `json:"map"`
	Visible []*Position `json:"visible"`
}

// GetX returns the x coordinate, or 0 for a nil position
func (p *Position) GetX() int32 {
	if p == nil {
		return 0
	}
	return p.X
}

// GetY returns the y coordinate, or 0 for a nil position
func (p *Position) GetY() int32 {
	if p == nil {
		return 0
	}
	return p.Y
}
