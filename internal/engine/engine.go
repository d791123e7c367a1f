package engine

import (
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/fog"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/los"
	"github.com/KirkDiggler/tactics-grid/internal/pathfinding"
	"github.com/KirkDiggler/tactics-grid/internal/ranges"
	"github.com/KirkDiggler/tactics-grid/internal/rules"
	"github.com/KirkDiggler/tactics-grid/internal/terrain"
)

// Config holds the engine configuration
type Config struct {
	// Rules overrides the default balance values when set
	Rules *rules.Rules
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	if cfg == nil || cfg.Rules == nil {
		return nil
	}
	if err := cfg.Rules.Validate(); err != nil {
		return errors.Wrap(err, "invalid rules")
	}
	return nil
}

type engine struct {
	rules      rules.Rules
	finder     *pathfinding.Finder
	calculator *ranges.Calculator
}

// New creates an Engine. A nil config uses the default rules.
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := rules.Default()
	if cfg != nil && cfg.Rules != nil {
		r = *cfg.Rules
	}

	return &engine{
		rules:      r,
		finder:     pathfinding.NewFinder(r),
		calculator: ranges.NewCalculator(r),
	}, nil
}

// Verify that engine implements the Engine interface
var _ Engine = (*engine)(nil)

func (e *engine) Rules() rules.Rules {
	return e.rules
}

func (e *engine) CreateGrid(width, height int, gridType grid.GridType) *grid.Map {
	return gridmap.New(width, height, gridType)
}

func (e *engine) LoadMap(m *grid.Map) *grid.Map {
	return gridmap.Load(m)
}

func (e *engine) GetTile(m *grid.Map, pos grid.Position) (grid.Tile, bool) {
	return gridmap.GetTile(m, pos)
}

func (e *engine) IsInBounds(m *grid.Map, pos grid.Position) bool {
	return gridmap.IsInBounds(m, pos)
}

func (e *engine) SetOccupant(m *grid.Map, pos grid.Position, unitID string) *grid.Map {
	return gridmap.SetOccupant(m, pos, unitID)
}

func (e *engine) SetTerrain(m *grid.Map, pos grid.Position, terrainType grid.TerrainType) *grid.Map {
	return gridmap.SetTerrain(m, pos, terrainType)
}

func (e *engine) SetDeploymentZones(m *grid.Map, zones []grid.Position) *grid.Map {
	return gridmap.SetDeploymentZones(m, zones)
}

func (e *engine) GetAdjacentPositions(m *grid.Map, pos grid.Position) []grid.Position {
	return gridmap.AdjacentPositions(m, pos)
}

func (e *engine) GetDistance(a, b grid.Position, gridType grid.GridType) int {
	return gridmap.Distance(a, b, gridType)
}

func (e *engine) GetTerrainData(terrainType grid.TerrainType) grid.TerrainData {
	return terrain.GetTerrainData(terrainType)
}

func (e *engine) FindPath(
	m *grid.Map,
	start, end grid.Position,
	movementBudget int,
	movementType grid.MovementType,
	units []grid.Unit,
) []grid.Position {
	return e.finder.FindPath(m, start, end, movementBudget, movementType, units)
}

func (e *engine) PathCost(
	m *grid.Map,
	path []grid.Position,
	movementType grid.MovementType,
	units []grid.Unit,
) (int, bool) {
	return e.finder.PathCost(m, path, movementType, units)
}

func (e *engine) GetMovementRange(
	m *grid.Map,
	start grid.Position,
	movement int,
	movementType grid.MovementType,
	units []grid.Unit,
) []grid.Position {
	return e.calculator.MovementRange(m, start, movement, movementType, units)
}

func (e *engine) GetAttackRange(m *grid.Map, origins []grid.Position, minRange, maxRange int) []grid.Position {
	return ranges.AttackRange(m, origins, minRange, maxRange)
}

func (e *engine) CalculateDangerZone(m *grid.Map, enemies []grid.Unit) []grid.Position {
	if m == nil {
		return []grid.Position{}
	}
	return e.calculator.DangerZone(m, enemies)
}

func (e *engine) GetLineOfSight(m *grid.Map, from, to grid.Position) bool {
	return los.HasLineOfSight(m, from, to)
}

func (e *engine) ApplyFogOfWar(m *grid.Map, team string, units []grid.Unit) *grid.Map {
	return fog.Apply(m, team, units, e.rules.VisionBonus)
}

func (e *engine) VisiblePositions(m *grid.Map) []grid.Position {
	return gridmap.VisiblePositions(m)
}

func (e *engine) SerializeMap(m *grid.Map) (string, error) {
	return gridmap.Serialize(m)
}

func (e *engine) DeserializeMap(data string) (*grid.Map, error) {
	return gridmap.Deserialize(data)
}
