// Package battlemap implements the battle map orchestrator: stored maps plus
// the spatial queries a battle runs against them.
package battlemap

//go:generate mockgen -destination=mock/mock_service.go -package=battlemapmock github.com/KirkDiggler/tactics-grid/internal/orchestrators/battlemap Service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/tactics-grid/internal/engine"
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/pkg/idgen"
	"github.com/KirkDiggler/tactics-grid/internal/repositories/maps"
)

// Service defines the interface for battle map operations
type Service interface {
	// Map lifecycle
	CreateMap(ctx context.Context, input *CreateMapInput) (*CreateMapOutput, error)
	GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error)
	ImportMap(ctx context.Context, input *ImportMapInput) (*ImportMapOutput, error)
	ExportMap(ctx context.Context, input *ExportMapInput) (*ExportMapOutput, error)
	InstantiateTemplate(ctx context.Context, input *InstantiateTemplateInput) (*InstantiateTemplateOutput, error)
	DeleteMap(ctx context.Context, input *DeleteMapInput) (*DeleteMapOutput, error)

	// Map edits
	SetOccupant(ctx context.Context, input *SetOccupantInput) (*SetOccupantOutput, error)
	SetTerrain(ctx context.Context, input *SetTerrainInput) (*SetTerrainOutput, error)
	SetDeploymentZones(ctx context.Context, input *SetDeploymentZonesInput) (*SetDeploymentZonesOutput, error)

	// Spatial queries
	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)
	GetMovementRange(ctx context.Context, input *GetMovementRangeInput) (*GetMovementRangeOutput, error)
	GetAttackRange(ctx context.Context, input *GetAttackRangeInput) (*GetAttackRangeOutput, error)
	GetDangerZone(ctx context.Context, input *GetDangerZoneInput) (*GetDangerZoneOutput, error)
	CheckLineOfSight(ctx context.Context, input *CheckLineOfSightInput) (*CheckLineOfSightOutput, error)
	ApplyFogOfWar(ctx context.Context, input *ApplyFogOfWarInput) (*ApplyFogOfWarOutput, error)
}

// Config holds the dependencies for the battle map orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  maps.Repository
	IDGenerator idgen.Generator
	// Logger is optional
	Logger *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	repo   maps.Repository
	idGen  idgen.Generator
	log    *zap.Logger
}

// NewOrchestrator creates a new battle map orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &orchestrator{
		engine: cfg.Engine,
		repo:   cfg.Repository,
		idGen:  cfg.IDGenerator,
		log:    log.Named("battlemap"),
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) CreateMap(ctx context.Context, input *CreateMapInput) (*CreateMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("width", input.Width, 1, MaxDimension, vb)
	errors.ValidateRange("height", input.Height, 1, MaxDimension, vb)
	if !input.GridType.IsValid() {
		vb.Fieldf("grid_type", "must be one of: %s, %s", grid.GridTypeSquare, grid.GridTypeHex)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	m := o.engine.CreateGrid(input.Width, input.Height, input.GridType)
	m.ID = o.idGen.Generate()
	m.Name = input.Name
	if len(input.DeploymentZones) > 0 {
		m = o.engine.SetDeploymentZones(m, input.DeploymentZones)
	}

	updatedAt, err := o.save(ctx, m)
	if err != nil {
		return nil, err
	}

	o.log.Info("battle map created",
		zap.String("map_id", m.ID),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.String("grid_type", string(m.GridType)),
	)

	return &CreateMapOutput{Map: m, UpdatedAt: updatedAt}, nil
}

func (o *orchestrator) GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	return &GetMapOutput{Map: out.Map, UpdatedAt: out.UpdatedAt}, nil
}

func (o *orchestrator) ImportMap(ctx context.Context, input *ImportMapInput) (*ImportMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Snapshot == "" {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	m, err := o.engine.DeserializeMap(input.Snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import map")
	}

	switch {
	case input.MapID != "":
		m.ID = input.MapID
	case m.ID == "":
		m.ID = o.idGen.Generate()
	}

	updatedAt, err := o.save(ctx, m)
	if err != nil {
		return nil, err
	}

	o.log.Info("battle map imported", zap.String("map_id", m.ID))

	return &ImportMapOutput{Map: m, UpdatedAt: updatedAt}, nil
}

func (o *orchestrator) ExportMap(ctx context.Context, input *ExportMapInput) (*ExportMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	snapshot, err := o.engine.SerializeMap(out.Map)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export map")
	}

	return &ExportMapOutput{Snapshot: snapshot}, nil
}

func (o *orchestrator) InstantiateTemplate(
	ctx context.Context,
	input *InstantiateTemplateInput,
) (*InstantiateTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	template, err := o.load(ctx, input.TemplateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load template")
	}

	m := o.engine.LoadMap(template.Map)
	m.ID = o.idGen.Generate()
	if input.Name != "" {
		m.Name = input.Name
	}

	updatedAt, err := o.save(ctx, m)
	if err != nil {
		return nil, err
	}

	o.log.Info("battle map instantiated from template",
		zap.String("map_id", m.ID),
		zap.String("template_id", input.TemplateID),
	)

	return &InstantiateTemplateOutput{Map: m, UpdatedAt: updatedAt}, nil
}

func (o *orchestrator) DeleteMap(ctx context.Context, input *DeleteMapInput) (*DeleteMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument("map ID is required")
	}

	if _, err := o.repo.Delete(ctx, &maps.DeleteInput{MapID: input.MapID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete map")
	}

	o.log.Info("battle map deleted", zap.String("map_id", input.MapID))

	return &DeleteMapOutput{}, nil
}

func (o *orchestrator) SetOccupant(ctx context.Context, input *SetOccupantInput) (*SetOccupantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, err := o.editInBounds(ctx, input.MapID, input.Position, func(m *grid.Map) *grid.Map {
		return o.engine.SetOccupant(m, input.Position, input.UnitID)
	})
	if err != nil {
		return nil, err
	}

	return &SetOccupantOutput{Map: m}, nil
}

func (o *orchestrator) SetTerrain(ctx context.Context, input *SetTerrainInput) (*SetTerrainOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Terrain.IsValid() {
		return nil, errors.InvalidArgumentf("unknown terrain type %q", input.Terrain)
	}

	m, err := o.editInBounds(ctx, input.MapID, input.Position, func(m *grid.Map) *grid.Map {
		return o.engine.SetTerrain(m, input.Position, input.Terrain)
	})
	if err != nil {
		return nil, err
	}

	return &SetTerrainOutput{Map: m}, nil
}

func (o *orchestrator) SetDeploymentZones(
	ctx context.Context,
	input *SetDeploymentZonesInput,
) (*SetDeploymentZonesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, err := o.update(ctx, input.MapID, func(m *grid.Map) (*grid.Map, error) {
		return o.engine.SetDeploymentZones(m, input.Positions), nil
	})
	if err != nil {
		return nil, err
	}

	return &SetDeploymentZonesOutput{Map: m}, nil
}

// FindPath reports Found=false for geometry the engine cannot satisfy,
// including a negative budget. Only malformed units and movement types are errors.
func (o *orchestrator) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateMovementType(input.MovementType, vb)
	validateUnits(input.Units, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	path := o.engine.FindPath(current.Map, input.Start, input.End, input.MovementBudget, input.MovementType, input.Units)

	out := &FindPathOutput{Path: []grid.Position{}}
	if path != nil {
		cost, _ := o.engine.PathCost(current.Map, path, input.MovementType, input.Units)
		out = &FindPathOutput{Path: path, Cost: cost, Found: true}
	}

	o.log.Debug("path search",
		zap.String("map_id", input.MapID),
		zap.Stringer("start", input.Start),
		zap.Stringer("end", input.End),
		zap.Bool("found", out.Found),
		zap.Int("cost", out.Cost),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

func (o *orchestrator) GetMovementRange(
	ctx context.Context,
	input *GetMovementRangeInput,
) (*GetMovementRangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateMovementType(input.MovementType, vb)
	validateUnits(input.Units, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	return &GetMovementRangeOutput{
		Positions: o.engine.GetMovementRange(current.Map, input.Start, input.Movement, input.MovementType, input.Units),
	}, nil
}

func (o *orchestrator) GetAttackRange(ctx context.Context, input *GetAttackRangeInput) (*GetAttackRangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	return &GetAttackRangeOutput{
		Positions: o.engine.GetAttackRange(current.Map, input.Origins, input.MinRange, input.MaxRange),
	}, nil
}

func (o *orchestrator) GetDangerZone(ctx context.Context, input *GetDangerZoneInput) (*GetDangerZoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	validateUnits(input.Enemies, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	return &GetDangerZoneOutput{
		Positions: o.engine.CalculateDangerZone(current.Map, input.Enemies),
	}, nil
}

func (o *orchestrator) CheckLineOfSight(
	ctx context.Context,
	input *CheckLineOfSightInput,
) (*CheckLineOfSightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.load(ctx, input.MapID)
	if err != nil {
		return nil, err
	}

	return &CheckLineOfSightOutput{
		Visible: o.engine.GetLineOfSight(current.Map, input.From, input.To),
	}, nil
}

func (o *orchestrator) ApplyFogOfWar(ctx context.Context, input *ApplyFogOfWarInput) (*ApplyFogOfWarOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("team", input.Team, vb)
	validateUnits(input.Units, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	fog := func(m *grid.Map) (*grid.Map, error) {
		return o.engine.ApplyFogOfWar(m, input.Team, input.Units), nil
	}

	var fogged *grid.Map
	if input.Persist {
		m, err := o.update(ctx, input.MapID, fog)
		if err != nil {
			return nil, err
		}
		fogged = m
	} else {
		current, err := o.load(ctx, input.MapID)
		if err != nil {
			return nil, err
		}
		fogged, _ = fog(current.Map)
	}

	return &ApplyFogOfWarOutput{
		Map:     fogged,
		Visible: o.engine.VisiblePositions(fogged),
	}, nil
}

// load fetches a stored map, requiring a map ID
func (o *orchestrator) load(ctx context.Context, mapID string) (*maps.GetOutput, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map ID is required")
	}

	out, err := o.repo.Get(ctx, &maps.GetInput{MapID: mapID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load map %s", mapID)
	}
	return out, nil
}

func (o *orchestrator) save(ctx context.Context, m *grid.Map) (time.Time, error) {
	out, err := o.repo.Save(ctx, &maps.SaveInput{Map: m})
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to save map %s", m.ID)
	}
	return out.UpdatedAt, nil
}

// update runs change through the repository's read-modify-write, so
// concurrent edits to one map are applied one after another instead of
// overwriting each other.
func (o *orchestrator) update(
	ctx context.Context,
	mapID string,
	change func(*grid.Map) (*grid.Map, error),
) (*grid.Map, error) {
	if mapID == "" {
		return nil, errors.InvalidArgument("map ID is required")
	}

	out, err := o.repo.Update(ctx, &maps.UpdateInput{MapID: mapID, Apply: change})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update map %s", mapID)
	}
	return out.Map, nil
}

// editInBounds applies edit to the stored map and saves the result.
// Edits aimed off the map are rejected rather than silently ignored.
func (o *orchestrator) editInBounds(
	ctx context.Context,
	mapID string,
	pos grid.Position,
	edit func(*grid.Map) *grid.Map,
) (*grid.Map, error) {
	return o.update(ctx, mapID, func(m *grid.Map) (*grid.Map, error) {
		if !o.engine.IsInBounds(m, pos) {
			return nil, errors.InvalidArgumentf("position %s is outside the %dx%d map",
				pos, m.Width, m.Height)
		}
		return edit(m), nil
	})
}

func validateMovementType(mt grid.MovementType, vb *errors.ValidationBuilder) {
	if !mt.IsValid() {
		vb.Fieldf("movement_type", "unknown movement type %d", int(mt))
	}
}

func validateUnits(units []grid.Unit, vb *errors.ValidationBuilder) {
	for i, u := range units {
		if u.ID == "" {
			vb.RequiredField(unitField(i, "id"))
		}
		if !u.MovementType.IsValid() {
			vb.Fieldf(unitField(i, "movement_type"), "unknown movement type %d", int(u.MovementType))
		}
	}
}

func unitField(i int, name string) string {
	return fmt.Sprintf("units[%d].%s", i, name)
}
