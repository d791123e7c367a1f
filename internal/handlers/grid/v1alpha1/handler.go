// Package v1alpha1 handles the GridService gRPC interface
package v1alpha1

import (
	"context"
	"time"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/orchestrators/battlemap"
)

// HandlerConfig holds dependencies for the grid handler
type HandlerConfig struct {
	BattleMapService battlemap.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.BattleMapService == nil {
		return errors.InvalidArgument("battle map service is required")
	}
	return nil
}

// Handler implements the GridService gRPC service
type Handler struct {
	gridv1alpha1.UnimplementedGridServiceServer
	service battlemap.Service
}

// NewHandler creates a new grid handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.BattleMapService,
	}, nil
}

// Ensure Handler implements the service interface
var _ gridv1alpha1.GridServiceServer = (*Handler)(nil)

// CreateMap creates an all-plains battle map
func (h *Handler) CreateMap(
	ctx context.Context,
	req *gridv1alpha1.CreateMapRequest,
) (*gridv1alpha1.CreateMapResponse, error) {
	out, err := h.service.CreateMap(ctx, &battlemap.CreateMapInput{
		Name:            req.Name,
		Width:           int(req.Width),
		Height:          int(req.Height),
		GridType:        grid.GridType(req.GridType),
		DeploymentZones: fromPositions(req.DeploymentZones),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.CreateMapResponse{Map: toBattleMap(out.Map, out.UpdatedAt)}, nil
}

// GetMap loads a stored map
func (h *Handler) GetMap(
	ctx context.Context,
	req *gridv1alpha1.GetMapRequest,
) (*gridv1alpha1.GetMapResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	out, err := h.service.GetMap(ctx, &battlemap.GetMapInput{MapID: req.MapId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.GetMapResponse{Map: toBattleMap(out.Map, out.UpdatedAt)}, nil
}

// ImportMap stores a map from a JSON snapshot
func (h *Handler) ImportMap(
	ctx context.Context,
	req *gridv1alpha1.ImportMapRequest,
) (*gridv1alpha1.ImportMapResponse, error) {
	if req.Snapshot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("snapshot is required"))
	}

	out, err := h.service.ImportMap(ctx, &battlemap.ImportMapInput{
		Snapshot: req.Snapshot,
		MapID:    req.MapId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.ImportMapResponse{Map: toBattleMap(out.Map, out.UpdatedAt)}, nil
}

// ExportMap returns the JSON snapshot of a stored map
func (h *Handler) ExportMap(
	ctx context.Context,
	req *gridv1alpha1.ExportMapRequest,
) (*gridv1alpha1.ExportMapResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	out, err := h.service.ExportMap(ctx, &battlemap.ExportMapInput{MapID: req.MapId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.ExportMapResponse{Snapshot: out.Snapshot}, nil
}

// InstantiateTemplate copies a stored map into a new battle map
func (h *Handler) InstantiateTemplate(
	ctx context.Context,
	req *gridv1alpha1.InstantiateTemplateRequest,
) (*gridv1alpha1.InstantiateTemplateResponse, error) {
	if req.TemplateId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template_id is required"))
	}

	out, err := h.service.InstantiateTemplate(ctx, &battlemap.InstantiateTemplateInput{
		TemplateID: req.TemplateId,
		Name:       req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.InstantiateTemplateResponse{Map: toBattleMap(out.Map, out.UpdatedAt)}, nil
}

// DeleteMap deletes a stored map
func (h *Handler) DeleteMap(
	ctx context.Context,
	req *gridv1alpha1.DeleteMapRequest,
) (*gridv1alpha1.DeleteMapResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	if _, err := h.service.DeleteMap(ctx, &battlemap.DeleteMapInput{MapID: req.MapId}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.DeleteMapResponse{}, nil
}

// SetOccupant places or clears a unit on a tile
func (h *Handler) SetOccupant(
	ctx context.Context,
	req *gridv1alpha1.SetOccupantRequest,
) (*gridv1alpha1.SetOccupantResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.Position == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("position is required"))
	}

	out, err := h.service.SetOccupant(ctx, &battlemap.SetOccupantInput{
		MapID:    req.MapId,
		Position: fromPosition(req.Position),
		UnitID:   req.UnitId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.SetOccupantResponse{Map: toBattleMap(out.Map, time.Time{})}, nil
}

// SetTerrain changes the terrain of a tile
func (h *Handler) SetTerrain(
	ctx context.Context,
	req *gridv1alpha1.SetTerrainRequest,
) (*gridv1alpha1.SetTerrainResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.Position == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("position is required"))
	}

	out, err := h.service.SetTerrain(ctx, &battlemap.SetTerrainInput{
		MapID:    req.MapId,
		Position: fromPosition(req.Position),
		Terrain:  grid.TerrainType(req.Terrain),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.SetTerrainResponse{Map: toBattleMap(out.Map, time.Time{})}, nil
}

// SetDeploymentZones replaces the deployment zones of a map
func (h *Handler) SetDeploymentZones(
	ctx context.Context,
	req *gridv1alpha1.SetDeploymentZonesRequest,
) (*gridv1alpha1.SetDeploymentZonesResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	out, err := h.service.SetDeploymentZones(ctx, &battlemap.SetDeploymentZonesInput{
		MapID:     req.MapId,
		Positions: fromPositions(req.Positions),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.SetDeploymentZonesResponse{Map: toBattleMap(out.Map, time.Time{})}, nil
}

// FindPath searches for the cheapest path within a movement budget
func (h *Handler) FindPath(
	ctx context.Context,
	req *gridv1alpha1.FindPathRequest,
) (*gridv1alpha1.FindPathResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.Start == nil || req.End == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("start and end are required"))
	}

	mt, err := parseMovementType(req.MovementType)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	units, err := fromUnits(req.Units)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.FindPath(ctx, &battlemap.FindPathInput{
		MapID:          req.MapId,
		Start:          fromPosition(req.Start),
		End:            fromPosition(req.End),
		MovementBudget: int(req.MovementBudget),
		MovementType:   mt,
		Units:          units,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.FindPathResponse{
		Path:  toPositions(out.Path),
		Cost:  int32(out.Cost), // #nosec G115 -- bounded by the request budget
		Found: out.Found,
	}, nil
}

// GetMovementRange returns the tiles a unit can end its move on
func (h *Handler) GetMovementRange(
	ctx context.Context,
	req *gridv1alpha1.GetMovementRangeRequest,
) (*gridv1alpha1.GetMovementRangeResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.Start == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("start is required"))
	}

	mt, err := parseMovementType(req.MovementType)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	units, err := fromUnits(req.Units)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetMovementRange(ctx, &battlemap.GetMovementRangeInput{
		MapID:        req.MapId,
		Start:        fromPosition(req.Start),
		Movement:     int(req.Movement),
		MovementType: mt,
		Units:        units,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.GetMovementRangeResponse{Positions: toPositions(out.Positions)}, nil
}

// GetAttackRange returns the tiles within an attack band of the origins
func (h *Handler) GetAttackRange(
	ctx context.Context,
	req *gridv1alpha1.GetAttackRangeRequest,
) (*gridv1alpha1.GetAttackRangeResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	out, err := h.service.GetAttackRange(ctx, &battlemap.GetAttackRangeInput{
		MapID:    req.MapId,
		Origins:  fromPositions(req.Origins),
		MinRange: int(req.MinRange),
		MaxRange: int(req.MaxRange),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.GetAttackRangeResponse{Positions: toPositions(out.Positions)}, nil
}

// GetDangerZone returns the tiles the enemies can move to or strike
func (h *Handler) GetDangerZone(
	ctx context.Context,
	req *gridv1alpha1.GetDangerZoneRequest,
) (*gridv1alpha1.GetDangerZoneResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}

	enemies, err := fromUnits(req.Enemies)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetDangerZone(ctx, &battlemap.GetDangerZoneInput{
		MapID:   req.MapId,
		Enemies: enemies,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.GetDangerZoneResponse{Positions: toPositions(out.Positions)}, nil
}

// CheckLineOfSight reports whether one tile can see another
func (h *Handler) CheckLineOfSight(
	ctx context.Context,
	req *gridv1alpha1.CheckLineOfSightRequest,
) (*gridv1alpha1.CheckLineOfSightResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.From == nil || req.To == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("from and to are required"))
	}

	out, err := h.service.CheckLineOfSight(ctx, &battlemap.CheckLineOfSightInput{
		MapID: req.MapId,
		From:  fromPosition(req.From),
		To:    fromPosition(req.To),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.CheckLineOfSightResponse{Visible: out.Visible}, nil
}

// ApplyFogOfWar computes what a team can see
func (h *Handler) ApplyFogOfWar(
	ctx context.Context,
	req *gridv1alpha1.ApplyFogOfWarRequest,
) (*gridv1alpha1.ApplyFogOfWarResponse, error) {
	if req.MapId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("map_id is required"))
	}
	if req.Team == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("team is required"))
	}

	units, err := fromUnits(req.Units)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ApplyFogOfWar(ctx, &battlemap.ApplyFogOfWarInput{
		MapID:   req.MapId,
		Team:    req.Team,
		Units:   units,
		Persist: req.Persist,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gridv1alpha1.ApplyFogOfWarResponse{
		Map:     toBattleMap(out.Map, time.Time{}),
		Visible: toPositions(out.Visible),
	}, nil
}
