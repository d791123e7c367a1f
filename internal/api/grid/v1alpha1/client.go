package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// GridServiceClient is the client API for GridService
type GridServiceClient interface {
	CreateMap(ctx context.Context, in *CreateMapRequest, opts ...grpc.CallOption) (*CreateMapResponse, error)
	GetMap(ctx context.Context, in *GetMapRequest, opts ...grpc.CallOption) (*GetMapResponse, error)
	ImportMap(ctx context.Context, in *ImportMapRequest, opts ...grpc.CallOption) (*ImportMapResponse, error)
	ExportMap(ctx context.Context, in *ExportMapRequest, opts ...grpc.CallOption) (*ExportMapResponse, error)
	InstantiateTemplate(ctx context.Context, in *InstantiateTemplateRequest, opts ...grpc.CallOption) (*InstantiateTemplateResponse, error)
	DeleteMap(ctx context.Context, in *DeleteMapRequest, opts ...grpc.CallOption) (*DeleteMapResponse, error)
	SetOccupant(ctx context.Context, in *SetOccupantRequest, opts ...grpc.CallOption) (*SetOccupantResponse, error)
	SetTerrain(ctx context.Context, in *SetTerrainRequest, opts ...grpc.CallOption) (*SetTerrainResponse, error)
	SetDeploymentZones(ctx context.Context, in *SetDeploymentZonesRequest, opts ...grpc.CallOption) (*SetDeploymentZonesResponse, error)
	FindPath(ctx context.Context, in *FindPathRequest, opts ...grpc.CallOption) (*FindPathResponse, error)
	GetMovementRange(ctx context.Context, in *GetMovementRangeRequest, opts ...grpc.CallOption) (*GetMovementRangeResponse, error)
	GetAttackRange(ctx context.Context, in *GetAttackRangeRequest, opts ...grpc.CallOption) (*GetAttackRangeResponse, error)
	GetDangerZone(ctx context.Context, in *GetDangerZoneRequest, opts ...grpc.CallOption) (*GetDangerZoneResponse, error)
	CheckLineOfSight(ctx context.Context, in *CheckLineOfSightRequest, opts ...grpc.CallOption) (*CheckLineOfSightResponse, error)
	ApplyFogOfWar(ctx context.Context, in *ApplyFogOfWarRequest, opts ...grpc.CallOption) (*ApplyFogOfWarResponse, error)
}

type gridServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGridServiceClient creates a client that speaks the JSON codec over cc
func NewGridServiceClient(cc grpc.ClientConnInterface) GridServiceClient {
	return &gridServiceClient{cc: cc}
}

func (c *gridServiceClient) CreateMap(ctx context.Context, in *CreateMapRequest, opts ...grpc.CallOption) (*CreateMapResponse, error) {
	return invoke[CreateMapResponse](ctx, c.cc, "CreateMap", in, opts)
}

func (c *gridServiceClient) GetMap(ctx context.Context, in *GetMapRequest, opts ...grpc.CallOption) (*GetMapResponse, error) {
	return invoke[GetMapResponse](ctx, c.cc, "GetMap", in, opts)
}

func (c *gridServiceClient) ImportMap(ctx context.Context, in *ImportMapRequest, opts ...grpc.CallOption) (*ImportMapResponse, error) {
	return invoke[ImportMapResponse](ctx, c.cc, "ImportMap", in, opts)
}

func (c *gridServiceClient) ExportMap(ctx context.Context, in *ExportMapRequest, opts ...grpc.CallOption) (*ExportMapResponse, error) {
	return invoke[ExportMapResponse](ctx, c.cc, "ExportMap", in, opts)
}

func (c *gridServiceClient) InstantiateTemplate(ctx context.Context, in *InstantiateTemplateRequest, opts ...grpc.CallOption) (*InstantiateTemplateResponse, error) {
	return invoke[InstantiateTemplateResponse](ctx, c.cc, "InstantiateTemplate", in, opts)
}

func (c *gridServiceClient) DeleteMap(ctx context.Context, in *DeleteMapRequest, opts ...grpc.CallOption) (*DeleteMapResponse, error) {
	return invoke[DeleteMapResponse](ctx, c.cc, "DeleteMap", in, opts)
}

func (c *gridServiceClient) SetOccupant(ctx context.Context, in *SetOccupantRequest, opts ...grpc.CallOption) (*SetOccupantResponse, error) {
	return invoke[SetOccupantResponse](ctx, c.cc, "SetOccupant", in, opts)
}

func (c *gridServiceClient) SetTerrain(ctx context.Context, in *SetTerrainRequest, opts ...grpc.CallOption) (*SetTerrainResponse, error) {
	return invoke[SetTerrainResponse](ctx, c.cc, "SetTerrain", in, opts)
}

func (c *gridServiceClient) SetDeploymentZones(ctx context.Context, in *SetDeploymentZonesRequest, opts ...grpc.CallOption) (*SetDeploymentZonesResponse, error) {
	return invoke[SetDeploymentZonesResponse](ctx, c.cc, "SetDeploymentZones", in, opts)
}

func (c *gridServiceClient) FindPath(ctx context.Context, in *FindPathRequest, opts ...grpc.CallOption) (*FindPathResponse, error) {
	return invoke[FindPathResponse](ctx, c.cc, "FindPath", in, opts)
}

func (c *gridServiceClient) GetMovementRange(ctx context.Context, in *GetMovementRangeRequest, opts ...grpc.CallOption) (*GetMovementRangeResponse, error) {
	return invoke[GetMovementRangeResponse](ctx, c.cc, "GetMovementRange", in, opts)
}

func (c *gridServiceClient) GetAttackRange(ctx context.Context, in *GetAttackRangeRequest, opts ...grpc.CallOption) (*GetAttackRangeResponse, error) {
	return invoke[GetAttackRangeResponse](ctx, c.cc, "GetAttackRange", in, opts)
}

func (c *gridServiceClient) GetDangerZone(ctx context.Context, in *GetDangerZoneRequest, opts ...grpc.CallOption) (*GetDangerZoneResponse, error) {
	return invoke[GetDangerZoneResponse](ctx, c.cc, "GetDangerZone", in, opts)
}

func (c *gridServiceClient) CheckLineOfSight(ctx context.Context, in *CheckLineOfSightRequest, opts ...grpc.CallOption) (*CheckLineOfSightResponse, error) {
	return invoke[CheckLineOfSightResponse](ctx, c.cc, "CheckLineOfSight", in, opts)
}

func (c *gridServiceClient) ApplyFogOfWar(ctx context.Context, in *ApplyFogOfWarRequest, opts ...grpc.CallOption) (*ApplyFogOfWarResponse, error) {
	return invoke[ApplyFogOfWarResponse](ctx, c.cc, "ApplyFogOfWar", in, opts)
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
