package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GridServiceName is the fully-qualified gRPC service name
const GridServiceName = "tactics.grid.v1alpha1.GridService"

// GridServiceServer is the server API for GridService
type GridServiceServer interface {
	CreateMap(context.Context, *CreateMapRequest) (*CreateMapResponse, error)
	GetMap(context.Context, *GetMapRequest) (*GetMapResponse, error)
	ImportMap(context.Context, *ImportMapRequest) (*ImportMapResponse, error)
	ExportMap(context.Context, *ExportMapRequest) (*ExportMapResponse, error)
	InstantiateTemplate(context.Context, *InstantiateTemplateRequest) (*InstantiateTemplateResponse, error)
	DeleteMap(context.Context, *DeleteMapRequest) (*DeleteMapResponse, error)
	SetOccupant(context.Context, *SetOccupantRequest) (*SetOccupantResponse, error)
	SetTerrain(context.Context, *SetTerrainRequest) (*SetTerrainResponse, error)
	SetDeploymentZones(context.Context, *SetDeploymentZonesRequest) (*SetDeploymentZonesResponse, error)
	FindPath(context.Context, *FindPathRequest) (*FindPathResponse, error)
	GetMovementRange(context.Context, *GetMovementRangeRequest) (*GetMovementRangeResponse, error)
	GetAttackRange(context.Context, *GetAttackRangeRequest) (*GetAttackRangeResponse, error)
	GetDangerZone(context.Context, *GetDangerZoneRequest) (*GetDangerZoneResponse, error)
	CheckLineOfSight(context.Context, *CheckLineOfSightRequest) (*CheckLineOfSightResponse, error)
	ApplyFogOfWar(context.Context, *ApplyFogOfWarRequest) (*ApplyFogOfWarResponse, error)
}

// UnimplementedGridServiceServer can be embedded to have forward compatible implementations
type UnimplementedGridServiceServer struct{}

func (UnimplementedGridServiceServer) CreateMap(context.Context, *CreateMapRequest) (*CreateMapResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMap not implemented")
}

func (UnimplementedGridServiceServer) GetMap(context.Context, *GetMapRequest) (*GetMapResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMap not implemented")
}

func (UnimplementedGridServiceServer) ImportMap(context.Context, *ImportMapRequest) (*ImportMapResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportMap not implemented")
}

func (UnimplementedGridServiceServer) ExportMap(context.Context, *ExportMapRequest) (*ExportMapResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportMap not implemented")
}

func (UnimplementedGridServiceServer) InstantiateTemplate(context.Context, *InstantiateTemplateRequest) (*InstantiateTemplateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InstantiateTemplate not implemented")
}

func (UnimplementedGridServiceServer) DeleteMap(context.Context, *DeleteMapRequest) (*DeleteMapResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMap not implemented")
}

func (UnimplementedGridServiceServer) SetOccupant(context.Context, *SetOccupantRequest) (*SetOccupantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOccupant not implemented")
}

func (UnimplementedGridServiceServer) SetTerrain(context.Context, *SetTerrainRequest) (*SetTerrainResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTerrain not implemented")
}

func (UnimplementedGridServiceServer) SetDeploymentZones(context.Context, *SetDeploymentZonesRequest) (*SetDeploymentZonesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetDeploymentZones not implemented")
}

func (UnimplementedGridServiceServer) FindPath(context.Context, *FindPathRequest) (*FindPathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindPath not implemented")
}

func (UnimplementedGridServiceServer) GetMovementRange(context.Context, *GetMovementRangeRequest) (*GetMovementRangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMovementRange not implemented")
}

func (UnimplementedGridServiceServer) GetAttackRange(context.Context, *GetAttackRangeRequest) (*GetAttackRangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAttackRange not implemented")
}

func (UnimplementedGridServiceServer) GetDangerZone(context.Context, *GetDangerZoneRequest) (*GetDangerZoneResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDangerZone not implemented")
}

func (UnimplementedGridServiceServer) CheckLineOfSight(context.Context, *CheckLineOfSightRequest) (*CheckLineOfSightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckLineOfSight not implemented")
}

func (UnimplementedGridServiceServer) ApplyFogOfWar(context.Context, *ApplyFogOfWarRequest) (*ApplyFogOfWarResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyFogOfWar not implemented")
}

// RegisterGridServiceServer registers srv on s
func RegisterGridServiceServer(s grpc.ServiceRegistrar, srv GridServiceServer) {
	s.RegisterService(&GridServiceDesc, srv)
}

// FullMethod returns the gRPC method path for a GridService method
func FullMethod(method string) string {
	return "/" + GridServiceName + "/" + method
}

// GridServiceDesc describes GridService for grpc.Server
var GridServiceDesc = grpc.ServiceDesc{
	ServiceName: GridServiceName,
	HandlerType: (*GridServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateMap", Handler: unaryHandler("CreateMap", GridServiceServer.CreateMap)},
		{MethodName: "GetMap", Handler: unaryHandler("GetMap", GridServiceServer.GetMap)},
		{MethodName: "ImportMap", Handler: unaryHandler("ImportMap", GridServiceServer.ImportMap)},
		{MethodName: "ExportMap", Handler: unaryHandler("ExportMap", GridServiceServer.ExportMap)},
		{MethodName: "InstantiateTemplate", Handler: unaryHandler("InstantiateTemplate", GridServiceServer.InstantiateTemplate)},
		{MethodName: "DeleteMap", Handler: unaryHandler("DeleteMap", GridServiceServer.DeleteMap)},
		{MethodName: "SetOccupant", Handler: unaryHandler("SetOccupant", GridServiceServer.SetOccupant)},
		{MethodName: "SetTerrain", Handler: unaryHandler("SetTerrain", GridServiceServer.SetTerrain)},
		{MethodName: "SetDeploymentZones", Handler: unaryHandler("SetDeploymentZones", GridServiceServer.SetDeploymentZones)},
		{MethodName: "FindPath", Handler: unaryHandler("FindPath", GridServiceServer.FindPath)},
		{MethodName: "GetMovementRange", Handler: unaryHandler("GetMovementRange", GridServiceServer.GetMovementRange)},
		{MethodName: "GetAttackRange", Handler: unaryHandler("GetAttackRange", GridServiceServer.GetAttackRange)},
		{MethodName: "GetDangerZone", Handler: unaryHandler("GetDangerZone", GridServiceServer.GetDangerZone)},
		{MethodName: "CheckLineOfSight", Handler: unaryHandler("CheckLineOfSight", GridServiceServer.CheckLineOfSight)},
		{MethodName: "ApplyFogOfWar", Handler: unaryHandler("ApplyFogOfWar", GridServiceServer.ApplyFogOfWar)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tactics/grid/v1alpha1/grid_service",
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	method string,
	call func(GridServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GridServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GridServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
